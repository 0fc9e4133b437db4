package action

import (
	"errors"
	"testing"

	"github.com/phanxgames/stagewright"
)

func TestList_AdvanceClampsAtEnd(t *testing.T) {
	l := NewList(nil)
	l.Append(CreateRoot(stagewright.NewContainerId()), EndInitialization())

	l.Advance()
	l.Advance()
	l.Advance() // past the end

	cur, ok := l.Current()
	if !ok || cur.Kind != KindEndInitialization {
		t.Fatalf("expected cursor clamped at last action, got %+v ok=%v", cur, ok)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor())
	}
}

func TestList_CurrentEmptyLog(t *testing.T) {
	l := NewList(nil)
	if _, ok := l.Current(); ok {
		t.Fatal("expected Current to report not-ok on an empty log")
	}
}

func TestList_LabelSeek(t *testing.T) {
	// Two labels between PresentFrames.
	l := NewList(nil)
	l.Append(
		EndInitialization(),          // 0
		PresentFrame(0, 3),           // 1
		Label("label_1"),             // 2
		PresentFrame(3, 1),           // 3
		Label("label_2"),             // 4
	)
	for i := 0; i < 5; i++ {
		l.Advance()
	}

	idx, frame, err := l.JumpToLabel("label_2")
	if err != nil {
		t.Fatalf("JumpToLabel: %v", err)
	}
	if idx != 4 || frame != 4 {
		t.Fatalf("expected (4, 4), got (%d, %d)", idx, frame)
	}
	if l.Cursor() != 4 {
		t.Fatalf("expected cursor left at 4, got %d", l.Cursor())
	}
}

func TestList_LabelSeekAlreadyIndexed(t *testing.T) {
	l := NewList(nil)
	l.Append(EndInitialization(), Label("a"), PresentFrame(0, 1))
	for i := 0; i < 3; i++ {
		l.Advance()
	}
	l.Back()
	l.Back()

	idx, frame, err := l.JumpToLabel("a")
	if err != nil {
		t.Fatalf("JumpToLabel: %v", err)
	}
	if idx != 1 || frame != 0 {
		t.Fatalf("expected (1, 0), got (%d, %d)", idx, frame)
	}
}

func TestList_JumpToLabelNotFound(t *testing.T) {
	l := NewList(nil)
	l.Append(EndInitialization())
	l.Advance()

	_, _, err := l.JumpToLabel("missing")
	if !errors.Is(err, ErrLabelNotFound) {
		t.Fatalf("expected ErrLabelNotFound, got %v", err)
	}
}

func TestList_AdvanceFrame(t *testing.T) {
	l := NewList(nil)
	l.Append(EndInitialization(), PresentFrame(10, 3))
	l.Advance()
	l.Advance()

	r := l.AdvanceFrame(1)
	if r.Kind != KindNextFrame || r.Frame != 11 {
		t.Fatalf("expected NextFrame(11), got %+v", r)
	}
	r = l.AdvanceFrame(10)
	if r.Kind != KindPresentEnd || r.Frame != 13 {
		t.Fatalf("expected PresentEnd(13), got %+v", r)
	}
}

func TestList_AdvanceFrameNotInPresent(t *testing.T) {
	l := NewList(nil)
	l.Append(EndInitialization())
	l.Advance()

	r := l.AdvanceFrame(1)
	if r.Kind != KindNotInPresent {
		t.Fatalf("expected NotInPresent, got %+v", r)
	}
}

func TestList_Back(t *testing.T) {
	l := NewList(nil)
	l.Append(EndInitialization(), Label("x"), Label("y"))
	l.Advance()
	l.Advance()
	l.Advance()

	l.Back()
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor 1 after Back, got %d", l.Cursor())
	}
	l.Back() // would land on EndInitialization: refused
	if l.Cursor() != 1 {
		t.Fatalf("expected Back to refuse crossing EndInitialization, cursor=%d", l.Cursor())
	}
}

func TestList_LoadMoreCalledBeforeAdvance(t *testing.T) {
	calls := 0
	l := NewList(func() []Action {
		calls++
		if calls == 1 {
			return []Action{EndInitialization()}
		}
		return nil
	})
	l.Advance()
	if calls != 1 {
		t.Fatalf("expected load-more invoked once, got %d", calls)
	}
	cur, ok := l.Current()
	if !ok || cur.Kind != KindEndInitialization {
		t.Fatalf("expected cursor on the loaded action, got %+v ok=%v", cur, ok)
	}
}
