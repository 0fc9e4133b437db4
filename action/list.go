package action

import (
	"errors"
	"fmt"
)

// ErrLabelNotFound is returned by List.JumpToLabel when name is absent from
// every action currently loaded into the list.
var ErrLabelNotFound = errors.New("action: label not found")

// LoadMore is invoked by List.Advance before it moves the cursor, and may
// grow the log with a fresh batch of actions. Implementations are not
// required to be pure: repeated calls may return different batches.
type LoadMore func() []Action

// AdvanceFrameKind enumerates the three outcomes of List.AdvanceFrame.
type AdvanceFrameKind int

const (
	// KindNextFrame reports the new frame index is still inside the
	// current PresentFrame's window.
	KindNextFrame AdvanceFrameKind = iota
	// KindPresentEnd reports the new frame index reached the end of the
	// current PresentFrame's window.
	KindPresentEnd
	// KindNotInPresent reports the cursor's current action is not a
	// PresentFrame.
	KindNotInPresent
)

// AdvanceFrameResult is the result of List.AdvanceFrame.
type AdvanceFrameResult struct {
	Kind  AdvanceFrameKind
	Frame uint32
}

// List is the forward streaming cursor over a growable action log:
// named-label seeking, frame-window advance, and a load-more supplier that
// can append to the log lazily.
type List struct {
	actions  []Action
	cursor   int // -1 before the first action
	labels   map[string]int
	loadMore LoadMore

	initEndIndex int // index of the most recently passed EndInitialization, -1 if none

	frameIndex uint32 // current position inside the cursor's PresentFrame window
}

// NewList builds an empty List. loadMore may be nil, in which case the
// list never grows beyond the actions later appended via Append.
func NewList(loadMore LoadMore) *List {
	return &List{
		cursor:       -1,
		labels:       make(map[string]int),
		loadMore:     loadMore,
		initEndIndex: -1,
	}
}

// Append adds actions directly to the log, bypassing the load-more
// supplier. Useful for tests and for hosts that already have the full
// stream in memory.
func (l *List) Append(actions ...Action) {
	l.actions = append(l.actions, actions...)
}

// Len reports how many actions are currently loaded.
func (l *List) Len() int { return len(l.actions) }

// Cursor reports the current cursor index, or -1 if Advance has never
// been called on a non-empty log.
func (l *List) Cursor() int { return l.cursor }

// Current returns the action at the cursor. ok is false if the log is
// empty or the cursor has not yet been advanced onto it.
func (l *List) Current() (a Action, ok bool) {
	if l.cursor < 0 || l.cursor >= len(l.actions) {
		return Action{}, false
	}
	return l.actions[l.cursor], true
}

// Advance invokes the load-more supplier, then moves the cursor one step
// forward. Once the cursor reaches the last loaded index it clamps there
// rather than going out of bounds or wrapping.
func (l *List) Advance() {
	if l.loadMore != nil {
		if batch := l.loadMore(); len(batch) > 0 {
			l.actions = append(l.actions, batch...)
		}
	}
	if len(l.actions) == 0 {
		return
	}
	next := l.cursor + 1
	if next > len(l.actions)-1 {
		next = len(l.actions) - 1
	}
	l.cursor = next
	l.recordCurrent()
}

// recordCurrent updates the label index and the most-recent-
// EndInitialization bookkeeping, and resets frameIndex when the cursor
// lands on a PresentFrame action.
func (l *List) recordCurrent() {
	a := l.actions[l.cursor]
	switch a.Kind {
	case KindLabel:
		l.labels[a.Label] = l.cursor
	case KindEndInitialization:
		l.initEndIndex = l.cursor
	case KindPresentFrame:
		l.frameIndex = a.FrameStart
	}
}

// Back decrements the cursor by one, unless doing so would land on or
// before the most recently passed EndInitialization action, or before
// the start of the log.
func (l *List) Back() {
	if l.cursor <= 0 {
		return
	}
	newCursor := l.cursor - 1
	if newCursor <= l.initEndIndex {
		return
	}
	l.cursor = newCursor
}

// JumpToLabel seeks the cursor directly to name if it is already indexed;
// otherwise it scans forward from the cursor, indexing any Label it
// passes along the way. It returns the new cursor index and the frame
// the caller should adopt as its playback position: the first frame
// after the most recent PresentFrame(start, count) preceding the label
// (start+count), or 0 if the scan reaches an EndInitialization action or
// the start of the log first. Fails with ErrLabelNotFound if name is
// absent from every loaded action.
func (l *List) JumpToLabel(name string) (index int, frame uint32, err error) {
	if idx, ok := l.labels[name]; ok {
		l.cursor = idx
		return idx, l.frameAfterMostRecentPresent(idx), nil
	}
	for i := l.cursor + 1; i < len(l.actions); i++ {
		a := l.actions[i]
		if a.Kind == KindLabel {
			l.labels[a.Label] = i
			if a.Label == name {
				l.cursor = i
				return i, l.frameAfterMostRecentPresent(i), nil
			}
		}
	}
	return 0, 0, fmt.Errorf("action: jump_to_label %q: %w", name, ErrLabelNotFound)
}

// frameAfterMostRecentPresent scans backward from idx, returning
// start+count of the nearest preceding PresentFrame, or 0 if it instead
// reaches an EndInitialization action or the start of the log.
func (l *List) frameAfterMostRecentPresent(idx int) uint32 {
	for i := idx - 1; i >= 0; i-- {
		a := l.actions[i]
		switch a.Kind {
		case KindPresentFrame:
			return a.FrameStart + a.FrameCount
		case KindEndInitialization:
			return 0
		}
	}
	return 0
}

// AdvanceFrame advances the cursor's current PresentFrame window by n
// frames, clamped to [start, start+count]. If the cursor's current
// action is not a PresentFrame, it returns KindNotInPresent without
// effect. When the advance would overrun the window's end, frameIndex is
// normalized to start+count (open question resolved in DESIGN.md) and the
// result reports KindPresentEnd.
func (l *List) AdvanceFrame(n uint32) AdvanceFrameResult {
	cur, ok := l.Current()
	if !ok || cur.Kind != KindPresentFrame {
		return AdvanceFrameResult{Kind: KindNotInPresent}
	}
	max := cur.FrameStart + cur.FrameCount
	next := l.frameIndex + n
	if next < cur.FrameStart {
		next = cur.FrameStart
	}
	if next >= max {
		l.frameIndex = max
		return AdvanceFrameResult{Kind: KindPresentEnd, Frame: max}
	}
	l.frameIndex = next
	return AdvanceFrameResult{Kind: KindNextFrame, Frame: next}
}
