package library

import (
	"testing"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/shape"
)

func TestAddShapeIdempotent(t *testing.T) {
	l := New()
	id := stagewright.NewLibraryId()
	square := shape.NewFill(shape.NewRect(stagewright.Vec2{X: 10, Y: 10}, stagewright.IdentityAffine), stagewright.Color{A: 1})
	other := shape.NewFill(nil, stagewright.Color{R: 1, A: 1})

	if added := l.AddShape(id, square); !added {
		t.Fatal("expected first AddShape to succeed")
	}
	if added := l.AddShape(id, other); added {
		t.Fatal("expected second AddShape for same id to be a no-op")
	}
	got, ok := l.Shape(id)
	if !ok {
		t.Fatal("expected shape to be retrievable")
	}
	if len(got.Edges) != len(square.Edges) {
		t.Errorf("first write should win; got %d edges, want %d", len(got.Edges), len(square.Edges))
	}
}

func TestLoadBitmapRejectsMismatchedPixelCount(t *testing.T) {
	l := New()
	id := stagewright.NewLibraryId()
	_, err := l.LoadBitmap(id, Bitmap{SizeX: 2, SizeY: 2, Colors: []stagewright.Color{{}}})
	if err == nil {
		t.Fatal("expected error for mismatched pixel count")
	}
}

func TestLoadBitmapProducesPattern(t *testing.T) {
	l := New()
	id := stagewright.NewLibraryId()
	colors := make([]stagewright.Color, 4)
	for i := range colors {
		colors[i] = stagewright.Color{R: 1, A: 1}
	}
	ok, err := l.LoadBitmap(id, Bitmap{SizeX: 2, SizeY: 2, Colors: colors})
	if err != nil || !ok {
		t.Fatalf("LoadBitmap failed: ok=%v err=%v", ok, err)
	}
	pat, found := l.Pattern(id)
	if !found {
		t.Fatal("expected pattern to be retrievable")
	}
	if pat.Width != 2 || pat.Height != 2 {
		t.Errorf("Pattern size = %dx%d, want 2x2", pat.Width, pat.Height)
	}
}

func TestRemoveThenReAddSucceeds(t *testing.T) {
	l := New()
	id := stagewright.NewLibraryId()
	l.AddShape(id, shape.NewFill(nil, stagewright.Color{A: 1}))
	l.Remove(id)
	if _, ok := l.Shape(id); ok {
		t.Fatal("expected shape to be gone after Remove")
	}
	if added := l.AddShape(id, shape.NewFill(nil, stagewright.Color{R: 1, A: 1})); !added {
		t.Fatal("expected AddShape to succeed again after Remove")
	}
}

func TestGetWrongKindReturnsNotFound(t *testing.T) {
	l := New()
	id := stagewright.NewLibraryId()
	l.AddShape(id, shape.NewFill(nil, stagewright.Color{A: 1}))
	if _, ok := l.Pattern(id); ok {
		t.Error("expected Pattern lookup of a vector item to fail")
	}
}
