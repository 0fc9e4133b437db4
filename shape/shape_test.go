package shape

import (
	"math"
	"testing"

	"github.com/phanxgames/stagewright"
)

func TestNewRectBounds(t *testing.T) {
	edges := NewRect(stagewright.Vec2{X: 30, Y: 30}, stagewright.IdentityAffine)
	s := NewFill(edges, stagewright.Color{A: 1})
	b := s.Bounds(0)
	if b.Width != 30 || b.Height != 30 {
		t.Errorf("Bounds = %+v, want 30x30", b)
	}
}

func TestNewEllipseBoundsRoughlyMatchesAxes(t *testing.T) {
	edges := NewEllipse(stagewright.Vec2{X: 10, Y: 5}, stagewright.IdentityAffine)
	s := NewFill(edges, stagewright.Color{A: 1})
	b := s.Bounds(0)
	const eps = 1e-6
	if math.Abs(b.Width-20) > eps || math.Abs(b.Height-10) > eps {
		t.Errorf("Bounds = %+v, want 20x10", b)
	}
}

func TestGroupBoundsUnionsTransformedChildren(t *testing.T) {
	square := NewFill(NewRect(stagewright.Vec2{X: 10, Y: 10}, stagewright.IdentityAffine), stagewright.Color{A: 1})
	offset := stagewright.ScaleRotationTranslation{ScaleX: 1, ScaleY: 1, TranslateX: 20, TranslateY: 0}.ToAffine()
	group := NewGroup(
		AugmentedShape{Transform: stagewright.IdentityAffine, Shape: square},
		AugmentedShape{Transform: offset, Shape: square},
	)
	b := group.Bounds(0)
	if b.Width != 30 || b.Height != 10 {
		t.Errorf("group bounds = %+v, want 30x10", b)
	}
}

func TestMorphEdgeLerp(t *testing.T) {
	me := MorphEdge{
		Start: Edge{Kind: EdgeLine, To: stagewright.Vec2{X: 0, Y: 0}},
		End:   Edge{Kind: EdgeLine, To: stagewright.Vec2{X: 10, Y: 10}},
	}
	got := me.Lerp(0.5)
	if got.To != (stagewright.Vec2{X: 5, Y: 5}) {
		t.Errorf("Lerp(0.5).To = %+v, want {5 5}", got.To)
	}
}

func TestMorphEdgeCloseInvariant(t *testing.T) {
	me := MorphEdge{Start: Edge{Kind: EdgeClose}, End: Edge{Kind: EdgeClose}}
	got := me.Lerp(0.5)
	if got.Kind != EdgeClose {
		t.Errorf("Lerp of Close = %+v, want Close", got)
	}
}

func TestEffectiveColorOverride(t *testing.T) {
	s := NewFill(nil, stagewright.Color{R: 1, A: 1})
	none := stagewright.Coloring{Kind: stagewright.ColoringKindNone}
	if c := s.EffectiveColor(none); c != s.Color {
		t.Errorf("EffectiveColor(none) = %+v, want shape default %+v", c, s.Color)
	}
	override := stagewright.NewColorColoring(stagewright.Color{G: 1, A: 1})
	if c := s.EffectiveColor(override); c != override.Color {
		t.Errorf("EffectiveColor(override) = %+v, want %+v", c, override.Color)
	}
}

func TestQueryRectFindsControlPoints(t *testing.T) {
	edges := NewRect(stagewright.Vec2{X: 10, Y: 10}, stagewright.IdentityAffine)
	s := NewFill(edges, stagewright.Color{A: 1})
	found := s.QueryRect(stagewright.Rect{X: -1, Y: -1, Width: 2, Height: 2}, 0)
	if len(found) == 0 {
		t.Error("expected to find the origin control point")
	}
}
