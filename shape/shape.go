package shape

import "github.com/phanxgames/stagewright"

// LineCap selects how an open stroked path's endpoints are rendered.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapSquare
	LineCapRound
)

// LineJoin selects how a stroked path's corners are rendered.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

// StrokeStyle describes how a Path/MorphPath shape's outline is stroked.
type StrokeStyle struct {
	LineWidth float64
	LineCap   LineCap
	LineJoin  LineJoin
}

// Kind enumerates the cases of the Shape variant.
type Kind int

const (
	// KindPath is a stroked open or closed path.
	KindPath Kind = iota
	// KindFill is a filled closed path.
	KindFill
	// KindMorphPath interpolates two parallel edge sequences by a scalar
	// morph value, then strokes the result.
	KindMorphPath
	// KindMorphFill is the filled counterpart of KindMorphPath.
	KindMorphFill
	// KindClip defines a clipping region; it carries no color.
	KindClip
	// KindGroup nests child shapes, each with its own affine transform.
	KindGroup
)

// AugmentedShape is one child of a Group shape: a nested Shape plus the
// affine transform it is placed under, relative to the group.
type AugmentedShape struct {
	Transform stagewright.Affine
	Shape     Shape
}

// Shape is an algebraic variant over the library's drawable vector shapes.
// Only the fields relevant to Kind are populated; see Kind for which.
type Shape struct {
	Kind Kind

	// Edges is populated for Path, Fill, and Clip.
	Edges []Edge
	// MorphEdges is populated for MorphPath and MorphFill.
	MorphEdges []MorphEdge
	// Color is populated for Path, Fill, MorphPath, MorphFill.
	Color stagewright.Color
	// Stroke is populated for Path and MorphPath.
	Stroke StrokeStyle
	// Children is populated for Group.
	Children []AugmentedShape
}

// NewFill builds a filled Shape from a closed edge list.
func NewFill(edges []Edge, color stagewright.Color) Shape {
	return Shape{Kind: KindFill, Edges: edges, Color: color}
}

// NewPath builds a stroked Shape from an edge list.
func NewPath(edges []Edge, color stagewright.Color, stroke StrokeStyle) Shape {
	return Shape{Kind: KindPath, Edges: edges, Color: color, Stroke: stroke}
}

// NewGroup builds a Group shape from its children.
func NewGroup(children ...AugmentedShape) Shape {
	return Shape{Kind: KindGroup, Children: children}
}

// edgesAt resolves the effective, non-morphing edge list for this shape at
// the given morph proportion (Path/Fill/Clip ignore morph entirely).
func (s Shape) edgesAt(morph float64) []Edge {
	switch s.Kind {
	case KindMorphPath, KindMorphFill:
		out := make([]Edge, len(s.MorphEdges))
		for i, me := range s.MorphEdges {
			out[i] = me.Lerp(morph)
		}
		return out
	default:
		return s.Edges
	}
}

// Bounds returns the local-space AABB of the shape at the given morph
// proportion, recursing through Group children under their own transforms.
// Returns zero-area-at-origin for an empty shape (no edges, no children).
func (s Shape) Bounds(morph float64) stagewright.Rect {
	switch s.Kind {
	case KindGroup:
		var result stagewright.Rect
		first := true
		for _, child := range s.Children {
			b := transformRect(child.Shape.Bounds(morph), child.Transform)
			if first {
				result = b
				first = false
			} else {
				result = result.Union(b)
			}
		}
		return result
	default:
		return edgesBounds(s.edgesAt(morph))
	}
}

// transformRect returns the AABB of t applied to every corner of r.
func transformRect(r stagewright.Rect, t stagewright.Affine) stagewright.Rect {
	corners := [4]stagewright.Vec2{
		{X: r.MinX(), Y: r.MinY()}, {X: r.MaxX(), Y: r.MinY()},
		{X: r.MinX(), Y: r.MaxY()}, {X: r.MaxX(), Y: r.MaxY()},
	}
	out := t.TransformPoint(corners[0])
	result := stagewright.Rect{X: out.X, Y: out.Y}
	for _, c := range corners[1:] {
		p := t.TransformPoint(c)
		result = result.Union(stagewright.Rect{X: p.X, Y: p.Y})
	}
	return result
}

func edgesBounds(edges []Edge) stagewright.Rect {
	var result stagewright.Rect
	first := true
	for _, e := range edges {
		for _, p := range e.controlPoints() {
			pr := stagewright.Rect{X: p.X, Y: p.Y}
			if first {
				result = pr
				first = false
			} else {
				result = result.Union(pr)
			}
		}
	}
	return result
}

// EffectiveColor returns the shape's default color, overridden by coloring
// if coloring is not the None variant.
func (s Shape) EffectiveColor(coloring stagewright.Coloring) stagewright.Color {
	if coloring.Kind == stagewright.ColoringKindColor {
		return coloring.Color
	}
	return s.Color
}

// QueryRect returns the control points (in local space, at the given morph
// proportion) that fall within r, for editor vertex-drag hit-testing.
func (s Shape) QueryRect(r stagewright.Rect, morph float64) []stagewright.Vec2 {
	var out []stagewright.Vec2
	for _, e := range s.edgesAt(morph) {
		for _, p := range e.controlPoints() {
			if r.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// QueryDisk returns the control points within radius of center, for editor
// vertex-drag hit-testing.
func (s Shape) QueryDisk(center stagewright.Vec2, radius float64, morph float64) []stagewright.Vec2 {
	var out []stagewright.Vec2
	for _, e := range s.edgesAt(morph) {
		for _, p := range e.controlPoints() {
			if p.Sub(center).Length() <= radius {
				out = append(out, p)
			}
		}
	}
	return out
}
