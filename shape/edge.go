// Package shape models vector shape trees: edge primitives, morphing
// between parallel edge sequences, bounds computation, and the library's
// two drawable shape kinds (stroked paths and filled regions), plus the
// grouping and clipping variants used to compose them.
//
// Grounded on original_source/fluster_core/src/types/shapes.rs.
package shape

import (
	"math"

	"github.com/phanxgames/stagewright"
)

// EdgeKind enumerates the cases of the Edge variant.
type EdgeKind int

const (
	EdgeMove EdgeKind = iota
	EdgeLine
	EdgeQuadratic
	EdgeBezier
	EdgeArcTo
	EdgeArc
	EdgeClose
)

// Edge is one segment of a vector path. Only the fields relevant to Kind
// are populated; see EdgeKind for which.
type Edge struct {
	Kind EdgeKind

	// To is the segment's destination point (Move, Line, Quadratic, Bezier,
	// ArcTo).
	To stagewright.Vec2
	// Control is the single control point (Quadratic, ArcTo).
	Control stagewright.Vec2
	// Control1, Control2 are the two control points of a cubic Bezier.
	Control1, Control2 stagewright.Vec2
	// Radius is the corner radius of an ArcTo segment.
	Radius float64
	// Center, Axes, StartAngle, EndAngle describe a standalone Arc segment.
	Center               stagewright.Vec2
	Axes                 stagewright.Vec2
	StartAngle, EndAngle float64
}

// EndPoint returns the segment's terminal point. Arc and Close segments
// have no well-defined endpoint in the source model; both return the zero
// vector, matching original_source's own TODO.
func (e Edge) EndPoint() stagewright.Vec2 {
	switch e.Kind {
	case EdgeMove, EdgeLine, EdgeQuadratic, EdgeBezier, EdgeArcTo:
		return e.To
	default:
		return stagewright.Vec2{}
	}
}

// controlPoints returns every point that participates in this edge's
// convex hull, for bounds computation and control-point hit-testing.
func (e Edge) controlPoints() []stagewright.Vec2 {
	switch e.Kind {
	case EdgeMove, EdgeLine:
		return []stagewright.Vec2{e.To}
	case EdgeQuadratic:
		return []stagewright.Vec2{e.Control, e.To}
	case EdgeBezier:
		return []stagewright.Vec2{e.Control1, e.Control2, e.To}
	case EdgeArcTo:
		return []stagewright.Vec2{e.Control, e.To}
	case EdgeArc:
		return arcExtentPoints(e.Center, e.Axes, e.StartAngle, e.EndAngle)
	default:
		return nil
	}
}

// arcExtentPoints returns the arc's endpoints plus its axis-aligned extrema
// that fall within [startAngle, endAngle], giving a tight AABB for the arc.
func arcExtentPoints(center, axes stagewright.Vec2, startAngle, endAngle float64) []stagewright.Vec2 {
	pt := func(a float64) stagewright.Vec2 {
		s, c := math.Sincos(a)
		return stagewright.Vec2{X: center.X + axes.X*c, Y: center.Y + axes.Y*s}
	}
	points := []stagewright.Vec2{pt(startAngle), pt(endAngle)}
	for k := 0.0; k < 4; k++ {
		a := k * math.Pi / 2
		if angleInArc(a, startAngle, endAngle) {
			points = append(points, pt(a))
		}
	}
	return points
}

func angleInArc(a, start, end float64) bool {
	twoPi := 2 * math.Pi
	if math.Abs(end-start) >= twoPi {
		return true
	}
	norm := func(x float64) float64 {
		x = math.Mod(x, twoPi)
		if x < 0 {
			x += twoPi
		}
		return x
	}
	a, start, end = norm(a), norm(start), norm(end)
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}

// MorphEdge pairs a start and end Edge of matching Kind; Lerp interpolates
// component-wise, except Close which is invariant under interpolation.
type MorphEdge struct {
	Start, End Edge
}

// Lerp returns the edge interpolated between Start and End by proportion t.
// If Start.Kind != End.Kind the result is Start unchanged (a malformed
// morph pair; callers should never construct one, but this keeps Lerp
// total rather than panicking mid-tick).
func (m MorphEdge) Lerp(t float64) Edge {
	if m.Start.Kind != m.End.Kind {
		return m.Start
	}
	s, e := m.Start, m.End
	lv := func(a, b stagewright.Vec2) stagewright.Vec2 {
		return stagewright.Vec2{X: stagewright.Lerp(a.X, b.X, t), Y: stagewright.Lerp(a.Y, b.Y, t)}
	}
	switch s.Kind {
	case EdgeClose:
		return s
	case EdgeMove, EdgeLine:
		return Edge{Kind: s.Kind, To: lv(s.To, e.To)}
	case EdgeQuadratic:
		return Edge{Kind: s.Kind, Control: lv(s.Control, e.Control), To: lv(s.To, e.To)}
	case EdgeBezier:
		return Edge{
			Kind:     s.Kind,
			Control1: lv(s.Control1, e.Control1),
			Control2: lv(s.Control2, e.Control2),
			To:       lv(s.To, e.To),
		}
	case EdgeArcTo:
		return Edge{
			Kind:    s.Kind,
			Control: lv(s.Control, e.Control),
			To:      lv(s.To, e.To),
			Radius:  stagewright.Lerp(s.Radius, e.Radius, t),
		}
	case EdgeArc:
		return Edge{
			Kind:       s.Kind,
			Center:     lv(s.Center, e.Center),
			Axes:       lv(s.Axes, e.Axes),
			StartAngle: stagewright.Lerp(s.StartAngle, e.StartAngle, t),
			EndAngle:   stagewright.Lerp(s.EndAngle, e.EndAngle, t),
		}
	default:
		return s
	}
}
