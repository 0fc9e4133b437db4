package shape

import (
	"math"

	"github.com/phanxgames/stagewright"
)

// NewEllipse builds an edge list for an axis-aligned ellipse with the given
// radii, positioned by transform.
func NewEllipse(axes stagewright.Vec2, transform stagewright.Affine) []Edge {
	return []Edge{
		{Kind: EdgeMove, To: transform.TransformPoint(stagewright.Vec2{X: axes.X, Y: 0})},
		{
			Kind: EdgeArc, Center: transform.TransformPoint(stagewright.Vec2{}),
			Axes: axes, StartAngle: 0, EndAngle: 2 * math.Pi,
		},
		{Kind: EdgeClose},
	}
}

// NewPolygon builds a regular polygon with the given side count and edge
// length, positioned by transform.
func NewPolygon(sides int, edgeLength float64, transform stagewright.Affine) []Edge {
	edges := make([]Edge, 0, sides+2)
	turn := math.Pi - (float64(sides)-2)*math.Pi/float64(sides)
	sinT, cosT := math.Sincos(turn)
	edge := stagewright.Vec2{X: edgeLength, Y: 0}
	cur := stagewright.Vec2{}

	edges = append(edges, Edge{Kind: EdgeMove, To: transform.TransformPoint(stagewright.Vec2{})})
	for i := 0; i < sides; i++ {
		cur = cur.Add(edge)
		edges = append(edges, Edge{Kind: EdgeLine, To: transform.TransformPoint(cur)})
		edge = rotateVec(edge, sinT, cosT)
	}
	edges = append(edges, Edge{Kind: EdgeClose})
	return edges
}

func rotateVec(v stagewright.Vec2, sin, cos float64) stagewright.Vec2 {
	return stagewright.Vec2{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// NewRect builds a closed rectangular edge list of the given size,
// positioned by transform.
func NewRect(size stagewright.Vec2, transform stagewright.Affine) []Edge {
	tp := transform.TransformPoint
	return []Edge{
		{Kind: EdgeMove, To: tp(stagewright.Vec2{})},
		{Kind: EdgeLine, To: tp(stagewright.Vec2{X: size.X})},
		{Kind: EdgeLine, To: tp(size)},
		{Kind: EdgeLine, To: tp(stagewright.Vec2{Y: size.Y})},
		{Kind: EdgeLine, To: tp(stagewright.Vec2{})},
		{Kind: EdgeClose},
	}
}

// NewRoundedRect builds a rounded-rectangle edge list using ArcTo corners.
// cornerRadius is clamped to half the smaller dimension.
func NewRoundedRect(size stagewright.Vec2, cornerRadius float64, transform stagewright.Affine) []Edge {
	r := math.Min(cornerRadius, math.Min(size.X/2, size.Y/2))
	r = math.Max(r, 0.001)
	tp := transform.TransformPoint
	return []Edge{
		{Kind: EdgeMove, To: tp(stagewright.Vec2{X: r})},
		{Kind: EdgeArcTo, Control: tp(stagewright.Vec2{X: size.X}), To: tp(stagewright.Vec2{X: size.X, Y: r}), Radius: r},
		{Kind: EdgeArcTo, Control: tp(size), To: tp(stagewright.Vec2{X: size.X - r, Y: size.Y}), Radius: r},
		{Kind: EdgeArcTo, Control: tp(stagewright.Vec2{Y: size.Y}), To: tp(stagewright.Vec2{Y: size.Y - r}), Radius: r},
		{Kind: EdgeArcTo, Control: tp(stagewright.Vec2{}), To: tp(stagewright.Vec2{X: r}), Radius: r},
		{Kind: EdgeClose},
	}
}

// NewSuperellipse approximates a superellipse ("squircle") of the given
// size and exponent with a fixed-resolution quadratic-curve outline.
func NewSuperellipse(size stagewright.Vec2, exponent float64, transform stagewright.Affine) []Edge {
	half := stagewright.Vec2{X: size.X / 2, Y: size.Y / 2}
	t := func(p stagewright.Vec2) stagewright.Vec2 {
		return transform.TransformPoint(p.Add(half))
	}

	const steps = 120
	const stepSize = 2 * math.Pi / steps
	points := make([]stagewright.Vec2, steps)
	for i := 0; i < steps; i++ {
		a := float64(i) * stepSize
		sin, cos := math.Sincos(a)
		x := half.X * sign(cos) * math.Pow(math.Abs(cos), 2/exponent)
		y := half.Y * sign(sin) * math.Pow(math.Abs(sin), 2/exponent)
		points[i] = stagewright.Vec2{X: x, Y: y}
	}

	control := func(p0, pMid, p1 stagewright.Vec2) stagewright.Vec2 {
		return stagewright.Vec2{
			X: pMid.X*2 - p0.X*0.5 - p1.X*0.5,
			Y: pMid.Y*2 - p0.Y*0.5 - p1.Y*0.5,
		}
	}

	edges := []Edge{{Kind: EdgeMove, To: t(points[0])}}
	for i := 2; i < steps; i += 3 {
		edges = append(edges, Edge{
			Kind:    EdgeQuadratic,
			Control: t(control(points[i-2], points[i-1], points[i])),
			To:      t(points[i]),
		})
	}
	edges = append(edges, Edge{
		Kind:    EdgeQuadratic,
		Control: t(control(points[steps-2], points[steps-1], points[0])),
		To:      t(points[0]),
	})
	edges = append(edges, Edge{Kind: EdgeClose})
	return edges
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
