package stagewright

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Vector2I is an integer 2D size, reported to the renderer as the stage size.
type Vector2I struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in (x, y, width, height) form.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints builds a Rect from two opposite corners, normalizing for
// either corner ordering.
func RectFromPoints(a, b Vec2) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MinX, MinY, MaxX, MaxY return r's corner coordinates.
func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether r and o overlap (touching edges count as
// overlap).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() <= o.MaxX() && r.MaxX() >= o.MinX() &&
		r.MinY() <= o.MaxY() && r.MaxY() >= o.MinY()
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := math.Min(r.MinX(), o.MinX()), math.Min(r.MinY(), o.MinY())
	maxX, maxY := math.Max(r.MaxX(), o.MaxX()), math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ClosestPoint returns the point on r closest to p (p itself if p ∈ r).
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, r.MinX(), r.MaxX()),
		Y: clamp(p.Y, r.MinY(), r.MaxY()),
	}
}

// DistanceFrom returns the Euclidean distance from p to the closest point of r.
func (r Rect) DistanceFrom(p Vec2) float64 {
	return p.Sub(r.ClosestPoint(p)).Length()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps n to the closed interval [0, 1].
func Clamp01(n float64) float64 {
	return clamp(n, 0, 1)
}

// Lerp linearly interpolates from s to e by proportion p (unclamped).
func Lerp(s, e, p float64) float64 {
	return (e-s)*p + s
}

// RayAABBIntersect reports whether the ray from origin in direction dir hits
// rect, using the standard two-slab test (Real-Time Collision Detection
// §5.3.3). Degenerate axes (dir component == 0) fall back to a simple range
// test against that axis, matching the reference implementation.
func RayAABBIntersect(origin, dir Vec2, rect Rect) bool {
	tMin, tMax := 0.0, math.Inf(1)

	if math.Abs(dir.X) < 1e-12 {
		if origin.X < rect.MinX() || origin.X > rect.MaxX() {
			return false
		}
	} else {
		invD := 1.0 / dir.X
		t1 := (rect.MinX() - origin.X) * invD
		t2 := (rect.MaxX() - origin.X) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	if math.Abs(dir.Y) < 1e-12 {
		if origin.Y < rect.MinY() || origin.Y > rect.MaxY() {
			return false
		}
	} else {
		invD := 1.0 / dir.Y
		t1 := (rect.MinY() - origin.Y) * invD
		t2 := (rect.MaxY() - origin.Y) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Affine is a 2D affine transform stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity transform.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// Mul returns p composed with c: apply c first, then p (p * c).
func (p Affine) Mul(c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// TransformPoint applies the affine transform to point p.
func (m Affine) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ScaleRotationTranslation is a decomposed affine transform: uniform-axis
// scale, rotation (radians), and translation. It carries no skew, matching
// the data model's Container.LocalTransform.
type ScaleRotationTranslation struct {
	ScaleX, ScaleY float64
	Rotation       float64
	TranslateX     float64
	TranslateY     float64
}

// IdentitySRT returns the identity ScaleRotationTranslation (scale 1, no
// rotation, no translation).
func IdentitySRT() ScaleRotationTranslation {
	return ScaleRotationTranslation{ScaleX: 1, ScaleY: 1}
}

// ToAffine composes the decomposed transform into an Affine: Scale, then
// Rotate, then Translate.
func (s ScaleRotationTranslation) ToAffine() Affine {
	sin, cos := math.Sincos(s.Rotation)
	a := cos * s.ScaleX
	b := sin * s.ScaleX
	c := -sin * s.ScaleY
	d := cos * s.ScaleY
	return Affine{a, b, c, d, s.TranslateX, s.TranslateY}
}

// SRTFromAffine decomposes an Affine back into scale, rotation, and
// translation, assuming no skew (the Container data model never produces
// skewed local transforms). When the matrix encodes a flip (negative
// determinant) the flip is carried as a negative ScaleY, so
// ToAffine(SRTFromAffine(t)) == t for any t built from a
// ScaleRotationTranslation originally.
func SRTFromAffine(t Affine) ScaleRotationTranslation {
	scaleX := math.Hypot(t[0], t[1])
	scaleY := math.Hypot(t[2], t[3])
	if t[0]*t[3]-t[1]*t[2] < 0 {
		scaleY = -scaleY
	}
	rotation := math.Atan2(t[1], t[0])
	return ScaleRotationTranslation{
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		Rotation:   rotation,
		TranslateX: t[4],
		TranslateY: t[5],
	}
}
