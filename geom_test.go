package stagewright

import (
	"math"
	"testing"
)

func TestRectContainsAndIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(Vec2{5, 5}) {
		t.Error("expected (5,5) inside r")
	}
	if r.Contains(Vec2{15, 15}) {
		t.Error("expected (15,15) outside r")
	}
	o := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if !r.Intersects(o) {
		t.Error("expected r and o to intersect")
	}
	disjoint := Rect{X: 100, Y: 100, Width: 1, Height: 1}
	if r.Intersects(disjoint) {
		t.Error("expected r and disjoint to not intersect")
	}
}

func TestAffineRoundTripSRT(t *testing.T) {
	srt := ScaleRotationTranslation{
		ScaleX: 2, ScaleY: 3, Rotation: math.Pi / 4,
		TranslateX: 10, TranslateY: -5,
	}
	back := SRTFromAffine(srt.ToAffine())
	const eps = 1e-9
	if math.Abs(back.ScaleX-srt.ScaleX) > eps || math.Abs(back.ScaleY-srt.ScaleY) > eps {
		t.Errorf("scale mismatch: got %+v, want %+v", back, srt)
	}
	if math.Abs(back.Rotation-srt.Rotation) > eps {
		t.Errorf("rotation mismatch: got %v, want %v", back.Rotation, srt.Rotation)
	}
	if math.Abs(back.TranslateX-srt.TranslateX) > eps || math.Abs(back.TranslateY-srt.TranslateY) > eps {
		t.Errorf("translation mismatch: got %+v, want %+v", back, srt)
	}
}

func TestAffineMulIdentity(t *testing.T) {
	m := ScaleRotationTranslation{ScaleX: 1, ScaleY: 1, Rotation: 0.3, TranslateX: 4, TranslateY: 5}.ToAffine()
	got := IdentityAffine.Mul(m)
	for i := range got {
		if math.Abs(got[i]-m[i]) > 1e-12 {
			t.Errorf("identity.Mul(m)[%d] = %v, want %v", i, got[i], m[i])
		}
	}
}

func TestRayAABBIntersect(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !RayAABBIntersect(Vec2{-5, 5}, Vec2{1, 0}, rect) {
		t.Error("expected ray to hit rect")
	}
	if RayAABBIntersect(Vec2{-5, 50}, Vec2{1, 0}, rect) {
		t.Error("expected ray to miss rect")
	}
	// degenerate axis: dir.x == 0, origin inside x-range
	if !RayAABBIntersect(Vec2{5, -5}, Vec2{0, 1}, rect) {
		t.Error("expected vertical ray through x-range to hit rect")
	}
}

func TestClosestPointAndDistance(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	p := Vec2{20, 5}
	cp := r.ClosestPoint(p)
	if cp != (Vec2{10, 5}) {
		t.Errorf("ClosestPoint = %+v, want {10 5}", cp)
	}
	if d := r.DistanceFrom(p); d != 10 {
		t.Errorf("DistanceFrom = %v, want 10", d)
	}
}
