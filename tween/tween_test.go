package tween

import (
	"math"
	"testing"

	"github.com/phanxgames/stagewright"
)

func TestShortestArcRotationScenario(t *testing.T) {
	// theta 0 -> 3π/2, Linear, 1s. At t=0.5s the sampled rotation is
	// -π/4 (mod 2π), not 3π/4 — the short way.
	start := stagewright.IdentitySRT()
	end := stagewright.IdentitySRT()
	end.Rotation = 3 * math.Pi / 2

	pt := NewTransform(start, end, stagewright.EasingLinear, 0, 1.0)
	pt.Advance(0.5)
	got := pt.Update().Transform.Rotation

	// The start is shifted up to 2π, so the sample lands on 7π/4, the
	// [0, 2π) representative of -π/4.
	want := -math.Pi/4 + 2*math.Pi
	const eps = 1e-9
	if math.Abs(got-want) > eps {
		t.Errorf("rotation at t=0.5 = %v, want %v", got, want)
	}
}

func TestTransformTweenScenario(t *testing.T) {
	// 5 frames at 1/60s each, Linear, rotation 0 -> π/2. After 5 frames
	// elapsed == 5/60s == duration, tween complete.
	start := stagewright.IdentitySRT()
	end := stagewright.IdentitySRT()
	end.Rotation = math.Pi / 2

	duration := 5.0 / 60.0
	pt := NewTransform(start, end, stagewright.EasingLinear, 0, duration)
	for i := 0; i < 5; i++ {
		pt.Advance(1.0 / 60.0)
	}
	if !pt.IsComplete() {
		t.Fatal("expected tween to be complete after 5 frames")
	}
	got := pt.Update().Transform.Rotation
	const eps = 1e-5
	if math.Abs(got-math.Pi/2) > eps {
		t.Errorf("rotation at completion = %v, want %v", got, math.Pi/2)
	}
}

func TestIsCompleteMatchesDeclaredEnd(t *testing.T) {
	// For every tween, once IsComplete() is true, Update() reports exactly
	// the declared end value.
	pt := NewMorphIndex(0, 1, stagewright.EasingBackOut, 0, 1.0)
	pt.Advance(1.0)
	if !pt.IsComplete() {
		t.Fatal("expected complete")
	}
	if got := pt.Update().MorphIndex; got != 1 {
		t.Errorf("MorphIndex at completion = %v, want 1", got)
	}
}

func TestColoringTweenMismatchedTreesYieldsNone(t *testing.T) {
	start := stagewright.NewColorColoring(stagewright.Color{A: 1})
	end := stagewright.NewGroupColoring(stagewright.NewColorColoring(stagewright.Color{A: 1}))
	pt := NewColoring(start, end, stagewright.ColorSpaceLinear, stagewright.EasingLinear, 0, 1.0)
	pt.Advance(0.5)
	if got := pt.Update().Coloring.Kind; got != stagewright.ColoringKindNone {
		t.Errorf("Coloring kind = %v, want None", got)
	}
}

func TestViewRectTweenLerpsBothCorners(t *testing.T) {
	start := stagewright.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	end := stagewright.Rect{X: 10, Y: 10, Width: 30, Height: 30}
	pt := NewViewRect(start, end, stagewright.EasingLinear, 0, 1.0)
	pt.Advance(0.5)
	got := pt.Update().ViewRect
	want := stagewright.Rect{X: 5, Y: 5, Width: 20, Height: 20}
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Width-want.Width) > eps {
		t.Errorf("ViewRect at t=0.5 = %+v, want %+v", got, want)
	}
}

func TestOrderTweenRoundsToNearestInt(t *testing.T) {
	pt := NewOrder(0, 10, stagewright.EasingLinear, 0, 1.0)
	pt.Advance(0.25)
	if got := pt.Update().Order; got != 3 {
		t.Errorf("Order at t=0.25 = %v, want 3", got)
	}
}

func TestStepEasingUsesCarriedStepCount(t *testing.T) {
	// EasingStep needs its step count threaded all the way into the
	// tween, not just into the easing function directly: a PropertyTween
	// built with Easing == EasingStep and StepN == 4 should floor its
	// progress to quarters rather than degrading to Linear (which is what
	// happens when StepN is left at its zero value).
	pt := NewMorphIndex(0, 1, stagewright.EasingStep, 4, 1.0)
	pt.Advance(0.6)
	if got := pt.Update().MorphIndex; got != 0.5 {
		t.Errorf("MorphIndex at t=0.6 with Step(4) = %v, want 0.5", got)
	}

	degenerate := NewMorphIndex(0, 1, stagewright.EasingStep, 0, 1.0)
	degenerate.Advance(0.6)
	if got := degenerate.Update().MorphIndex; got != 0.6 {
		t.Errorf("MorphIndex at t=0.6 with Step(0) = %v, want 0.6 (degrades to Linear)", got)
	}
}
