// Package tween implements the engine's property interpolators: a
// PropertyTween variant over Transform, Coloring, ViewRect, MorphIndex, and
// Order, each advancing an elapsed-time counter and reporting its current
// value without mutating it until explicitly advanced.
//
// Grounded on original_source/fluster_core/src/tween.rs.
package tween

import (
	"math"

	"github.com/phanxgames/stagewright"
)

// Kind enumerates the cases of the PropertyTween variant.
type Kind int

const (
	KindTransform Kind = iota
	KindColoring
	KindViewRect
	KindMorphIndex
	KindOrder
)

// TransformData holds a transform tween's start/end, with rotation already
// adjusted for shortest-arc interpolation at construction time.
type TransformData struct {
	StartScaleX, StartScaleY float64
	EndScaleX, EndScaleY     float64
	StartRotation            float64
	EndRotation              float64
	StartX, StartY           float64
	EndX, EndY               float64
}

// ColoringData holds a coloring tween's start/end trees and color space.
type ColoringData struct {
	Start, End stagewright.Coloring
	Space      stagewright.ColorSpace
}

// ViewRectData holds a view-rect tween's start/end rectangles.
type ViewRectData struct {
	Start, End stagewright.Rect
}

// MorphIndexData holds a morph-scalar tween's start/end (clamped to [0,1]).
type MorphIndexData struct {
	Start, End float64
}

// OrderData holds a paint-order tween's start/end.
type OrderData struct {
	Start, End int8
}

// PropertyTween is a single active tween targeting one container property.
// Only the field matching Kind is populated.
type PropertyTween struct {
	Kind     Kind
	Easing   stagewright.Easing
	StepN    int // used only when Easing == stagewright.EasingStep
	Duration float64
	Elapsed  float64

	Transform  TransformData
	Coloring   ColoringData
	ViewRect   ViewRectData
	MorphIndex MorphIndexData
	Order      OrderData
}

// NewTransform builds a Transform tween from start to end, shifting the
// start rotation so linear interpolation takes the shortest arc.
// stepN is only meaningful when easing == stagewright.EasingStep.
func NewTransform(start, end stagewright.ScaleRotationTranslation, easing stagewright.Easing, stepN int, duration float64) PropertyTween {
	startTheta := shortestArcStart(start.Rotation, end.Rotation)
	return PropertyTween{
		Kind:     KindTransform,
		Easing:   easing,
		StepN:    stepN,
		Duration: duration,
		Transform: TransformData{
			StartScaleX: start.ScaleX, StartScaleY: start.ScaleY,
			EndScaleX: end.ScaleX, EndScaleY: end.ScaleY,
			StartRotation: startTheta, EndRotation: end.Rotation,
			StartX: start.TranslateX, StartY: start.TranslateY,
			EndX: end.TranslateX, EndY: end.TranslateY,
		},
	}
}

// shortestArcStart returns a start angle shifted by at most one full turn
// (±2π) so that end-start stays within [-π, π] whenever the two angles
// are no more than 3π apart, making the interpolation traverse the
// shorter rotational direction.
func shortestArcStart(start, end float64) float64 {
	diff := end - start
	if diff > math.Pi {
		return start + 2*math.Pi
	}
	if diff < -math.Pi {
		return start - 2*math.Pi
	}
	return start
}

// NewColoring builds a Coloring tween (a flat Color tween is the
// single-leaf degenerate case of this — see DESIGN.md).
func NewColoring(start, end stagewright.Coloring, space stagewright.ColorSpace, easing stagewright.Easing, stepN int, duration float64) PropertyTween {
	return PropertyTween{
		Kind: KindColoring, Easing: easing, StepN: stepN, Duration: duration,
		Coloring: ColoringData{Start: start, End: end, Space: space},
	}
}

// NewViewRect builds a ViewRect tween.
func NewViewRect(start, end stagewright.Rect, easing stagewright.Easing, stepN int, duration float64) PropertyTween {
	return PropertyTween{
		Kind: KindViewRect, Easing: easing, StepN: stepN, Duration: duration,
		ViewRect: ViewRectData{Start: start, End: end},
	}
}

// NewMorphIndex builds a MorphIndex tween; start/end are clamped to [0,1].
func NewMorphIndex(start, end float64, easing stagewright.Easing, stepN int, duration float64) PropertyTween {
	return PropertyTween{
		Kind: KindMorphIndex, Easing: easing, StepN: stepN, Duration: duration,
		MorphIndex: MorphIndexData{Start: stagewright.Clamp01(start), End: stagewright.Clamp01(end)},
	}
}

// NewOrder builds an Order tween.
func NewOrder(start, end int8, easing stagewright.Easing, stepN int, duration float64) PropertyTween {
	return PropertyTween{
		Kind: KindOrder, Easing: easing, StepN: stepN, Duration: duration,
		Order: OrderData{Start: start, End: end},
	}
}

// IsComplete reports whether the tween's elapsed time has reached its
// duration.
func (p *PropertyTween) IsComplete() bool {
	return p.Elapsed >= p.Duration
}

// Advance accumulates delta seconds of elapsed time. Called by the
// scene graph's tween-advance step before this tick's Apply* systems
// sample the tween, so they see the advanced elapsed value.
func (p *PropertyTween) Advance(delta float64) {
	p.Elapsed += delta
}

func (p *PropertyTween) progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	t := p.Elapsed / p.Duration
	if p.Easing == stagewright.EasingStep {
		return stagewright.EaseStep(p.Easing, t, p.StepN)
	}
	return stagewright.Ease(p.Easing, t)
}

// Update computes the tween's current value at its present elapsed time,
// without advancing it. The result is the field matching p.Kind; all
// others are left zero.
type Update struct {
	Kind Kind

	Transform  stagewright.ScaleRotationTranslation
	Coloring   stagewright.Coloring
	ViewRect   stagewright.Rect
	MorphIndex float64
	Order      int8
}

// Update samples the tween at its current elapsed time.
func (p *PropertyTween) Update() Update {
	t := p.progress()
	switch p.Kind {
	case KindTransform:
		d := p.Transform
		return Update{Kind: KindTransform, Transform: stagewright.ScaleRotationTranslation{
			ScaleX:     stagewright.Lerp(d.StartScaleX, d.EndScaleX, t),
			ScaleY:     stagewright.Lerp(d.StartScaleY, d.EndScaleY, t),
			Rotation:   stagewright.Lerp(d.StartRotation, d.EndRotation, t),
			TranslateX: stagewright.Lerp(d.StartX, d.EndX, t),
			TranslateY: stagewright.Lerp(d.StartY, d.EndY, t),
		}}
	case KindColoring:
		d := p.Coloring
		return Update{Kind: KindColoring, Coloring: stagewright.LerpColoring(d.Start, d.End, t, d.Space)}
	case KindViewRect:
		d := p.ViewRect
		return Update{Kind: KindViewRect, ViewRect: stagewright.Rect{
			X:      stagewright.Lerp(d.Start.X, d.End.X, t),
			Y:      stagewright.Lerp(d.Start.Y, d.End.Y, t),
			Width:  stagewright.Lerp(d.Start.MaxX(), d.End.MaxX(), t) - stagewright.Lerp(d.Start.X, d.End.X, t),
			Height: stagewright.Lerp(d.Start.MaxY(), d.End.MaxY(), t) - stagewright.Lerp(d.Start.Y, d.End.Y, t),
		}}
	case KindMorphIndex:
		d := p.MorphIndex
		return Update{Kind: KindMorphIndex, MorphIndex: stagewright.Clamp01(stagewright.Lerp(d.Start, d.End, t))}
	case KindOrder:
		d := p.Order
		return Update{Kind: KindOrder, Order: int8(math.Round(stagewright.Lerp(float64(d.Start), float64(d.End), t)))}
	default:
		return Update{Kind: p.Kind}
	}
}
