package engine

import (
	"fmt"
	"time"

	"github.com/phanxgames/stagewright/action"
)

// PlaybackConfig configures Play, grounded on phanxgames-willow/scene.go's
// RunConfig: a plain struct of host-supplied knobs passed to a loop-driving
// entry point, no flag/config library involved.
type PlaybackConfig struct {
	// SecondsPerFrame paces each presented frame and seeds the very first
	// Update's delta time.
	SecondsPerFrame float64
	// OnFrameComplete is invoked after each presented frame's RenderFrame
	// call. Returning false stops the loop ("running = false"); a nil
	// callback never stops the loop on its own.
	OnFrameComplete func() bool
	// Sleep paces playback between frames; defaults to time.Sleep. Tests
	// substitute a no-op or recording func to run a session without
	// wall-clock delay.
	Sleep func(d time.Duration)
	// Now supplies the current time for frame pacing and delta-time
	// measurement; defaults to time.Now. Tests substitute a fake clock to
	// exercise overrun behavior deterministically.
	Now func() time.Time
}

// Initialize consumes list from its current position through the next
// EndInitialization action (inclusive), applying each action it passes. It
// returns ErrInvalidAction if the stream is exhausted before
// EndInitialization is reached.
func (e *Engine) Initialize(list *action.List) error {
	for {
		before := list.Cursor()
		list.Advance()
		cur, ok := list.Current()
		if !ok || list.Cursor() == before {
			return fmt.Errorf("%w: action stream ended before EndInitialization", ErrInvalidAction)
		}
		if err := e.ApplyAction(cur); err != nil {
			return err
		}
		if cur.Kind == action.KindEndInitialization {
			return nil
		}
	}
}

// Play drives the playback loop from list's current position (normally
// right after a prior call to Initialize) until the action stream is
// exhausted or cfg.OnFrameComplete reports running = false. For each
// PresentFrame(start, count) action it encounters, it runs count
// update/render cycles, pacing each to cfg.SecondsPerFrame via cfg.Sleep
// (time.Sleep if unset). A PresentFrame with count == 0 yields no frames.
//
// Each Update's delta time is the measured wall-clock gap between the end
// of the previous frame (render, callback, and any pacing sleep) and the
// end of this one, not the configured SecondsPerFrame constant: a frame
// that overruns its budget skips the sleep and reports a larger delta to
// the next tick instead of silently catching up. The very first Update of
// a session uses delta 0, before any frame has actually elapsed.
func (e *Engine) Play(list *action.List, r Renderer, cfg PlaybackConfig) error {
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	budget := time.Duration(cfg.SecondsPerFrame * float64(time.Second))

	deltaTime := 0.0
	frameEnd := now()

	running := true
	for running {
		present, ok, err := e.executeSceneActions(list)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		for f := uint32(0); f < present.FrameCount; f++ {
			e.Update(FrameTime{DeltaTime: deltaTime, DeltaFrame: 1})
			e.RenderFrame(r)
			if cfg.OnFrameComplete != nil {
				running = cfg.OnFrameComplete()
			}
			if !running {
				break
			}
			renderEnd := now()
			var frameDone time.Time
			if wait := budget - renderEnd.Sub(frameEnd); wait > 0 {
				sleep(wait)
				frameDone = now()
			} else {
				frameDone = renderEnd
			}
			deltaTime = frameDone.Sub(frameEnd).Seconds()
			frameEnd = frameDone
		}
	}
	return nil
}

// executeSceneActions advances list and applies each action up to and
// including the next PresentFrame. ok is false once the stream is
// exhausted without reaching one (Advance leaves the cursor where it was).
func (e *Engine) executeSceneActions(list *action.List) (present action.Action, ok bool, err error) {
	for {
		before := list.Cursor()
		list.Advance()
		cur, has := list.Current()
		if !has || list.Cursor() == before {
			return action.Action{}, false, nil
		}
		if err := e.ApplyAction(cur); err != nil {
			return action.Action{}, false, err
		}
		if cur.Kind == action.KindPresentFrame {
			return cur, true, nil
		}
	}
}
