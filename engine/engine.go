// Package engine implements the playback driver facade: it owns one
// scene.Graph and library.Library, dispatches the action stream's scene
// mutations, runs the per-tick system pipeline, and exposes
// drawables/spatial queries to a host.
//
// Grounded on phanxgames-willow/scene.go's gameShell/Scene split (an owning
// facade around the node tree that a host drives one tick/frame at a time)
// and willow.go's top-level Willow struct (construction, debug toggles).
package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/action"
	"github.com/phanxgames/stagewright/ecsbridge"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/quadtree"
	"github.com/phanxgames/stagewright/scene"
	"github.com/phanxgames/stagewright/tween"
)

// Error kinds ApplyAction and the SpatialQuery* wrappers return, each
// wrapped with extra detail via fmt.Errorf's %w.
var (
	ErrInvalidAction = errors.New("engine: invalid action")
	ErrNotFound      = errors.New("engine: not found")
)

// FrameTime is the input to one Update call.
type FrameTime struct {
	DeltaTime  float64
	DeltaFrame uint32
}

// SelectionHandle is one spatial_query result: a container id paired with
// its last-computed world-space bounds (every quad-tree query variant
// returns id/rect pairs; the facade preserves that shape rather than
// returning bare ids).
type SelectionHandle struct {
	ContainerID stagewright.ContainerId
	Rect        stagewright.Rect
}

// Engine is the playback driver facade. A host (typically a
// cmd/stagewright-play-style loop) feeds it an action stream and calls
// Update once per presented frame.
type Engine struct {
	graph *scene.Graph
	lib   *library.Library

	background      stagewright.Color
	stageSize       stagewright.Vector2I
	secondsPerFrame float64

	debug bool
	store ecsbridge.Store
}

// New constructs an Engine around an empty scene graph backed by lib. The
// root container and quad-tree layers are not constructor arguments: the
// playback loop's own initialization phase installs them via
// CreateRoot/AddQuadTreeLayer actions before EndInitialization, so
// ApplyAction is the only path that ever needs to create them (see
// DESIGN.md).
func New(lib *library.Library, stageSize stagewright.Vector2I, secondsPerFrame float64) *Engine {
	return &Engine{
		graph:           scene.New(lib),
		lib:             lib,
		stageSize:       stageSize,
		secondsPerFrame: secondsPerFrame,
	}
}

// SetDebugMode toggles stderr diagnostic logging, matching willow's
// Scene.debug/debugLog gating (debug.go).
func (e *Engine) SetDebugMode(on bool) { e.debug = on }

// SetEventStore installs an optional ECS bridge; when set, container
// lifecycle and spatial-query occurrences are forwarded to it. Mirrors
// willow's Scene.SetEntityStore.
func (e *Engine) SetEventStore(store ecsbridge.Store) { e.store = store }

func (e *Engine) debugLogf(format string, args ...interface{}) {
	if !e.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[stagewright] "+format+"\n", args...)
}

// Background returns the color last installed by a SetBackground action.
func (e *Engine) Background() stagewright.Color { return e.background }

// StageSize returns the stage size configured at construction, reported to
// the renderer every frame.
func (e *Engine) StageSize() stagewright.Vector2I { return e.stageSize }

// Root returns the scene graph's root container id.
func (e *Engine) Root() stagewright.ContainerId { return e.graph.Root() }

// Library returns the engine's backing library, for a host that needs to
// mutate a raster item in place before calling RefreshBounds.
func (e *Engine) Library() *library.Library { return e.lib }

// ApplyAction dispatches a single scene-mutation action.
// EndInitialization, PresentFrame and Label are playback-loop control
// markers rather than scene mutations; they are accepted and ignored here,
// and frame pacing and label seeking are driven by Play and action.List.
func (e *Engine) ApplyAction(a action.Action) error {
	switch a.Kind {
	case action.KindCreateRoot:
		if err := e.graph.CreateRoot(a.ContainerID); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
	case action.KindAddQuadTreeLayer:
		bounds := a.LayerExtent
		if a.LayerOptions.Buffer != 0 {
			bounds = inflate(bounds, a.LayerOptions.Buffer)
		}
		e.graph.AddLayer(a.Layer, bounds, quadtree.DefaultConfig())
	case action.KindSetBackground:
		e.background = a.Background
	case action.KindEndInitialization, action.KindLabel, action.KindPresentFrame:
		// control markers; nothing to dispatch at the scene-graph level.
	case action.KindDefineShape:
		e.lib.AddShape(a.LibraryID, a.Shape)
	case action.KindLoadBitmap:
		if _, err := e.lib.LoadBitmap(a.LibraryID, a.Bitmap); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
	case action.KindCreateContainer:
		e.applyCreateContainer(a)
		if e.store != nil && e.graph.Exists(a.ContainerID) {
			e.store.EmitEvent(ecsbridge.Event{Type: ecsbridge.EventContainerCreated, ContainerID: a.ContainerID})
		}
	case action.KindUpdateContainer:
		e.applyUpdateContainer(a)
	case action.KindRemoveContainer:
		e.graph.RemoveContainer(a.ContainerID, a.Cascade)
		if e.store != nil {
			e.store.EmitEvent(ecsbridge.Event{Type: ecsbridge.EventContainerRemoved, ContainerID: a.ContainerID})
		}
	default:
		return fmt.Errorf("%w: unrecognized action kind %d", ErrInvalidAction, a.Kind)
	}
	return nil
}

func inflate(r stagewright.Rect, buffer float64) stagewright.Rect {
	return stagewright.Rect{
		X: r.X - buffer, Y: r.Y - buffer,
		Width: r.Width + 2*buffer, Height: r.Height + 2*buffer,
	}
}

func (e *Engine) applyCreateContainer(a action.Action) {
	e.graph.CreateContainer(a.ContainerID, a.Parent)
	for _, p := range a.Properties {
		e.applyCreationProperty(a.ContainerID, p)
	}
}

func (e *Engine) applyCreationProperty(id stagewright.ContainerId, p action.CreationProperty) {
	switch p.Kind {
	case action.PropTransform:
		e.graph.SetLocalTransform(id, p.Transform)
	case action.PropMorphIndex:
		e.graph.SetMorphImmediate(id, p.MorphIndex)
	case action.PropColoring:
		e.graph.SetColoringImmediate(id, p.Coloring)
	case action.PropViewRect:
		e.graph.SetViewRectImmediate(id, p.ViewRect)
	case action.PropDisplay:
		e.graph.SetDisplay(id, p.Display, sceneDisplayKind(p.DisplayKnd))
	case action.PropLayer:
		e.graph.AddToLayer(id, p.Layer)
	case action.PropOrder:
		e.graph.SetOrderImmediate(id, p.Order)
	case action.PropBounds:
		e.applyBounds(id, p.Bounds)
	}
}

func (e *Engine) applyBounds(id stagewright.ContainerId, b action.BoundsDefinition) {
	if b.FromDisplay {
		e.graph.SetBoundsFromDisplay(id)
		return
	}
	e.graph.SetBoundsDefined(id, b.Defined)
}

func sceneDisplayKind(k action.DisplayKindValue) scene.DisplayKind {
	if k == action.DisplayRaster {
		return scene.DisplayRaster
	}
	return scene.DisplayVector
}

// applyUpdateContainer applies every immediate property in an
// UpdateContainer action before any tween-creating property, regardless of
// the properties' order in the action (open question resolved in
// DESIGN.md): an action that both reparents a container and starts a
// transform tween on it must not let tween construction race the reparent.
func (e *Engine) applyUpdateContainer(a action.Action) {
	id := a.ContainerID
	for _, p := range a.Updates {
		switch p.Kind {
		case action.PropDisplay:
			e.graph.SetDisplay(id, p.Display, sceneDisplayKind(p.DisplayKnd))
		case action.PropRemoveDisplay:
			e.graph.RemoveDisplay(id)
		case action.PropParent:
			e.graph.SetParent(id, p.Parent)
		case action.PropAddToLayer:
			e.graph.AddToLayer(id, p.Layer)
		case action.PropRemoveFromLayer:
			e.graph.RemoveFromLayer(id, p.Layer)
		case action.PropBounds:
			e.applyBounds(id, p.Bounds)
		case action.PropRemoveBounds:
			e.graph.RemoveBounds(id)
		}
	}
	for _, p := range a.Updates {
		e.applyTweenProperty(id, p)
	}
}

// applyTweenProperty registers a tween starting from the container's
// current authored value. It deliberately leaves that authored value
// untouched: applyTweens recomputes the effective value fresh from the
// authored base every tick and composes the tween on top (see
// scene/container.go's doc comment and DESIGN.md), so writing the tween's
// end into the authored field here would make it apply twice.
func (e *Engine) applyTweenProperty(id stagewright.ContainerId, p action.UpdateProperty) {
	duration := float64(p.Frames) * e.secondsPerFrame
	switch p.Kind {
	case action.PropTransform:
		start, ok := e.graph.LocalTransform(id)
		if !ok {
			return
		}
		e.graph.AddTween(id, tween.NewTransform(start, p.Transform, p.Easing, p.StepN, duration))
	case action.PropMorphIndex:
		start, ok := e.graph.Morph(id)
		if !ok {
			return
		}
		e.graph.AddTween(id, tween.NewMorphIndex(start, p.MorphIndex, p.Easing, p.StepN, duration))
	case action.PropColoring:
		start, ok := e.graph.Coloring(id)
		if !ok {
			return
		}
		e.graph.AddTween(id, tween.NewColoring(start, p.Coloring, p.ColorSpace, p.Easing, p.StepN, duration))
	case action.PropViewRect:
		start, ok := e.graph.ViewRect(id)
		if !ok {
			return
		}
		e.graph.AddTween(id, tween.NewViewRect(start, p.ViewRect, p.Easing, p.StepN, duration))
	case action.PropOrder:
		start, ok := e.graph.Order(id)
		if !ok {
			return
		}
		e.graph.AddTween(id, tween.NewOrder(start, p.Order, p.Easing, p.StepN, duration))
	}
}

// Update runs one ECS tick, advancing tweens by ft.DeltaTime seconds.
func (e *Engine) Update(ft FrameTime) {
	e.graph.Tick(ft.DeltaTime)
	e.debugLogf("tick dt=%.6f frame=%d", ft.DeltaTime, ft.DeltaFrame)
}

// Drawables returns the ordered per-frame render instructions for the
// current tick.
func (e *Engine) Drawables() []scene.DrawableItem {
	return e.graph.Drawables()
}

// WorldTransform returns id's last-computed world transform, for a host
// inspecting engine state between Update calls.
func (e *Engine) WorldTransform(id stagewright.ContainerId) (stagewright.Affine, bool) {
	return e.graph.WorldTransform(id)
}

// RefreshBounds forces a bounds recompute for id on the next Update, for
// use after a host mutates a referenced library item in place.
func (e *Engine) RefreshBounds(id stagewright.ContainerId) {
	e.graph.RefreshBounds(id)
}

// SpatialQueryRect returns every container on layer whose last-computed
// bounds intersects r. Querying an undefined layer is a NotFound error,
// unlike the silent-no-op policy for mutations against unknown container
// ids.
func (e *Engine) SpatialQueryRect(layer stagewright.QuadTreeLayer, r stagewright.Rect) ([]SelectionHandle, error) {
	if !e.graph.HasLayer(layer) {
		return nil, fmt.Errorf("%w: layer %d is not defined", ErrNotFound, layer)
	}
	return e.handles(e.graph.SpatialQueryRect(layer, r)), nil
}

// SpatialQueryPoint returns every container on layer whose last-computed
// bounds contains p.
func (e *Engine) SpatialQueryPoint(layer stagewright.QuadTreeLayer, p stagewright.Vec2) ([]SelectionHandle, error) {
	if !e.graph.HasLayer(layer) {
		return nil, fmt.Errorf("%w: layer %d is not defined", ErrNotFound, layer)
	}
	return e.handles(e.graph.SpatialQueryPoint(layer, p)), nil
}

// SpatialQueryDisk returns every container on layer whose last-computed
// bounds lies within radius of center.
func (e *Engine) SpatialQueryDisk(layer stagewright.QuadTreeLayer, center stagewright.Vec2, radius float64) ([]SelectionHandle, error) {
	if !e.graph.HasLayer(layer) {
		return nil, fmt.Errorf("%w: layer %d is not defined", ErrNotFound, layer)
	}
	return e.handles(e.graph.SpatialQueryDisk(layer, center, radius)), nil
}

// SpatialQueryRay returns every container on layer whose last-computed
// bounds is hit by the ray from origin in direction dir.
func (e *Engine) SpatialQueryRay(layer stagewright.QuadTreeLayer, origin, dir stagewright.Vec2) ([]SelectionHandle, error) {
	if !e.graph.HasLayer(layer) {
		return nil, fmt.Errorf("%w: layer %d is not defined", ErrNotFound, layer)
	}
	return e.handles(e.graph.SpatialQueryRay(layer, origin, dir)), nil
}

// PublishSelection forwards handles — typically the result of a prior
// SpatialQuery* call — to the installed ecsbridge.Store as one
// EventSpatialHit occurrence per handle. No-op if no store is installed
// (SetEventStore was never called). Mirrors phanxgames-willow's
// EntityStore being fed interaction events only when a host opts in.
func (e *Engine) PublishSelection(layer stagewright.QuadTreeLayer, handles []SelectionHandle) {
	if e.store == nil {
		return
	}
	for _, h := range handles {
		e.store.EmitEvent(ecsbridge.Event{
			Type:        ecsbridge.EventSpatialHit,
			ContainerID: h.ContainerID,
			Layer:       layer,
			Rect:        h.Rect,
		})
	}
}

func (e *Engine) handles(ids []stagewright.ContainerId) []SelectionHandle {
	if len(ids) == 0 {
		return nil
	}
	out := make([]SelectionHandle, len(ids))
	for i, id := range ids {
		rect, _ := e.graph.Bounds(id)
		out[i] = SelectionHandle{ContainerID: id, Rect: rect}
	}
	return out
}
