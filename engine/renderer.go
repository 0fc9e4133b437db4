package engine

import (
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/scene"
	"github.com/phanxgames/stagewright/shape"
)

// Renderer is the external rasterizer contract. RenderFrame calls these
// strictly in this order once per presented frame: one StartFrame, one
// SetBackground, one DrawShape/DrawBitmap per DrawableItem in drawables()
// order, then one EndFrame. Implementing a concrete Renderer (an ebiten
// backend, a software rasterizer, a test recorder) is out of scope here —
// the engine only owns the boundary, not a GPU backend.
type Renderer interface {
	StartFrame(size stagewright.Vector2I)
	SetBackground(c stagewright.Color)
	DrawShape(s shape.Shape, worldTransform stagewright.Affine, coloring stagewright.Coloring)
	DrawBitmap(bmp library.Pattern, viewRect stagewright.Rect, worldTransform stagewright.Affine, tint stagewright.Coloring)
	EndFrame()
}

// RenderFrame drives r through one frame's worth of output from the
// engine's current Drawables(), grounded on phanxgames-willow's
// gameShell.Draw/Scene.Draw split (clear-then-traverse-then-present).
// Drawables referencing a library item that has since been removed are
// silently skipped, matching the unknown-id policy the rest of the engine
// follows.
func (e *Engine) RenderFrame(r Renderer) {
	r.StartFrame(e.stageSize)
	r.SetBackground(e.background)
	for _, d := range e.Drawables() {
		switch d.DisplayKind {
		case scene.DisplayVector:
			if s, ok := e.lib.Shape(d.LibraryID); ok {
				r.DrawShape(s, d.WorldTransform, d.Coloring)
			}
		case scene.DisplayRaster:
			if pat, ok := e.lib.Pattern(d.LibraryID); ok {
				viewRect := d.ViewRect
				if !d.HasViewRect {
					viewRect = stagewright.Rect{Width: float64(pat.Width), Height: float64(pat.Height)}
				}
				r.DrawBitmap(pat, viewRect, d.WorldTransform, d.Coloring)
			}
		}
	}
	r.EndFrame()
}
