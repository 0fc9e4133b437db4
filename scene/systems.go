package scene

import (
	"sort"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/tween"
)

// Tick runs one full system pass in dependency order:
//
//	ApplyTransformTweens \
//	ApplyMorphTweens      \____ UpdateWorldTransform ─ UpdateBounds ─ UpdateQuadTree
//	ApplyViewRectTweens   /
//	ApplyColoringTweens  /     UpdateTweens (advance elapsed, drop done)
//
// plus ApplyOrderTweens, reconciled alongside the four named Apply systems
// (see DESIGN.md). Elapsed time advances before the Apply* systems sample
// it, so the tick on which a tween reaches its duration still applies the
// terminal value rather than lagging a tick behind; dropping completed
// tweens is deferred until after that tick's Apply* pass has consumed them,
// so the last frame of a tween still observes its terminal value.
func (g *Graph) Tick(delta float64) {
	g.advanceTweens(delta)
	g.applyTweens()
	g.updateWorldTransform()
	g.updateBounds()
	g.updateQuadTree()
	g.dropCompletedTweens()
}

// applyTweens computes each container's effective per-tick component
// values: transform tweens compose multiplicatively onto the authored
// local transform, morph tweens multiply the authored scalar, and
// color/view-rect/coloring/order tweens overwrite.
func (g *Graph) applyTweens() {
	for _, c := range g.containers {
		c.effectiveLocal = c.localTransform.ToAffine()
		c.effectiveMorph = c.morph
		c.effectiveColoring = c.coloring
		c.effectiveOrder = c.order
		c.effectiveVR, c.effectiveHasVR = c.viewRect, c.hasViewRect

		if len(c.tweens) == 0 {
			continue
		}
		for i := range c.tweens {
			t := &c.tweens[i]
			u := t.Update()
			switch u.Kind {
			case tween.KindTransform:
				c.effectiveLocal = c.effectiveLocal.Mul(u.Transform.ToAffine())
				c.transformDirty = true
			case tween.KindMorphIndex:
				c.effectiveMorph = stagewright.Clamp01(c.effectiveMorph * u.MorphIndex)
				c.boundsDirty = true
			case tween.KindColoring:
				c.effectiveColoring = u.Coloring
			case tween.KindViewRect:
				c.effectiveVR = u.ViewRect
				c.effectiveHasVR = true
				c.boundsDirty = true
			case tween.KindOrder:
				c.effectiveOrder = u.Order
			}
		}
	}
}

// updateWorldTransform performs a DFS from the root: every node whose
// effective local transform was flagged dirty this tick, or whose parent
// was dirtied, gets worldTransform = parent.worldTransform * effectiveLocal
// and is itself flagged dirty for UpdateBounds.
func (g *Graph) updateWorldTransform() {
	var visit func(id stagewright.ContainerId, parentDirty bool)
	visit = func(id stagewright.ContainerId, parentDirty bool) {
		c := g.containers[id]
		dirty := c.transformDirty || parentDirty
		if dirty {
			if id == g.root {
				c.worldTransform = c.effectiveLocal
			} else {
				parent := g.containers[g.parent[id]]
				c.worldTransform = parent.worldTransform.Mul(c.effectiveLocal)
			}
			c.worldDirty = true
		} else {
			c.worldDirty = false
		}
		c.transformDirty = false
		for _, child := range g.children[id] {
			visit(child, dirty)
		}
	}
	visit(g.root, false)
}

// updateBounds recomputes the world-space AABB of every container whose
// world transform changed this tick, or whose bounds component was marked
// dirty by an extent-affecting change (morph, view-rect, display, or an
// explicit RefreshBounds).
func (g *Graph) updateBounds() {
	for id, c := range g.containers {
		if !c.hasBounds {
			c.boundsMoved = false
			continue
		}
		if !c.worldDirty && !c.boundsDirty {
			c.boundsMoved = false
			continue
		}
		c.boundsRect = g.computeBounds(id, c)
		c.boundsMoved = true
		c.boundsDirty = false
	}
}

func (g *Graph) computeBounds(id stagewright.ContainerId, c *container) stagewright.Rect {
	switch c.boundsSource {
	case BoundsDefined:
		return transformRect(c.definedRect, c.worldTransform)
	default:
		return g.boundsFromDisplay(c)
	}
}

func (g *Graph) boundsFromDisplay(c *container) stagewright.Rect {
	if !c.hasDisplay {
		return stagewright.Rect{}
	}
	item, ok := g.lib.Get(c.displayID)
	if !ok {
		return stagewright.Rect{}
	}
	switch item.Kind {
	case library.KindVector:
		local := item.Vector.Bounds(c.effectiveMorph)
		return transformRect(local, c.worldTransform)
	case library.KindRaster:
		local := stagewright.Rect{Width: float64(item.Raster.Width), Height: float64(item.Raster.Height)}
		if c.effectiveHasVR {
			local = c.effectiveVR
		}
		return transformRect(local, c.worldTransform)
	default:
		return stagewright.Rect{}
	}
}

// transformRect projects r's four corners through t and returns the
// resulting AABB.
func transformRect(r stagewright.Rect, t stagewright.Affine) stagewright.Rect {
	corners := [4]stagewright.Vec2{
		{X: r.MinX(), Y: r.MinY()}, {X: r.MaxX(), Y: r.MinY()},
		{X: r.MinX(), Y: r.MaxY()}, {X: r.MaxX(), Y: r.MaxY()},
	}
	first := t.TransformPoint(corners[0])
	out := stagewright.Rect{X: first.X, Y: first.Y}
	for _, corn := range corners[1:] {
		p := t.TransformPoint(corn)
		out = out.Union(stagewright.Rect{X: p.X, Y: p.Y})
	}
	return out
}

// updateQuadTree re-synchronizes every container whose bounds moved this
// tick (or whose layer membership changed) with the trees for its current
// layers. Tree.Insert upserts, so this also handles a container entering
// a layer for the first time.
func (g *Graph) updateQuadTree() {
	for id, c := range g.containers {
		if len(c.layers) == 0 || !c.boundsMoved {
			continue
		}
		for layer := range c.layers {
			tr, ok := g.layers[layer]
			if !ok {
				continue
			}
			tr.Insert(id, c.boundsRect)
		}
	}
}

// advanceTweens accumulates delta seconds of elapsed time on every active
// tween, ahead of this tick's Apply* systems.
func (g *Graph) advanceTweens(delta float64) {
	for _, c := range g.containers {
		for i := range c.tweens {
			c.tweens[i].Advance(delta)
		}
	}
}

// dropCompletedTweens removes every tween that reached is_complete() this
// tick, after the Apply* systems have had a chance to sample its terminal
// value.
func (g *Graph) dropCompletedTweens() {
	for _, c := range g.containers {
		if len(c.tweens) == 0 {
			continue
		}
		kept := c.tweens[:0]
		for i := range c.tweens {
			if !c.tweens[i].IsComplete() {
				kept = append(kept, c.tweens[i])
			}
		}
		c.tweens = kept
	}
}

// Drawables traverses the scene graph breadth-first from the root,
// sorting each node's children by Order ascending (stable) before
// visiting them, and emits a DrawableItem for every visited node carrying
// a Display component, in visit order — a flat back-to-front list.
func (g *Graph) Drawables() []DrawableItem {
	var out []DrawableItem
	queue := []stagewright.ContainerId{g.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		c := g.containers[id]
		if c.hasDisplay {
			if _, ok := g.lib.Get(c.displayID); ok {
				out = append(out, DrawableItem{
					ContainerID:    id,
					LibraryID:      c.displayID,
					DisplayKind:    c.displayKind,
					WorldTransform: c.worldTransform,
					Coloring:       c.effectiveColoring,
					HasViewRect:    c.effectiveHasVR,
					ViewRect:       c.effectiveVR,
					Morph:          c.effectiveMorph,
				})
			}
		}
		children := append([]stagewright.ContainerId(nil), g.children[id]...)
		sort.SliceStable(children, func(i, j int) bool {
			return g.containers[children[i]].effectiveOrder < g.containers[children[j]].effectiveOrder
		})
		queue = append(queue, children...)
	}
	return out
}
