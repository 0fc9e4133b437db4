package scene

import (
	"fmt"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/quadtree"
)

// Graph is the scene graph: a bijection between external ContainerIds and
// the engine's internal containers, a parent/children index (ids only, no
// back-pointers), and one quad-tree per collision layer.
type Graph struct {
	lib *library.Library

	containers map[stagewright.ContainerId]*container
	parent     map[stagewright.ContainerId]stagewright.ContainerId
	children   map[stagewright.ContainerId][]stagewright.ContainerId
	root       stagewright.ContainerId
	hasRoot    bool

	layers map[stagewright.QuadTreeLayer]*quadtree.Tree[stagewright.ContainerId]
}

// New builds an empty Graph backed by lib for Display/bounds resolution.
// The root container is created separately via CreateRoot, matching the
// action stream's own CreateRoot/EndInitialization ordering.
func New(lib *library.Library) *Graph {
	return &Graph{
		lib:        lib,
		containers: make(map[stagewright.ContainerId]*container),
		parent:     make(map[stagewright.ContainerId]stagewright.ContainerId),
		children:   make(map[stagewright.ContainerId][]stagewright.ContainerId),
		layers:     make(map[stagewright.QuadTreeLayer]*quadtree.Tree[stagewright.ContainerId]),
	}
}

// CreateRoot installs id as the root container. Fails if a root already
// exists: a session may create its root at most once.
func (g *Graph) CreateRoot(id stagewright.ContainerId) error {
	if g.hasRoot {
		return fmt.Errorf("scene: CreateRoot: root already exists (InvalidAction)")
	}
	c := newContainer(id)
	g.containers[id] = c
	g.parent[id] = id
	g.root = id
	g.hasRoot = true
	return nil
}

// Root returns the root container's id.
func (g *Graph) Root() stagewright.ContainerId { return g.root }

// AddLayer registers a collision layer's quad-tree, covering bounds with
// the given configuration. Initialization-only.
func (g *Graph) AddLayer(layer stagewright.QuadTreeLayer, bounds stagewright.Rect, cfg quadtree.Config) {
	g.layers[layer] = quadtree.New[stagewright.ContainerId](bounds, cfg)
}

// CreateContainer inserts a new non-root container as a child of parent. A
// missing parent is a silent no-op.
func (g *Graph) CreateContainer(id, parent stagewright.ContainerId) {
	if _, ok := g.containers[parent]; !ok {
		return
	}
	if _, exists := g.containers[id]; exists {
		return
	}
	c := newContainer(id)
	c.transformDirty = true
	g.containers[id] = c
	g.parent[id] = parent
	g.children[parent] = append(g.children[parent], id)
}

// RemoveContainer removes id and, when cascade is true, every descendant,
// in one operation: ECS state, quad-tree entries, and the id->container
// mapping are all purged together. Unknown ids are silent no-ops.
func (g *Graph) RemoveContainer(id stagewright.ContainerId, cascade bool) {
	if _, ok := g.containers[id]; !ok || id == g.root {
		return
	}
	var toRemove []stagewright.ContainerId
	if cascade {
		toRemove = g.collectSubtree(id)
	} else {
		toRemove = []stagewright.ContainerId{id}
	}
	for _, rid := range toRemove {
		g.purge(rid)
	}
	// Detach id from its parent's children list.
	p := g.parent[id]
	siblings := g.children[p]
	for i, s := range siblings {
		if s == id {
			g.children[p] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

func (g *Graph) collectSubtree(id stagewright.ContainerId) []stagewright.ContainerId {
	out := []stagewright.ContainerId{id}
	for _, child := range g.children[id] {
		out = append(out, g.collectSubtree(child)...)
	}
	return out
}

func (g *Graph) purge(id stagewright.ContainerId) {
	c := g.containers[id]
	if c != nil {
		for layer := range c.layers {
			if tr, ok := g.layers[layer]; ok {
				tr.Remove(id)
			}
		}
	}
	delete(g.containers, id)
	delete(g.parent, id)
	delete(g.children, id)
}

// Exists reports whether id names a live container.
func (g *Graph) Exists(id stagewright.ContainerId) bool {
	_, ok := g.containers[id]
	return ok
}

// --- Immediate property mutators (the non-tween UpdateContainer
// properties; unknown ids are silent no-ops throughout). ---

// SetLocalTransform installs a new local transform directly (no tween).
func (g *Graph) SetLocalTransform(id stagewright.ContainerId, srt stagewright.ScaleRotationTranslation) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.localTransform = srt
	c.transformDirty = true
}

// SetDisplay installs a Display component referencing a library item.
func (g *Graph) SetDisplay(id stagewright.ContainerId, libID stagewright.LibraryId, kind DisplayKind) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasDisplay = true
	c.displayID = libID
	c.displayKind = kind
	c.boundsDirty = true
}

// RemoveDisplay clears a container's Display component.
func (g *Graph) RemoveDisplay(id stagewright.ContainerId) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasDisplay = false
	c.boundsDirty = true
}

// SetParent reparents id under newParent, detaching it from its current
// parent. A missing id or newParent, or a newParent that would introduce a
// cycle, is a silent no-op.
func (g *Graph) SetParent(id, newParent stagewright.ContainerId) {
	if id == g.root {
		return
	}
	if _, ok := g.containers[id]; !ok {
		return
	}
	if _, ok := g.containers[newParent]; !ok {
		return
	}
	if g.isAncestor(id, newParent) {
		return
	}
	oldParent := g.parent[id]
	siblings := g.children[oldParent]
	for i, s := range siblings {
		if s == id {
			g.children[oldParent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	g.parent[id] = newParent
	g.children[newParent] = append(g.children[newParent], id)
	g.containers[id].transformDirty = true
}

func (g *Graph) isAncestor(id, candidate stagewright.ContainerId) bool {
	for cur := candidate; ; {
		if cur == id {
			return true
		}
		if cur == g.root {
			return false
		}
		cur = g.parent[cur]
	}
}

// AddToLayer adds id to a collision layer's membership.
func (g *Graph) AddToLayer(id stagewright.ContainerId, layer stagewright.QuadTreeLayer) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	if c.layers == nil {
		c.layers = make(map[stagewright.QuadTreeLayer]bool)
	}
	c.layers[layer] = true
	c.boundsDirty = true
}

// RemoveFromLayer removes id from a collision layer's membership.
func (g *Graph) RemoveFromLayer(id stagewright.ContainerId, layer stagewright.QuadTreeLayer) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	delete(c.layers, layer)
	if tr, ok := g.layers[layer]; ok {
		tr.Remove(id)
	}
}

// SetBoundsDefined installs an explicit local bounds rect.
func (g *Graph) SetBoundsDefined(id stagewright.ContainerId, rect stagewright.Rect) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasBounds = true
	c.boundsSource = BoundsDefined
	c.definedRect = rect
	c.boundsDirty = true
}

// SetBoundsFromDisplay switches a container's bounds source back to
// tracking its Display component.
func (g *Graph) SetBoundsFromDisplay(id stagewright.ContainerId) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasBounds = true
	c.boundsSource = BoundsFromDisplay
	c.boundsDirty = true
}

// RemoveBounds clears a container's Bounds component entirely.
func (g *Graph) RemoveBounds(id stagewright.ContainerId) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasBounds = false
	for layer := range c.layers {
		if tr, ok := g.layers[layer]; ok {
			tr.Remove(id)
		}
	}
}

// SetColoringImmediate installs a Coloring override directly (no tween).
func (g *Graph) SetColoringImmediate(id stagewright.ContainerId, coloring stagewright.Coloring) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.coloring = coloring
}

// SetOrderImmediate installs a paint order directly (no tween).
func (g *Graph) SetOrderImmediate(id stagewright.ContainerId, order int8) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.order = order
}

// SetMorphImmediate installs a morph scalar directly (no tween), clamped
// to [0, 1].
func (g *Graph) SetMorphImmediate(id stagewright.ContainerId, morph float64) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.morph = stagewright.Clamp01(morph)
	c.boundsDirty = true
}

// SetViewRectImmediate installs a ViewRect directly (no tween).
func (g *Graph) SetViewRectImmediate(id stagewright.ContainerId, rect stagewright.Rect) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.hasViewRect = true
	c.viewRect = rect
	c.boundsDirty = true
}

// --- Accessors (read the authored value a tween-creating update should
// start from; see stagewright/engine). ---

// LocalTransform returns id's authored local transform.
func (g *Graph) LocalTransform(id stagewright.ContainerId) (stagewright.ScaleRotationTranslation, bool) {
	c, ok := g.containers[id]
	if !ok {
		return stagewright.ScaleRotationTranslation{}, false
	}
	return c.localTransform, true
}

// Coloring returns id's authored coloring override.
func (g *Graph) Coloring(id stagewright.ContainerId) (stagewright.Coloring, bool) {
	c, ok := g.containers[id]
	if !ok {
		return stagewright.Coloring{}, false
	}
	return c.coloring, true
}

// ViewRect returns id's authored view rectangle.
func (g *Graph) ViewRect(id stagewright.ContainerId) (stagewright.Rect, bool) {
	c, ok := g.containers[id]
	if !ok {
		return stagewright.Rect{}, false
	}
	return c.viewRect, true
}

// Morph returns id's authored morph scalar.
func (g *Graph) Morph(id stagewright.ContainerId) (float64, bool) {
	c, ok := g.containers[id]
	if !ok {
		return 0, false
	}
	return c.morph, true
}

// Order returns id's authored paint order.
func (g *Graph) Order(id stagewright.ContainerId) (int8, bool) {
	c, ok := g.containers[id]
	if !ok {
		return 0, false
	}
	return c.order, true
}

// Bounds returns id's last-computed world-space AABB.
func (g *Graph) Bounds(id stagewright.ContainerId) (stagewright.Rect, bool) {
	c, ok := g.containers[id]
	if !ok || !c.hasBounds {
		return stagewright.Rect{}, false
	}
	return c.boundsRect, true
}

// WorldTransform returns id's last-computed world transform.
func (g *Graph) WorldTransform(id stagewright.ContainerId) (stagewright.Affine, bool) {
	c, ok := g.containers[id]
	if !ok {
		return stagewright.Affine{}, false
	}
	return c.worldTransform, true
}

// HasLayer reports whether layer was registered via AddLayer.
func (g *Graph) HasLayer(layer stagewright.QuadTreeLayer) bool {
	_, ok := g.layers[layer]
	return ok
}

// RefreshBounds forces a bounds recompute for id on the next tick, for use
// after the host mutates a referenced library item in place.
func (g *Graph) RefreshBounds(id stagewright.ContainerId) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.boundsDirty = true
}
