// Package scene implements the container tree, its optional ECS-style
// components, the ordered tween/transform/bounds/quad-tree system
// pipeline, and per-layer quad-tree synchronization.
//
// Grounded on phanxgames-willow/node.go (flat-struct entity with optional
// fields, parent/children bookkeeping, cycle and dirty-flag handling) and
// transform.go (world-transform DFS), generalized from willow's immediate
// sprite/text/mesh tree to the spec's tween-driven container components.
package scene

import (
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/tween"
)

// DisplayKind selects what a Container's Display component references.
type DisplayKind int

const (
	DisplayVector DisplayKind = iota
	DisplayRaster
)

// BoundsSource selects how a Container's world-space bounds are derived.
type BoundsSource int

const (
	// BoundsFromDisplay derives bounds from the referenced library item.
	BoundsFromDisplay BoundsSource = iota
	// BoundsDefined uses an explicitly authored local rect.
	BoundsDefined
)

// container holds every optional component for one scene-graph node. A
// single flat struct is used for all containers, following
// phanxgames-willow's Node — avoids interface dispatch on the per-tick hot
// path at the cost of some always-allocated fields.
type container struct {
	id stagewright.ContainerId

	// localTransform is the authored (immediate) local transform; effective
	// is this tick's value after ApplyTransformTweens composes any active
	// transform tweens on top of it. worldTransform is effective composed
	// with the parent's worldTransform.
	localTransform stagewright.ScaleRotationTranslation
	effectiveLocal stagewright.Affine
	worldTransform stagewright.Affine
	transformDirty bool // authored transform or an active tween changed this tick
	worldDirty     bool // transient: worldTransform was recomputed this tick

	hasDisplay  bool
	displayID   stagewright.LibraryId
	displayKind DisplayKind

	hasViewRect    bool
	viewRect       stagewright.Rect
	effectiveVR    stagewright.Rect
	effectiveHasVR bool

	coloring          stagewright.Coloring // authored; zero value is the None variant
	effectiveColoring stagewright.Coloring

	order          int8
	effectiveOrder int8

	morph          float64
	effectiveMorph float64

	layers map[stagewright.QuadTreeLayer]bool

	hasBounds    bool
	boundsRect   stagewright.Rect
	boundsSource BoundsSource
	definedRect  stagewright.Rect // local rect, used when boundsSource == BoundsDefined
	boundsDirty  bool            // authored state or an extent-affecting tween changed this tick
	boundsMoved  bool            // transient: boundsRect was recomputed this tick

	tweens []tween.PropertyTween
}

func newContainer(id stagewright.ContainerId) *container {
	c := &container{
		id:             id,
		localTransform: stagewright.IdentitySRT(),
		worldTransform: stagewright.IdentityAffine,
		effectiveLocal: stagewright.IdentityAffine,
	}
	return c
}

// DrawableItem is the engine's per-frame render instruction for one
// visited container carrying a Display component.
type DrawableItem struct {
	ContainerID    stagewright.ContainerId
	LibraryID      stagewright.LibraryId
	DisplayKind    DisplayKind
	WorldTransform stagewright.Affine
	Coloring       stagewright.Coloring
	HasViewRect    bool
	ViewRect       stagewright.Rect
	Morph          float64
}
