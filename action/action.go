// Package action defines the Action sum type that drives a playback
// session and the streaming cursor (List) that advances through it.
//
// Grounded on original_source/fluster_core/src/actions.rs, translated
// from a Rust closed enum into the tagged-struct variant idiom this
// module already uses for tween.PropertyTween and shape.Edge, rather
// than a Go interface-per-case hierarchy.
package action

import (
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/shape"
)

// Kind enumerates the cases of the Action variant.
type Kind int

const (
	KindCreateRoot Kind = iota
	KindAddQuadTreeLayer
	KindSetBackground
	KindEndInitialization
	KindLabel
	KindDefineShape
	KindLoadBitmap
	KindCreateContainer
	KindUpdateContainer
	KindRemoveContainer
	KindPresentFrame
)

// LayerOptions parameterizes a collision layer registered by
// AddQuadTreeLayer: Buffer inflates the tree's root AABB on every side,
// giving moving bounds some slack before they fall outside it.
type LayerOptions struct {
	Buffer float64
}

// CreationProperty is one property attached to a CreateContainer action.
// Exactly one field matching Kind is populated.
type CreationProperty struct {
	Kind       PropertyKind
	Transform  stagewright.ScaleRotationTranslation
	MorphIndex float64
	Coloring   stagewright.Coloring
	ViewRect   stagewright.Rect
	Display    stagewright.LibraryId
	DisplayKnd DisplayKindValue
	Layer      stagewright.QuadTreeLayer
	Order      int8
	Bounds     BoundsDefinition
}

// PropertyKind enumerates the cases of CreationProperty and the
// immediate (non-tween) cases of UpdateProperty.
type PropertyKind int

const (
	PropTransform PropertyKind = iota
	PropMorphIndex
	PropColoring
	PropViewRect
	PropDisplay
	PropLayer
	PropOrder
	PropBounds
	PropRemoveDisplay
	PropParent
	PropAddToLayer
	PropRemoveFromLayer
	PropRemoveBounds
)

// DisplayKindValue mirrors scene.DisplayKind without importing the scene
// package, keeping action a leaf dependency the way the teacher keeps its
// action-equivalent types free of engine-internal imports.
type DisplayKindValue int

const (
	DisplayVector DisplayKindValue = iota
	DisplayRaster
)

// BoundsDefinition selects a container's bounds source for CreateContainer/
// UpdateContainer's Bounds property.
type BoundsDefinition struct {
	FromDisplay bool
	Defined     stagewright.Rect // used when FromDisplay is false
}

// UpdateProperty is one property attached to an UpdateContainer action.
// The tween-creating cases (Transform, MorphIndex, Coloring, ViewRect,
// Order) additionally carry Easing/Frames; the immediate cases ignore
// them. StepN carries the step count for Easing == stagewright.EasingStep
// and is ignored for every other curve.
type UpdateProperty struct {
	Kind PropertyKind

	Transform  stagewright.ScaleRotationTranslation
	MorphIndex float64
	Coloring   stagewright.Coloring
	ColorSpace stagewright.ColorSpace
	ViewRect   stagewright.Rect
	Order      int8
	Easing     stagewright.Easing
	StepN      int
	Frames     uint32

	Display    stagewright.LibraryId
	DisplayKnd DisplayKindValue
	Parent     stagewright.ContainerId
	Layer      stagewright.QuadTreeLayer
	Bounds     BoundsDefinition
}

// Action is a single entry in a playback session's action stream. Only
// the fields matching Kind are populated.
type Action struct {
	Kind Kind

	ContainerID stagewright.ContainerId // CreateRoot, RemoveContainer
	Cascade     bool                    // RemoveContainer

	Layer        stagewright.QuadTreeLayer // AddQuadTreeLayer
	LayerExtent  stagewright.Rect          // AddQuadTreeLayer
	LayerOptions LayerOptions              // AddQuadTreeLayer

	Background stagewright.Color // SetBackground

	Label string // Label

	LibraryID stagewright.LibraryId // DefineShape, LoadBitmap
	Shape     shape.Shape           // DefineShape
	Bitmap    library.Bitmap        // LoadBitmap

	Parent     stagewright.ContainerId // CreateContainer
	Properties []CreationProperty      // CreateContainer
	Updates    []UpdateProperty        // UpdateContainer

	FrameStart uint32 // PresentFrame
	FrameCount uint32 // PresentFrame
}

// CreateRoot builds a CreateRoot action.
func CreateRoot(id stagewright.ContainerId) Action {
	return Action{Kind: KindCreateRoot, ContainerID: id}
}

// AddQuadTreeLayer builds an AddQuadTreeLayer action.
func AddQuadTreeLayer(layer stagewright.QuadTreeLayer, extent stagewright.Rect, opts LayerOptions) Action {
	return Action{Kind: KindAddQuadTreeLayer, Layer: layer, LayerExtent: extent, LayerOptions: opts}
}

// SetBackground builds a SetBackground action.
func SetBackground(c stagewright.Color) Action {
	return Action{Kind: KindSetBackground, Background: c}
}

// EndInitialization builds an EndInitialization action.
func EndInitialization() Action { return Action{Kind: KindEndInitialization} }

// Label builds a Label action.
func Label(name string) Action { return Action{Kind: KindLabel, Label: name} }

// DefineShape builds a DefineShape action.
func DefineShape(id stagewright.LibraryId, s shape.Shape) Action {
	return Action{Kind: KindDefineShape, LibraryID: id, Shape: s}
}

// LoadBitmap builds a LoadBitmap action.
func LoadBitmap(id stagewright.LibraryId, bmp library.Bitmap) Action {
	return Action{Kind: KindLoadBitmap, LibraryID: id, Bitmap: bmp}
}

// CreateContainer builds a CreateContainer action.
func CreateContainer(id, parent stagewright.ContainerId, props ...CreationProperty) Action {
	return Action{Kind: KindCreateContainer, ContainerID: id, Parent: parent, Properties: props}
}

// UpdateContainer builds an UpdateContainer action.
func UpdateContainer(id stagewright.ContainerId, props ...UpdateProperty) Action {
	return Action{Kind: KindUpdateContainer, ContainerID: id, Updates: props}
}

// RemoveContainer builds a RemoveContainer action.
func RemoveContainer(id stagewright.ContainerId, cascade bool) Action {
	return Action{Kind: KindRemoveContainer, ContainerID: id, Cascade: cascade}
}

// PresentFrame builds a PresentFrame action.
func PresentFrame(start, count uint32) Action {
	return Action{Kind: KindPresentFrame, FrameStart: start, FrameCount: count}
}
