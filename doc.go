// Package stagewright is the runtime core of a 2D retained-mode
// scene-graph animation engine: a streaming action list, a tween-driven
// ECS scene graph, and per-layer quad-tree spatial indexes, assembled by
// the playback driver in package engine.
//
// The core consumes an ordered action stream (package action), applies
// scene mutations to a container tree (package scene), advances
// property tweens (package tween) against 31 Penner easing curves plus
// Step and None, and
// emits a back-to-front list of drawable items each presented frame for
// an external rasterizer to consume through the engine.Renderer
// contract. Vector shapes and bitmap patterns live in package library;
// shape geometry and morphing live in package shape; binary
// serialization of the action stream lives in package wire.
//
// This package holds the types shared across all of the above:
// ContainerId/LibraryId, the Vec2/Rect/Affine geometry, Color/Coloring,
// and the Easing enum.
package stagewright
