// Package library implements the session-scoped resource store: a mapping
// from LibraryId to a vector shape tree or an immutable raster pattern,
// append-mostly with idempotent inserts.
//
// Grounded on original_source/fluster_core/src/types/basic.rs (Bitmap,
// Pattern construction) and phanxgames-willow's texture/atlas caching
// idiom (atlas.go) for the "build once, hold a shared *ebiten.Image"
// shape of LoadBitmap.
package library

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/shape"
)

// Kind enumerates the two cases a library Item may hold.
type Kind int

const (
	// KindVector holds a vector Shape tree.
	KindVector Kind = iota
	// KindRaster holds an immutable raster Pattern.
	KindRaster
)

// Bitmap is raw raster pixel data, as supplied by a LoadBitmap action
// before it is converted into a Pattern.
type Bitmap struct {
	SizeX, SizeY int
	Colors       []stagewright.Color
}

// Pattern is an immutable image pattern with integer pixel size and a
// shared GPU-resident pixel buffer.
type Pattern struct {
	Width, Height int
	Image         *ebiten.Image
}

// Item is one entry in the library: either a vector shape or a raster
// pattern, selected by Kind.
type Item struct {
	Kind   Kind
	Vector shape.Shape
	Raster Pattern
}

// Library is the session's resource store. Shapes and patterns are
// exclusively owned here; containers reference them by LibraryId only.
// Not safe for concurrent use — the engine is single-threaded and mutates
// the library only between ticks.
type Library struct {
	items map[stagewright.LibraryId]Item
}

// New returns an empty Library.
func New() *Library {
	return &Library{items: make(map[stagewright.LibraryId]Item)}
}

// AddShape inserts a vector shape under id. Idempotent: if id is already
// present (of either kind), the existing entry is left untouched and
// AddShape returns false.
func (l *Library) AddShape(id stagewright.LibraryId, s shape.Shape) bool {
	if _, exists := l.items[id]; exists {
		return false
	}
	l.items[id] = Item{Kind: KindVector, Vector: s}
	return true
}

// LoadBitmap converts raw pixel data into a Pattern and inserts it under
// id. Idempotent like AddShape.
func (l *Library) LoadBitmap(id stagewright.LibraryId, bmp Bitmap) (bool, error) {
	if _, exists := l.items[id]; exists {
		return false, nil
	}
	if bmp.SizeX <= 0 || bmp.SizeY <= 0 {
		return false, fmt.Errorf("library: LoadBitmap %s: non-positive size %dx%d", id, bmp.SizeX, bmp.SizeY)
	}
	if len(bmp.Colors) != bmp.SizeX*bmp.SizeY {
		return false, fmt.Errorf("library: LoadBitmap %s: expected %d pixels, got %d",
			id, bmp.SizeX*bmp.SizeY, len(bmp.Colors))
	}

	pix := make([]byte, 4*bmp.SizeX*bmp.SizeY)
	for i, c := range bmp.Colors {
		pix[i*4+0] = toByte(c.R)
		pix[i*4+1] = toByte(c.G)
		pix[i*4+2] = toByte(c.B)
		pix[i*4+3] = toByte(c.A)
	}
	img := ebiten.NewImage(bmp.SizeX, bmp.SizeY)
	img.WritePixels(pix)

	l.items[id] = Item{Kind: KindRaster, Raster: Pattern{Width: bmp.SizeX, Height: bmp.SizeY, Image: img}}
	return true, nil
}

func toByte(v float64) byte {
	v = stagewright.Clamp01(v)
	return byte(v*255 + 0.5)
}

// Remove deletes id from the library, if present.
func (l *Library) Remove(id stagewright.LibraryId) {
	delete(l.items, id)
}

// Get returns the item stored under id, if any.
func (l *Library) Get(id stagewright.LibraryId) (Item, bool) {
	item, ok := l.items[id]
	return item, ok
}

// Shape returns the vector shape stored under id, if id names a
// KindVector item.
func (l *Library) Shape(id stagewright.LibraryId) (shape.Shape, bool) {
	item, ok := l.items[id]
	if !ok || item.Kind != KindVector {
		return shape.Shape{}, false
	}
	return item.Vector, true
}

// Pattern returns the raster pattern stored under id, if id names a
// KindRaster item.
func (l *Library) Pattern(id stagewright.LibraryId) (Pattern, bool) {
	item, ok := l.items[id]
	if !ok || item.Kind != KindRaster {
		return Pattern{}, false
	}
	return item.Raster, true
}
