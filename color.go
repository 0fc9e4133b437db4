package stagewright

import "github.com/lucasb-eyer/go-colorful"

// Color is a straight, non-premultiplied linear-RGBA color with components
// in [0, 1]. This is the engine's canonical color representation; all
// tweens produce and lerp in this form.
type Color struct {
	R, G, B, A float64
}

// ColorSpace selects the space a color lerp is performed in. Only the
// leaves of a Coloring tree are affected; the tree structure itself is
// matched in whatever space the container's update specifies.
type ColorSpace int

const (
	// ColorSpaceLinear lerps each RGBA channel directly.
	ColorSpaceLinear ColorSpace = iota
	// ColorSpaceHsv lerps in HSV (hue takes the conventional, non-shortest
	// convex path; see DESIGN.md).
	ColorSpaceHsv
	// ColorSpaceLab lerps in CIE L*a*b*.
	ColorSpaceLab
	// ColorSpaceLch lerps in CIE LCh(ab).
	ColorSpaceLch
)

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp interpolates from c to o by proportion t (already eased, unclamped)
// in the given color space. Alpha always lerps linearly.
func (c Color) Lerp(o Color, t float64, space ColorSpace) Color {
	a := Lerp(c.A, o.A, t)
	switch space {
	case ColorSpaceHsv:
		h1, s1, v1 := c.toColorful().Hsv()
		h2, s2, v2 := o.toColorful().Hsv()
		h := lerpHue(h1, h2, t)
		return fromColorful(colorful.Hsv(h, Lerp(s1, s2, t), Lerp(v1, v2, t)), a)
	case ColorSpaceLab:
		l1, a1, b1 := c.toColorful().Lab()
		l2, a2, b2 := o.toColorful().Lab()
		return fromColorful(colorful.Lab(Lerp(l1, l2, t), Lerp(a1, a2, t), Lerp(b1, b2, t)), a)
	case ColorSpaceLch:
		h1, c1, l1 := c.toColorful().Hcl()
		h2, c2, l2 := o.toColorful().Hcl()
		h := lerpHue(h1, h2, t)
		return fromColorful(colorful.Hcl(h, Lerp(c1, c2, t), Lerp(l1, l2, t)), a)
	default:
		return Color{
			R: Lerp(c.R, o.R, t),
			G: Lerp(c.G, o.G, t),
			B: Lerp(c.B, o.B, t),
			A: a,
		}
	}
}

// lerpHue performs the conventional convex lerp of a hue angle in degrees
// [0, 360), not the shortest-arc lerp — matching the reference
// implementation's color-space choice (see DESIGN.md).
func lerpHue(h1, h2, t float64) float64 {
	return Lerp(h1, h2, t)
}

// Coloring is a recursive color override tree, structurally mirroring a
// shape's group/path hierarchy. A Container's Coloring component, and a
// Shape's default per-path coloring, are both expressed with this type.
type Coloring struct {
	// Kind selects which case of the variant is populated.
	Kind ColoringKind
	// Color is populated when Kind == ColoringKindColor.
	Color Color
	// Children is populated when Kind == ColoringKindColorings.
	Children []Coloring
}

// ColoringKind enumerates the cases of the Coloring variant.
type ColoringKind int

const (
	// ColoringKindNone means no override; the shape's own default applies.
	ColoringKindNone ColoringKind = iota
	// ColoringKindColor is a single leaf color.
	ColoringKindColor
	// ColoringKindColorings is an ordered list of child overrides,
	// mirroring a Group shape's children.
	ColoringKindColorings
)

// NewColorColoring builds a leaf Coloring of a single color.
func NewColorColoring(c Color) Coloring {
	return Coloring{Kind: ColoringKindColor, Color: c}
}

// NewGroupColoring builds a Coloring with the given children, mirroring a
// Group shape's structure.
func NewGroupColoring(children ...Coloring) Coloring {
	return Coloring{Kind: ColoringKindColorings, Children: children}
}

// LerpColoring interpolates from a to b by proportion t (already eased) in
// the given color space, recursively at every leaf. If a and b do not have
// identical tree structure (same Kind at every level, same child count),
// the result is the None variant.
func LerpColoring(a, b Coloring, t float64, space ColorSpace) Coloring {
	if a.Kind != b.Kind {
		return Coloring{Kind: ColoringKindNone}
	}
	switch a.Kind {
	case ColoringKindColor:
		return NewColorColoring(a.Color.Lerp(b.Color, t, space))
	case ColoringKindColorings:
		if len(a.Children) != len(b.Children) {
			return Coloring{Kind: ColoringKindNone}
		}
		out := make([]Coloring, len(a.Children))
		for i := range a.Children {
			out[i] = LerpColoring(a.Children[i], b.Children[i], t, space)
			if out[i].Kind == ColoringKindNone {
				return Coloring{Kind: ColoringKindNone}
			}
		}
		return Coloring{Kind: ColoringKindColorings, Children: out}
	default:
		return Coloring{Kind: ColoringKindNone}
	}
}
