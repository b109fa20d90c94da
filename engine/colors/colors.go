package colors

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) IsTransparent() bool { return c[3] == 0 }

// FromRGBA converts any image/color value to a Color, undoing the alpha
// premultiplication of color.Color.
func FromRGBA(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	fa := float32(a)
	return Color{float32(r) / fa, float32(g) / fa, float32(b) / fa, fa / 0xffff}
}

// Named looks up an SVG 1.1 color keyword such as "crimson".
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Transparent, false
	}
	return FromRGBA(c), true
}

// MustNamed is like Named but panics on an unknown keyword.
func MustNamed(name string) Color {
	c, ok := Named(name)
	if !ok {
		panic("colors: unknown color name " + name)
	}
	return c
}
