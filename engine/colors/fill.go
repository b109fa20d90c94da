package colors

// Fill is a rectangle fill with one color per corner. Equal corners give a
// solid fill, differing corners a bilinear gradient.
type Fill struct {
	TopLeft, TopRight, BottomLeft, BottomRight Color
}

func Solid(c Color) Fill {
	return Fill{TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c}
}

func VerticalGradient(top, bottom Color) Fill {
	return Fill{TopLeft: top, TopRight: top, BottomLeft: bottom, BottomRight: bottom}
}

func HorizontalGradient(left, right Color) Fill {
	return Fill{TopLeft: left, TopRight: right, BottomLeft: left, BottomRight: right}
}

// IsTransparent reports whether every corner has zero alpha. The zero Fill is
// transparent.
func (f Fill) IsTransparent() bool {
	return f.TopLeft.IsTransparent() && f.TopRight.IsTransparent() &&
		f.BottomLeft.IsTransparent() && f.BottomRight.IsTransparent()
}

func (f Fill) IsSolid() bool {
	return f.TopLeft == f.TopRight && f.TopLeft == f.BottomLeft && f.TopLeft == f.BottomRight
}

// Corners returns the colors in top-left, top-right, bottom-left,
// bottom-right order, matching the renderer's quad vertex order.
func (f Fill) Corners() [4]Color {
	return [4]Color{f.TopLeft, f.TopRight, f.BottomLeft, f.BottomRight}
}
