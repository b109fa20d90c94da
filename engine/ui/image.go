package ui

import (
	"fmt"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

// Image draws a registered image.
type Image struct {
	Handle draw.ImageHandle
	// Size of the image. With one axis Auto, that axis follows the image's
	// aspect ratio from the other; with both Auto the image keeps its native
	// pixel size.
	Size Size2
	// Fill tints the image. A fully transparent fill skips drawing.
	Fill colors.Fill
	// TextureUV maps the rectangle corners to texture coordinates. The zero
	// value maps the whole texture.
	TextureUV    geom.Corners[geom.Vec2]
	CornerRadius geom.Corners[float32]
}

func NewImage(h draw.ImageHandle) *Image {
	return &Image{
		Handle:    h,
		Size:      Size2Auto(),
		Fill:      colors.Solid(colors.White),
		TextureUV: geom.FullUV(),
	}
}

func (img *Image) WithSize(s Size2) *Image                         { img.Size = s; return img }
func (img *Image) WithFill(f colors.Fill) *Image                   { img.Fill = f; return img }
func (img *Image) WithTextureUV(uv geom.Corners[geom.Vec2]) *Image { img.TextureUV = uv; return img }
func (img *Image) WithCornerRadius(c geom.Corners[float32]) *Image {
	img.CornerRadius = c
	return img
}

func (img *Image) Name() string { return "Image" }

func (img *Image) Measure(ctx MeasureContext) Response {
	if ctx.Images == nil {
		panic("ui: Image measured without an image registry")
	}
	w, h, ok := ctx.Images.ImageSize(img.Handle)
	if !ok {
		panic(fmt.Sprintf("ui: invalid image handle %d", img.Handle))
	}
	geom.ValidateCorners(img.CornerRadius)

	native := geom.Vec2{X: float32(w), Y: float32(h)}
	size := ComputeSize(ctx.Layout, img.Size, native)
	switch {
	case img.Size.Width.IsAuto() && !img.Size.Height.IsAuto():
		if native.Y > 0 {
			size.X = size.Y / native.Y * native.X
		}
	case img.Size.Height.IsAuto() && !img.Size.Width.IsAuto():
		if native.X > 0 {
			size.Y = size.X / native.X * native.Y
		}
	}
	return Response{Size: size}
}

func (img *Image) Process(ctx ProcessContext) {
	if img.Fill.IsTransparent() {
		return
	}
	uv := img.TextureUV
	if uv == (geom.Corners[geom.Vec2]{}) {
		uv = geom.FullUV()
	}
	ctx.Draw.Image(ctx.Rect(), img.Handle, uv, img.Fill, img.CornerRadius)
}
