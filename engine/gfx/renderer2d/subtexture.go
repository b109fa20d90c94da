package renderer2d

import (
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/geom"
)

// SubTexture2D describes a UV sub-rect of a full texture. UVs use a
// top-left origin.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	return SubTexture2D{
		Texture: tex,
		U0:      float32(x) / float32(atlasW),
		V0:      float32(y) / float32(atlasH),
		U1:      float32(x+w) / float32(atlasW),
		V1:      float32(y+h) / float32(atlasH),
	}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex core.Texture, cx, cy, cw, ch, atlasW, atlasH int) SubTexture2D {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}

// UV returns the corners in top-left, top-right, bottom-left, bottom-right
// order.
func (s SubTexture2D) UV() [4]geom.Vec2 {
	return [4]geom.Vec2{
		{X: s.U0, Y: s.V0},
		{X: s.U1, Y: s.V0},
		{X: s.U0, Y: s.V1},
		{X: s.U1, Y: s.V1},
	}
}
