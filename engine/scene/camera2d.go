// Package scene holds the camera the 2D renderer projects through.
package scene

import "github.com/hubastard/hui/engine/geom"

// ScreenCamera maps framebuffer pixels, origin top-left and y down, to clip
// space. It is the space draw commands are recorded in.
type ScreenCamera struct {
	size  geom.Vec2
	clip  geom.Affine2
	vp    [16]float32
	dirty bool
}

func NewScreenCamera(width, height int) *ScreenCamera {
	c := &ScreenCamera{}
	c.SetSize(width, height)
	return c
}

// SetSize changes the viewport. Sizes below one pixel are raised to one.
func (c *ScreenCamera) SetSize(width, height int) {
	s := geom.Vec2{X: float32(max(width, 1)), Y: float32(max(height, 1))}
	if s == c.size {
		return
	}
	c.size = s
	c.dirty = true
}

func (c *ScreenCamera) Size() geom.Vec2 { return c.size }

// ClipTransform returns the pixel to clip space mapping.
func (c *ScreenCamera) ClipTransform() geom.Affine2 {
	c.update()
	return c.clip
}

// VP returns ClipTransform as a column-major 4x4 matrix for the shader.
func (c *ScreenCamera) VP() [16]float32 {
	c.update()
	return c.vp
}

// Project maps a pixel position to normalized device coordinates.
func (c *ScreenCamera) Project(p geom.Vec2) geom.Vec2 {
	return c.ClipTransform().Apply(p)
}

func (c *ScreenCamera) update() {
	if !c.dirty {
		return
	}
	c.clip = geom.Translate(geom.Vec2{X: -1, Y: 1}).
		Mul(geom.Scale(geom.Vec2{X: 2 / c.size.X, Y: -2 / c.size.Y}))
	c.vp = mat4(c.clip)
	c.dirty = false
}

// mat4 widens m to a column-major 4x4 with z flipped to match a [-1, 1]
// orthographic depth range.
func mat4(m geom.Affine2) [16]float32 {
	return [16]float32{
		m.A, m.D, 0, 0,
		m.B, m.E, 0, 0,
		0, 0, -1, 0,
		m.C, m.F, 0, 1,
	}
}
