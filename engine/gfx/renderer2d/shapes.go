package renderer2d

import (
	"math"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// clampRadius limits every corner radius to half the shorter side.
func clampRadius(r geom.Rect, radius geom.Corners[float32]) geom.Corners[float32] {
	limit := min(r.Size.X, r.Size.Y) * 0.5
	limit = max(limit, 0)
	return geom.Corners[float32]{
		TopLeft:     min(radius.TopLeft, limit),
		TopRight:    min(radius.TopRight, limit),
		BottomLeft:  min(radius.BottomLeft, limit),
		BottomRight: min(radius.BottomRight, limit),
	}
}

// roundedOutline appends the outline of r with rounded corners to dst,
// clockwise on screen starting at the top-left arc. Every corner
// contributes points vertices; a zero radius contributes the corner itself.
func roundedOutline(dst []geom.Vec2, r geom.Rect, radius geom.Corners[float32], points uint32) []geom.Vec2 {
	if points < 2 {
		points = 2
	}
	radius = clampRadius(r, radius)
	minP, maxP := r.Position, r.Max()

	arcs := [4]struct {
		center geom.Vec2
		radius float32
		start  float64
	}{
		{geom.Vec2{X: minP.X + radius.TopLeft, Y: minP.Y + radius.TopLeft}, radius.TopLeft, math.Pi},
		{geom.Vec2{X: maxP.X - radius.TopRight, Y: minP.Y + radius.TopRight}, radius.TopRight, 1.5 * math.Pi},
		{geom.Vec2{X: maxP.X - radius.BottomRight, Y: maxP.Y - radius.BottomRight}, radius.BottomRight, 0},
		{geom.Vec2{X: minP.X + radius.BottomLeft, Y: maxP.Y - radius.BottomLeft}, radius.BottomLeft, 0.5 * math.Pi},
	}
	for _, a := range arcs {
		if a.radius <= 0 {
			dst = append(dst, a.center)
			continue
		}
		for i := uint32(0); i < points; i++ {
			t := a.start + 0.5*math.Pi*float64(i)/float64(points-1)
			sin, cos := math.Sincos(t)
			dst = append(dst, geom.Vec2{
				X: a.center.X + a.radius*float32(cos),
				Y: a.center.Y + a.radius*float32(sin),
			})
		}
	}
	return dst
}

// bilerpColor interpolates corner colors (TL, TR, BL, BR) at t in [0,1]².
func bilerpColor(c [4]colors.Color, t geom.Vec2) colors.Color {
	var out colors.Color
	for i := range out {
		top := c[0][i] + (c[1][i]-c[0][i])*t.X
		bottom := c[2][i] + (c[3][i]-c[2][i])*t.X
		out[i] = top + (bottom-top)*t.Y
	}
	return out
}

// bilerpVec interpolates corner points (TL, TR, BL, BR) at t in [0,1]².
func bilerpVec(c [4]geom.Vec2, t geom.Vec2) geom.Vec2 {
	top := c[0].Add(c[1].Sub(c[0]).Mul(t.X))
	bottom := c[2].Add(c[3].Sub(c[2]).Mul(t.X))
	return top.Add(bottom.Sub(top).Mul(t.Y))
}

// relative returns p in the unit square of r. Degenerate axes map to 0.
func relative(r geom.Rect, p geom.Vec2) geom.Vec2 {
	var t geom.Vec2
	if r.Size.X > 0 {
		t.X = (p.X - r.Position.X) / r.Size.X
	}
	if r.Size.Y > 0 {
		t.Y = (p.Y - r.Position.Y) / r.Size.Y
	}
	return t
}

func uvCorners(c geom.Corners[geom.Vec2]) [4]geom.Vec2 {
	return [4]geom.Vec2{c.TopLeft, c.TopRight, c.BottomLeft, c.BottomRight}
}
