package renderer2d

import (
	"fmt"
	"strings"

	"github.com/hubastard/hui/engine/assets"
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/internal/logger"
	"github.com/hubastard/hui/engine/scene"
	"github.com/hubastard/hui/engine/text"
)

type atlasKey struct {
	font draw.FontHandle
	size float32
}

// UIRenderer draws a draw.Buffer with a Renderer2D. Images and glyph atlases
// are uploaded on first use and kept until Release.
type UIRenderer struct {
	rd     *Renderer2D
	images *assets.Images
	fonts  *text.Library
	cam    *scene.ScreenCamera

	textures map[draw.ImageHandle]core.Texture
	atlases  map[atlasKey]uiAtlas

	stack   []geom.Affine2
	outline []geom.Vec2
	fan     []Vertex
	lines   []string
}

type uiAtlas struct {
	atlas *text.Atlas
	tex   core.Texture
}

// NewUIRenderer returns a renderer resolving image handles in images and
// font handles in fonts. Either may be nil when unused.
func NewUIRenderer(rd *Renderer2D, images *assets.Images, fonts *text.Library) *UIRenderer {
	return &UIRenderer{
		rd:       rd,
		images:   images,
		fonts:    fonts,
		cam:      scene.NewScreenCamera(1, 1),
		textures: make(map[draw.ImageHandle]core.Texture),
		atlases:  make(map[atlasKey]uiAtlas),
		stack:    make([]geom.Affine2, 0, 16),
	}
}

// Render draws buf in a viewport of the given pixel size with (0,0) at the
// top-left corner.
func (u *UIRenderer) Render(buf *draw.Buffer, viewport geom.Vec2) {
	u.cam.SetSize(int(viewport.X), int(viewport.Y))
	u.rd.BeginScene(u.cam.VP())
	u.Draw(buf)
	u.rd.EndScene()
}

// Draw appends buf to the current scene without beginning or ending it.
func (u *UIRenderer) Draw(buf *draw.Buffer) {
	u.stack = u.stack[:0]
	cmds := buf.Commands()
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case draw.KindRectangle:
			u.rectangle(c)
		case draw.KindText:
			u.text(c)
		case draw.KindPushTransform:
			u.stack = append(u.stack, u.current().Mul(c.Transform))
		case draw.KindPopTransform:
			if len(u.stack) == 0 {
				panic("renderer2d: unbalanced pop")
			}
			u.stack = u.stack[:len(u.stack)-1]
		}
	}
}

func (u *UIRenderer) current() geom.Affine2 {
	if len(u.stack) == 0 {
		return geom.Identity()
	}
	return u.stack[len(u.stack)-1]
}

func (u *UIRenderer) rectangle(c *draw.Command) {
	r := c.Rect()
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return
	}
	var tex core.Texture
	if c.Texture != 0 {
		var ok bool
		if tex, ok = u.texture(c.Texture); !ok {
			return
		}
	}
	m := u.current()
	cols := c.Fill.Corners()
	uv := uvCorners(c.TextureUV)

	if !c.HasRounded || geom.MaxCorner(c.Rounded.Radius) <= 0 {
		corners := [4]geom.Vec2{r.Position, {X: r.Max().X, Y: r.Position.Y}, {X: r.Position.X, Y: r.Max().Y}, r.Max()}
		var v [4]Vertex
		for i, p := range corners {
			v[i] = Vertex{Pos: m.Apply(p), Color: cols[i], UV: uv[i]}
		}
		u.rd.DrawQuadVertices(v, tex)
		return
	}

	u.outline = roundedOutline(u.outline[:0], r, c.Rounded.Radius, c.Rounded.Points)
	u.fan = u.fan[:0]
	vertex := func(p geom.Vec2) Vertex {
		t := relative(r, p)
		return Vertex{Pos: m.Apply(p), Color: bilerpColor(cols, t), UV: bilerpVec(uv, t)}
	}
	u.fan = append(u.fan, vertex(r.Center()))
	for _, p := range u.outline {
		u.fan = append(u.fan, vertex(p))
	}
	u.rd.DrawFan(u.fan, tex)
}

func (u *UIRenderer) text(c *draw.Command) {
	if u.fonts == nil || c.Text == "" || c.Color.IsTransparent() {
		return
	}
	a, ok := u.atlas(c.Font, c.TextSize)
	if !ok {
		return
	}
	face := a.atlas.Face

	u.lines = u.lines[:0]
	if c.WrapWidth > 0 {
		u.lines = append(u.lines, face.Wrap(c.Text, c.WrapWidth)...)
	} else {
		u.lines = append(u.lines, strings.Split(c.Text, "\n")...)
	}

	m := u.current()
	for i, line := range u.lines {
		penX := c.Position.X
		baseline := c.Position.Y + face.Ascent + float32(i)*face.LineHeight
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				penX += face.Kern(prev, r)
			}
			prev = r
			// The pen follows the face so drawn lines match measured ones,
			// including runes the atlas has no bitmap for.
			if g, ok := a.atlas.Glyph(r); ok && g.W > 0 && g.H > 0 {
				pos := geom.Vec2{X: penX + g.BearingX, Y: baseline - g.BearingY}
				size := geom.Vec2{X: float32(g.W), Y: float32(g.H)}
				sub := SubTexture2D{Texture: a.tex, U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1}
				u.glyph(m, geom.Rect{Position: pos, Size: size}, sub, c)
			}
			penX += face.Advance(r)
		}
	}
}

func (u *UIRenderer) glyph(m geom.Affine2, r geom.Rect, sub SubTexture2D, c *draw.Command) {
	corners := [4]geom.Vec2{r.Position, {X: r.Max().X, Y: r.Position.Y}, {X: r.Position.X, Y: r.Max().Y}, r.Max()}
	uv := sub.UV()
	var v [4]Vertex
	for i, p := range corners {
		v[i] = Vertex{Pos: m.Apply(p), Color: c.Color, UV: uv[i]}
	}
	u.rd.DrawQuadVertices(v, sub.Texture)
}

func (u *UIRenderer) texture(h draw.ImageHandle) (core.Texture, bool) {
	if t, ok := u.textures[h]; ok {
		return t, true
	}
	if u.images == nil {
		logger.Get().Warn("renderer2d: image without registry", "handle", h)
		return nil, false
	}
	w, hgt, pix, err := u.images.Pixels(h)
	if err == nil {
		var t core.Texture
		t, err = u.rd.Device().CreateTexture(core.TextureDesc{
			Width: w, Height: hgt,
			Format:    core.TextureRGBA8,
			Pixels:    pix,
			MinFilter: core.FilterLinear, MagFilter: core.FilterLinear,
			WrapU: core.WrapClamp, WrapV: core.WrapClamp,
		})
		if err == nil {
			u.textures[h] = t
			return t, true
		}
	}
	logger.Get().Warn("renderer2d: image upload", "handle", h, "err", err)
	return nil, false
}

func (u *UIRenderer) atlas(font draw.FontHandle, size float32) (uiAtlas, bool) {
	key := atlasKey{font, size}
	if a, ok := u.atlases[key]; ok {
		return a, true
	}
	a, err := u.uploadAtlas(font, size)
	if err != nil {
		logger.Get().Warn("renderer2d: glyph atlas", "font", font, "size", size, "err", err)
		return uiAtlas{}, false
	}
	u.atlases[key] = a
	return a, true
}

func (u *UIRenderer) uploadAtlas(font draw.FontHandle, size float32) (uiAtlas, error) {
	a, err := u.fonts.Atlas(font, size)
	if err != nil {
		return uiAtlas{}, err
	}
	b := a.Image.Bounds()
	tex, err := u.rd.Device().CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    a.Image.Pix,
		MinFilter: core.FilterNearest, MagFilter: core.FilterNearest,
		WrapU: core.WrapClamp, WrapV: core.WrapClamp,
	})
	if err != nil {
		return uiAtlas{}, fmt.Errorf("upload: %w", err)
	}
	return uiAtlas{atlas: a, tex: tex}, nil
}

// Release deletes every uploaded texture.
func (u *UIRenderer) Release() {
	dev := u.rd.Device()
	for h, t := range u.textures {
		dev.DeleteTexture(t)
		delete(u.textures, h)
	}
	for k, a := range u.atlases {
		dev.DeleteTexture(a.tex)
		delete(u.atlases, k)
	}
}
