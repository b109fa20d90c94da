package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph locates one rasterized rune in an Atlas. Bearings are relative to
// the pen position on the baseline.
type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // distance from baseline to glyph top
	W, H     int     // bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a white-on-transparent glyph sheet for one face. Coverage is
// stored in the alpha channel.
type Atlas struct {
	Face   *Face
	Glyphs map[rune]Glyph
	Image  *image.RGBA
}

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

// Latin-1 printable range.
const firstRune, lastRune = rune(32), rune(255)

type glyphBox struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

func buildAtlas(f *Face) (*Atlas, error) {
	boxes := make([]glyphBox, 0, lastRune-firstRune+1)
	for r := firstRune; r <= lastRune; r++ {
		b, adv, ok := f.face.GlyphBounds(r)
		if !ok {
			continue
		}
		boxes = append(boxes, glyphBox{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: fixedToFloat(adv),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	size, pos, err := packShelves(boxes)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: f.face}
	glyphs := make(map[rune]Glyph, len(boxes))
	for _, g := range boxes {
		glyph := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			glyph.U0 = float32(p.X) / float32(size)
			glyph.V0 = float32(p.Y) / float32(size)
			glyph.U1 = float32(p.X+g.w) / float32(size)
			glyph.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = glyph
	}

	return &Atlas{Face: f, Glyphs: glyphs, Image: dst}, nil
}

// packShelves places the non-empty boxes in rows, doubling the square sheet
// until everything fits.
func packShelves(boxes []glyphBox) (int, map[rune]image.Point, error) {
	for size := atlasMinSize; size <= atlasMaxSize; size *= 2 {
		pos, ok := tryPack(boxes, size)
		if ok {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("text: glyph atlas larger than %d", atlasMaxSize)
}

func tryPack(boxes []glyphBox, size int) (map[rune]image.Point, bool) {
	pos := make(map[rune]image.Point, len(boxes))
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, g := range boxes {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if g.w+2*atlasPadding > size {
			return nil, false
		}
		if x+g.w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+g.h+atlasPadding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + atlasPadding
		rowH = max(rowH, g.h)
	}
	return pos, true
}

// Glyph returns the rasterized glyph for r. Runes outside the atlas have no
// bitmap; callers still advance the pen by Face.Advance.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.Glyphs[r]
	return g, ok
}
