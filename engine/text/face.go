package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/hui/engine/geom"
)

// Metrics are vertical font metrics in pixels. Descent is positive.
type Metrics struct {
	Ascent     float32
	Descent    float32
	LineGap    float32
	LineHeight float32
}

// Face is a font at one pixel size.
type Face struct {
	Metrics
	Size float32
	face font.Face
}

func newFace(f font.Face, size float32) *Face {
	m := f.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	height := fixedToFloat(m.Height)
	return &Face{
		Metrics: Metrics{
			Ascent:     ascent,
			Descent:    descent,
			LineGap:    max(height-ascent-descent, 0),
			LineHeight: height,
		},
		Size: size,
		face: f,
	}
}

// Kern returns the kerning adjustment between two runes in pixels.
func (f *Face) Kern(a, b rune) float32 { return fixedToFloat(f.face.Kern(a, b)) }

// Advance returns the pen advance of r in pixels. Runes missing from the
// font advance like a space.
func (f *Face) Advance(r rune) float32 { return fixedToFloat(f.advance(r)) }

func (f *Face) advance(r rune) fixed.Int26_6 {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		adv, _ = f.face.GlyphAdvance(' ')
	}
	return adv
}

// LineWidth returns the advance width of a single line.
func (f *Face) LineWidth(s string) float32 {
	var w fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			w += f.face.Kern(prev, r)
		}
		w += f.advance(r)
		prev = r
	}
	return fixedToFloat(w)
}

// Measure returns the extent of s, which may contain newlines. Every line
// counts, including empty ones.
func (f *Face) Measure(s string) geom.Vec2 {
	if s == "" {
		return geom.Vec2{}
	}
	var width float32
	lines := 0
	for line := range strings.SplitSeq(s, "\n") {
		width = max(width, f.LineWidth(line))
		lines++
	}
	return geom.Vec2{X: width, Y: f.LineHeight * float32(lines)}
}

// Wrap splits s at spaces so that lines fit maxWidth. Explicit newlines are
// kept. A word wider than maxWidth gets a line of its own and overflows.
// A non-positive maxWidth only splits at newlines.
func (f *Face) Wrap(s string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return strings.Split(s, "\n")
	}
	space := f.LineWidth(" ")
	var lines []string
	for raw := range strings.SplitSeq(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line strings.Builder
		line.WriteString(words[0])
		lineW := f.LineWidth(words[0])
		for _, word := range words[1:] {
			wordW := f.LineWidth(word)
			if lineW+space+wordW > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
				lineW = wordW
				continue
			}
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += space + wordW
		}
		lines = append(lines, line.String())
	}
	return lines
}
