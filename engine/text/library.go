// Package text loads TrueType/OpenType fonts and measures, wraps and
// rasterizes text with them. It has no GPU dependency: glyph atlases are
// plain RGBA images that a renderer uploads itself.
package text

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/internal/logger"
)

// ErrUnknownFont is returned for a handle that was never added.
var ErrUnknownFont = errors.New("text: unknown font")

type faceKey struct {
	font draw.FontHandle
	size float32
}

// Library owns parsed fonts and the faces and atlases derived from them.
// Handle 0 is the default font, Go Regular. A Library is not safe for
// concurrent use.
type Library struct {
	fonts   []*opentype.Font
	faces   map[faceKey]*Face
	atlases map[faceKey]*Atlas
}

// NewLibrary returns a library holding the default font.
func NewLibrary() (*Library, error) {
	l := &Library{
		faces:   make(map[faceKey]*Face),
		atlases: make(map[faceKey]*Atlas),
	}
	if _, err := l.Add(goregular.TTF); err != nil {
		return nil, fmt.Errorf("text: default font: %w", err)
	}
	return l, nil
}

// Add parses a TTF/OTF file and returns its handle.
func (l *Library) Add(ttf []byte) (draw.FontHandle, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return 0, fmt.Errorf("text: parse font: %w", err)
	}
	l.fonts = append(l.fonts, f)
	return draw.FontHandle(len(l.fonts) - 1), nil
}

// MustAdd is like Add but panics on error. Meant for embedded fonts.
func (l *Library) MustAdd(ttf []byte) draw.FontHandle {
	h, err := l.Add(ttf)
	if err != nil {
		panic(err)
	}
	return h
}

// Load reads and adds the font file at path.
func (l *Library) Load(path string) (draw.FontHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("text: read font: %w", err)
	}
	return l.Add(data)
}

func (l *Library) Len() int { return len(l.fonts) }

// Face returns the face of font at size pixels, creating it on first use.
func (l *Library) Face(h draw.FontHandle, size float32) (*Face, error) {
	key := faceKey{h, size}
	if f, ok := l.faces[key]; ok {
		return f, nil
	}
	if int(h) >= len(l.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, h)
	}
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid size %g", size)
	}
	ff, err := opentype.NewFace(l.fonts[h], &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: new face: %w", err)
	}
	f := newFace(ff, size)
	l.faces[key] = f
	return f, nil
}

// MeasureText returns the size of text. A positive maxWidth wraps at that
// width first. Faces that fail to load measure as zero and are logged.
func (l *Library) MeasureText(h draw.FontHandle, text string, size, maxWidth float32) geom.Vec2 {
	if text == "" {
		return geom.Vec2{}
	}
	f, err := l.Face(h, size)
	if err != nil {
		logger.Get().Warn("text: measure", "font", h, "size", size, "err", err)
		return geom.Vec2{}
	}
	if maxWidth > 0 {
		lines := f.Wrap(text, maxWidth)
		var w float32
		for _, line := range lines {
			w = max(w, f.LineWidth(line))
		}
		return geom.Vec2{X: w, Y: f.LineHeight * float32(len(lines))}
	}
	return f.Measure(text)
}

// Wrap breaks text into lines no wider than maxWidth where possible.
func (l *Library) Wrap(h draw.FontHandle, text string, size, maxWidth float32) ([]string, error) {
	f, err := l.Face(h, size)
	if err != nil {
		return nil, err
	}
	return f.Wrap(text, maxWidth), nil
}

// Metrics returns the vertical metrics of font at size.
func (l *Library) Metrics(h draw.FontHandle, size float32) (Metrics, error) {
	f, err := l.Face(h, size)
	if err != nil {
		return Metrics{}, err
	}
	return f.Metrics, nil
}

// Atlas returns the glyph atlas of font at size, rasterizing it on first use.
func (l *Library) Atlas(h draw.FontHandle, size float32) (*Atlas, error) {
	key := faceKey{h, size}
	if a, ok := l.atlases[key]; ok {
		return a, nil
	}
	f, err := l.Face(h, size)
	if err != nil {
		return nil, err
	}
	a, err := buildAtlas(f)
	if err != nil {
		return nil, err
	}
	l.atlases[key] = a
	return a, nil
}

// Close releases every face.
func (l *Library) Close() error {
	var errs []error
	for k, f := range l.faces {
		errs = append(errs, f.face.Close())
		delete(l.faces, k)
	}
	clear(l.atlases)
	return errors.Join(errs...)
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
