// Package assets loads images and shader sources for the engine.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/hubastard/hui/engine/draw"
)

// ErrUnknownImage is returned for a handle that was never added.
var ErrUnknownImage = errors.New("assets: unknown image")

type entry struct {
	rgba *image.RGBA
}

// Images is a registry of decoded RGBA images addressed by draw.ImageHandle.
// Handles start at 1; the zero handle is never valid. It implements
// ui.ImageSizer.
type Images struct {
	list []entry
}

func NewImages() *Images { return &Images{} }

// Add registers tightly packed RGBA8 pixels (row-major, top-left origin).
func (im *Images) Add(w, h int, pix []byte) (draw.ImageHandle, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("assets: invalid image size %dx%d", w, h)
	}
	if len(pix) != w*h*4 {
		return 0, fmt.Errorf("assets: got %d bytes for %dx%d RGBA image", len(pix), w, h)
	}
	rgba := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	return im.push(rgba), nil
}

// AddImage converts img to RGBA and registers it.
func (im *Images) AddImage(img image.Image) draw.ImageHandle {
	return im.push(toRGBA(img))
}

// AddScaled registers img resampled to w x h with Catmull-Rom filtering.
func (im *Images) AddScaled(img image.Image, w, h int) (draw.ImageHandle, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("assets: invalid image size %dx%d", w, h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return im.push(dst), nil
}

// Decode reads a PNG, JPEG, BMP or WebP image from r and registers it.
func (im *Images) Decode(r io.Reader) (draw.ImageHandle, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("assets: decode image: %w", err)
	}
	return im.AddImage(img), nil
}

// Load decodes and registers the image file at path.
func (im *Images) Load(path string) (draw.ImageHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("assets: open %q: %w", path, err)
	}
	defer f.Close()

	h, err := im.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

func (im *Images) push(rgba *image.RGBA) draw.ImageHandle {
	im.list = append(im.list, entry{rgba: rgba})
	return draw.ImageHandle(len(im.list))
}

func (im *Images) get(h draw.ImageHandle) (*image.RGBA, bool) {
	if h == 0 || int(h) > len(im.list) {
		return nil, false
	}
	return im.list[h-1].rgba, true
}

func (im *Images) Len() int { return len(im.list) }

// ImageSize returns the pixel size of h.
func (im *Images) ImageSize(h draw.ImageHandle) (w, hgt int, ok bool) {
	img, ok := im.get(h)
	if !ok {
		return 0, 0, false
	}
	return img.Rect.Dx(), img.Rect.Dy(), true
}

// Pixels returns the tightly packed RGBA8 pixels of h.
func (im *Images) Pixels(h draw.ImageHandle) (w, hgt int, pix []byte, err error) {
	img, ok := im.get(h)
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: %d", ErrUnknownImage, h)
	}
	return img.Rect.Dx(), img.Rect.Dy(), img.Pix, nil
}

// toRGBA returns img as an *image.RGBA with origin (0,0) and stride 4*w.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == 4*b.Dx() {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
