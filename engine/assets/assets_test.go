package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return img
}

func TestImagesAdd(t *testing.T) {
	im := NewImages()

	h, err := im.Add(2, 1, make([]byte, 8))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if h != 1 {
		t.Errorf("first handle = %d, want 1", h)
	}
	if w, hgt, ok := im.ImageSize(h); !ok || w != 2 || hgt != 1 {
		t.Errorf("ImageSize = %d, %d, %v, want 2, 1, true", w, hgt, ok)
	}

	if _, err := im.Add(2, 2, make([]byte, 8)); err == nil {
		t.Error("Add with short pixel slice succeeded")
	}
	if _, _, ok := im.ImageSize(0); ok {
		t.Error("zero handle reported as valid")
	}
	if _, _, ok := im.ImageSize(9); ok {
		t.Error("unknown handle reported as valid")
	}
	if _, _, _, err := im.Pixels(9); !errors.Is(err, ErrUnknownImage) {
		t.Errorf("Pixels(9) error = %v, want ErrUnknownImage", err)
	}
}

func TestImagesAddImageOffsetBounds(t *testing.T) {
	im := NewImages()
	src := checker(4, 4).SubImage(image.Rect(1, 1, 3, 4))
	h := im.AddImage(src)

	w, hgt, pix, err := im.Pixels(h)
	if err != nil {
		t.Fatal(err)
	}
	if w != 2 || hgt != 3 || len(pix) != 2*3*4 {
		t.Fatalf("Pixels = %dx%d (%d bytes), want 2x3 (24 bytes)", w, hgt, len(pix))
	}
	// (1,1) in the source is red and lands at the origin.
	if pix[0] != 255 || pix[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", pix[:4])
	}
}

func TestImagesDecodeAndLoad(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker(3, 2)); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	im := NewImages()
	h, err := im.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w, hgt, _ := im.ImageSize(h); w != 3 || hgt != 2 {
		t.Errorf("decoded size = %dx%d, want 3x2", w, hgt)
	}

	path := filepath.Join(t.TempDir(), "checker.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := im.Load(path); err != nil {
		t.Errorf("Load: %v", err)
	}
	if _, err := im.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) succeeded")
	}
	if _, err := im.Decode(bytes.NewReader([]byte("nope"))); err == nil {
		t.Error("Decode(garbage) succeeded")
	}
	if im.Len() != 2 {
		t.Errorf("Len() = %d, want 2", im.Len())
	}
}

func TestImagesAddScaled(t *testing.T) {
	im := NewImages()
	h, err := im.AddScaled(checker(8, 8), 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if w, hgt, _ := im.ImageSize(h); w != 4 || hgt != 2 {
		t.Errorf("scaled size = %dx%d, want 4x2", w, hgt)
	}
	if _, err := im.AddScaled(checker(2, 2), 0, 2); err == nil {
		t.Error("AddScaled to zero width succeeded")
	}
}

func TestLoadShader(t *testing.T) {
	fsys := fstest.MapFS{"a.vert": {Data: []byte("void main() {}")}}
	src, err := LoadShader(fsys, "a.vert")
	if err != nil {
		t.Fatal(err)
	}
	if src[len(src)-1] != 0 {
		t.Error("shader source is not null-terminated")
	}
	if _, err := LoadShader(fsys, "missing.frag"); err == nil {
		t.Error("LoadShader(missing) succeeded")
	}
}
