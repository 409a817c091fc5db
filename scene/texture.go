package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// TextureFilter selects the GPU sampling filter for a texture.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// Texture holds CPU-side pixel data for a 2D texture. The GPU engine uploads
// it exactly once and records the object name in GLID; thereafter every draw
// call references the same GPU resource. Identity is the handle itself, not
// the name.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	Filter TextureFilter
	// GLID is the GPU texture object name, set on upload. Zero means the
	// texture has not been uploaded yet.
	GLID uint32
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side
// texture in RGBA8. Images larger than maxDim on either axis are downscaled
// to fit, preserving aspect ratio; pass 0 to keep the original size.
func LoadTexture(path string, maxDim int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, draw.Over, nil)

	return &Texture{
		Name:   path,
		Width:  w,
		Height: h,
		Pixels: rgba.Pix,
		Filter: FilterLinear,
	}, nil
}

// NewSolidTexture creates a 1x1 texture with the given RGBA values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
		Filter: FilterNearest,
	}
}
