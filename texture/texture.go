// Package texture decodes images into pixel data ready for upload.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path into a tightly packed RGBA.
// When flip is set, rows are reversed so the first row is the bottom
// of the image, matching the texture coordinate origin of OpenGL.
func Load(path string, flip bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode texture %q: %w", path, err)
	}

	return RGBA(m, flip), nil
}

// RGBA converts m to a tightly packed RGBA anchored at the origin.
func RGBA(m image.Image, flip bool) *image.RGBA {
	bounds := m.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), m, bounds.Min, draw.Src)
	if flip {
		FlipVertical(rgba)
	}
	return rgba
}

// FlipVertical reverses the rows of rgba in place.
func FlipVertical(rgba *image.RGBA) {
	height := rgba.Rect.Dy()
	rowBytes := rgba.Rect.Dx() * 4
	tmp := make([]byte, rowBytes)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := rgba.Pix[top*rgba.Stride : top*rgba.Stride+rowBytes]
		b := rgba.Pix[bottom*rgba.Stride : bottom*rgba.Stride+rowBytes]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Checkerboard returns a size×size image of cells×cells alternating squares.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells <= 0 {
		cells = 1
	}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				rgba.SetRGBA(x, y, a)
			} else {
				rgba.SetRGBA(x, y, b)
			}
		}
	}
	return rgba
}
