package gldriver

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D texture with mipmaps.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Wrap modes accepted by NewTexture.
const (
	Repeat      = gl.REPEAT
	ClampToEdge = gl.CLAMP_TO_EDGE
)

// NewTexture uploads rgba, which must be tightly packed.
func NewTexture(rgba *image.RGBA, wrap int32) *Texture {
	texture := &Texture{
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
	}

	gl.GenTextures(1, &texture.ID)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(texture.Width),
		int32(texture.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return texture
}

// Bind binds the texture to the given texture unit.
func (texture *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}

func (texture *Texture) Delete() {
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}
