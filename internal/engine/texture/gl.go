package texture

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader uploads textures to the current GL context with repeat
// wrapping and nearest-neighbour minification.
type GLUploader struct{}

// Upload creates a texture from img.
func (GLUploader) Upload(img *image.RGBA) (uint32, error) {
	if len(img.Pix) == 0 {
		return 0, errors.New("empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return 0, errors.New("glGenTextures returned 0")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return 0, glError(code)
	}
	return id, nil
}

// Delete releases a texture.
func (GLUploader) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

type glError uint32

func (e glError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "gl: invalid enum"
	case gl.INVALID_VALUE:
		return "gl: invalid value"
	case gl.INVALID_OPERATION:
		return "gl: invalid operation"
	case gl.OUT_OF_MEMORY:
		return "gl: out of memory"
	default:
		return "gl: error"
	}
}
