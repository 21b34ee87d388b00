// Package framebuffer provides the offscreen target the control panel
// renders the scene into before showing it as an image.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Target is an offscreen color texture with a depth buffer.
type Target struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
}

// New creates a target of at least 1x1 pixels.
func New(width, height int32) (*Target, error) {
	t := &Target{}
	t.width, t.height = fit(width, height)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.color)
	gl.BindTexture(gl.TEXTURE_2D, t.color)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenRenderbuffers(1, &t.depth)
	t.allocate()

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("creating framebuffer: incomplete, status 0x%x", status)
	}
	return t, nil
}

func fit(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}

func (t *Target) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, t.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, t.width, t.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Begin redirects drawing into the target. The returned function restores
// the previous framebuffer and viewport.
func (t *Target) Begin() (restore func()) {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// Resize reallocates the attachments when the size changed.
func (t *Target) Resize(width, height int32) {
	width, height = fit(width, height)
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	t.allocate()
}

// Texture returns the color attachment, for display.
func (t *Target) Texture() uint32 {
	return t.color
}

// Size returns the target dimensions.
func (t *Target) Size() (width, height int32) {
	return t.width, t.height
}

// Destroy releases all OpenGL resources.
func (t *Target) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.color != 0 {
		gl.DeleteTextures(1, &t.color)
		t.color = 0
	}
	if t.depth != 0 {
		gl.DeleteRenderbuffers(1, &t.depth)
		t.depth = 0
	}
}
