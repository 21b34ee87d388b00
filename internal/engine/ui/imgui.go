// Package ui hosts the Dear ImGui control panel of the scene viewer.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the ImGui SDL backend and its GL context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and loads the GL function pointers.
func NewBackend(title string, width, height int32, clear [3]float32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(clear[0], clear[1], clear[2], 1))
	b.backend.CreateWindow(title, int(width), int(height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// Run calls frame once per displayed frame until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Workspace returns the main viewport work area.
func Workspace() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	pos := viewport.WorkPos()
	size := viewport.WorkSize()
	return pos.X, pos.Y, size.X, size.Y
}

// FramebufferScale returns the pixels per logical unit of the display.
func FramebufferScale() (float32, float32) {
	s := imgui.CurrentIO().DisplayFramebufferScale()
	return s.X, s.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
