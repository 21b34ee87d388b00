package renderer

import (
	"errors"
	"fmt"

	"github.com/Faultbox/durham-house/internal/engine/mesh"
)

// ErrBadDrawCall is returned for a draw whose inputs do not fit the mesh.
var ErrBadDrawCall = errors.New("bad draw call")

// DrawCall is one leaf draw: a cached mesh, the texture bound to unit 0
// and the per-draw texture coordinates and vertex colors.
type DrawCall struct {
	Mesh    *mesh.Mesh
	Texture uint32
	UV      []float32 // mesh.UVFloats values
	Colors  []float32 // mesh.ColorFloats values
}

// Validate checks a draw call without touching GL.
func (d DrawCall) Validate() error {
	switch {
	case d.Mesh == nil:
		return fmt.Errorf("%w: no mesh", ErrBadDrawCall)
	case d.Texture == 0:
		return fmt.Errorf("%w: %s has no texture", ErrBadDrawCall, d.Mesh.Key)
	case len(d.UV) != mesh.UVFloats:
		return fmt.Errorf("%w: %s has %d uv floats, want %d", ErrBadDrawCall, d.Mesh.Key, len(d.UV), mesh.UVFloats)
	case len(d.Colors) != mesh.ColorFloats:
		return fmt.Errorf("%w: %s has %d color floats, want %d", ErrBadDrawCall, d.Mesh.Key, len(d.Colors), mesh.ColorFloats)
	}
	return nil
}
