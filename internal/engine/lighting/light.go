// Package lighting describes the scene's single point light.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/durham-house/pkg/math"
)

// DiffuseBoost scales the diffuse term so lit faces read brighter than
// the raw texture.
const DiffuseBoost float32 = 1.2

// Light is a point light plus a flat ambient term.
type Light struct {
	Color    [3]float32 // RGB, 0-1
	Position [3]float32 // world space
	Ambient  [3]float32 // multiplied by the vertex color
}

// Default returns a white light above and in front of the house.
func Default() Light {
	return Light{
		Color:    [3]float32{1, 1, 1},
		Position: [3]float32{2.3, 4.0, 3.5},
		Ambient:  [3]float32{0.2, 0.2, 0.2},
	}
}

// Shade evaluates the fragment shader's lighting on the CPU: texel and
// vertexColor are RGB in 0-1, worldPos and normal are in world space.
func (l Light) Shade(texel, vertexColor [3]float32, worldPos, normal math.Vec3) [3]float32 {
	toLight := math.Vec3{X: l.Position[0], Y: l.Position[1], Z: l.Position[2]}.Sub(worldPos).Normalize()
	lambert := math32.Max(toLight.Dot(normal.Normalize()), 0)

	var out [3]float32
	for i := range out {
		out[i] = l.Color[i]*texel[i]*lambert*DiffuseBoost + l.Ambient[i]*vertexColor[i]
	}
	return out
}
