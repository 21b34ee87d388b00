package scene

import (
	"fmt"

	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/pkg/math"
)

// builder accumulates parts the way a fixed-function draw sequence would:
// texture, mesh, texture coordinates and colors stay in effect until
// changed, and every added part records the values current at the time.
type builder struct {
	parts   []Part
	tex     string
	key     mesh.Key
	uv      UV
	colors  Colors
	label   string
	ordinal int
}

func newBuilder() *builder {
	return &builder{key: mesh.CubeKey}
}

func (b *builder) texture(name string) { b.tex = name }

// mesh switches primitives. Like re-binding vertex buffers, it resets
// colors to the mesh's own.
func (b *builder) mesh(key mesh.Key) {
	b.key = key
	b.colors = Colors{}
}

func (b *builder) group(name string) {
	b.label = name
	b.ordinal = 0
}

func (b *builder) tile(offset, x, y, z float32, faces mesh.Faces) {
	b.uv = UV{Kind: UVTiled, Tile: mesh.Tiling{Offset: offset, X: x, Y: y, Z: z, Faces: faces}}
}

func (b *builder) fixed(kind UVKind) { b.uv = UV{Kind: kind} }

func (b *builder) swatch(s mesh.Swatch) { b.uv = UV{Kind: UVAtlas, Swatch: s} }

func (b *builder) tint(c mesh.RGB) { b.colors = Tint(c) }

func (b *builder) add(ops ...Op) {
	b.ordinal++
	b.parts = append(b.parts, Part{
		Name:    fmt.Sprintf("%s#%d", b.label, b.ordinal),
		Texture: b.tex,
		Mesh:    b.key,
		Ops:     ops,
		UV:      b.uv,
		Colors:  b.colors,
	})
}

func tr(x, y, z float32) Op {
	return Op{Kind: OpTranslate, V: math.Vec3{X: x, Y: y, Z: z}}
}

func sc(x, y, z float32) Op {
	return Op{Kind: OpScale, V: math.Vec3{X: x, Y: y, Z: z}}
}

func rotX(deg float32) Op { return Op{Kind: OpRotate, Angle: deg, Axis: math.AxisX} }
func rotY(deg float32) Op { return Op{Kind: OpRotate, Angle: deg, Axis: math.AxisY} }
func rotZ(deg float32) Op { return Op{Kind: OpRotate, Angle: deg, Axis: math.AxisZ} }
