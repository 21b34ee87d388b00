// Package scene describes the Durham house scene as an ordered list of
// textured parts. It holds no GL state; the viewer turns parts into draw
// calls.
package scene

import (
	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/internal/sim"
	"github.com/Faultbox/durham-house/pkg/math"
)

// Texture names, as registered with the texture registry.
const (
	TexGrassRoad    = "grassroad"
	TexAsphalt      = "asphalt"
	TexWhiteAsphalt = "white_asphalt"
	TexGrass        = "grass"
	TexWall         = "wall"
	TexGlass        = "glass"
	TexDoor         = "door"
	TexColor        = "color"
)

// Textures lists every texture the scene draws with, in load order.
var Textures = []string{
	TexGrassRoad, TexAsphalt, TexWhiteAsphalt, TexGrass,
	TexWall, TexGlass, TexDoor, TexColor,
}

// OpKind is the kind of a model transform step.
type OpKind uint8

const (
	OpTranslate OpKind = iota
	OpRotate
	OpScale
)

// Op is one step of a part's model transform. Translate and scale use V;
// rotate uses Angle (degrees) about Axis.
type Op struct {
	Kind  OpKind
	V     math.Vec3
	Angle float32
	Axis  math.Axis
}

// Matrix returns the transform of a single step.
func (o Op) Matrix() math.Mat4 {
	switch o.Kind {
	case OpTranslate:
		return math.Translate(o.V.X, o.V.Y, o.V.Z)
	case OpRotate:
		return math.Rotate(o.Angle, o.Axis)
	default:
		return math.Scale(o.V.X, o.V.Y, o.V.Z)
	}
}

// UVKind selects how a part's texture coordinates are produced.
type UVKind uint8

const (
	UVTiled UVKind = iota
	UVAtlas
	UVWindow
	UVRightDoor
	UVLeftDoor
)

// UV describes a part's texture coordinates. It is comparable so callers
// can cache the generated arrays.
type UV struct {
	Kind   UVKind
	Tile   mesh.Tiling
	Swatch mesh.Swatch
}

// Coords returns the 48 per-vertex texture coordinates.
func (u UV) Coords() []float32 {
	switch u.Kind {
	case UVAtlas:
		return mesh.AtlasQuad(u.Swatch)
	case UVWindow:
		return mesh.WindowUV()
	case UVRightDoor:
		return mesh.RightDoorUV()
	case UVLeftDoor:
		return mesh.LeftDoorUV()
	default:
		return u.Tile.Coords()
	}
}

// Colors overrides a mesh's vertex colors per face. The zero value keeps
// the mesh's own colors.
type Colors struct {
	Set   bool
	Sides [mesh.FaceCount]mesh.RGB
}

// Tint returns Colors with every face set to c.
func Tint(c mesh.RGB) Colors {
	return Colors{Set: true, Sides: mesh.Uniform(c)}
}

// Floats returns the vertex colors to draw m with.
func (c Colors) Floats(m *mesh.Mesh) []float32 {
	if !c.Set {
		return m.Colors
	}
	return mesh.FaceColors(c.Sides)
}

// Part is one draw of the scene.
type Part struct {
	Name    string
	Texture string
	Mesh    mesh.Key
	Ops     []Op
	UV      UV
	Colors  Colors
}

// Model returns the part's model transform, applying Ops in order as
// successive right-multiplications.
func (p Part) Model() math.Mat4 {
	m := math.Identity()
	for _, op := range p.Ops {
		m = m.Mul(op.Matrix())
	}
	return m
}

var static = buildStatic()

func buildStatic() []Part {
	b := newBuilder()
	roads(b)
	lawn(b)
	walls(b)
	roofs(b)
	glazing(b)
	return b.parts
}

// Static returns the fixed house: roads, lawn, walls, roofs and glass.
// The returned slice is shared and must not be modified.
func Static() []Part {
	return static
}

// Frame returns every part to draw for s, in draw order.
func Frame(s sim.State) []Part {
	parts := make([]Part, 0, len(static)+dynamicParts+2)
	parts = append(parts, static...)
	parts = append(parts, Doors(s.LeftDoorOpen, s.RightDoorOpen)...)
	parts = append(parts, Dynamic(s)...)
	return parts
}
