package mesh

import (
	"fmt"

	"github.com/Faultbox/durham-house/pkg/math"
)

// ShedOffset is the depth of the shed roof's ridge relative to its half-width.
const ShedOffset float32 = 0.66

// face is one logical quad of a primitive.
type face struct {
	corners [VertsPerFace]math.Vec3
	normal  math.Vec3
}

type v3 = math.Vec3

// box returns the six faces of an axis-aligned box spanning [x0,x1]×[y0,y1]×[z0,z1].
func box(x0, x1, y0, y1, z0, z1 float32) [FaceCount]face {
	return [FaceCount]face{
		{[4]v3{{x1, y1, z1}, {x0, y1, z1}, {x0, y0, z1}, {x1, y0, z1}}, v3{Z: 1}},
		{[4]v3{{x1, y1, z1}, {x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}}, v3{X: 1}},
		{[4]v3{{x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}, {x0, y1, z1}}, v3{Y: 1}},
		{[4]v3{{x0, y1, z1}, {x0, y1, z0}, {x0, y0, z0}, {x0, y0, z1}}, v3{X: -1}},
		{[4]v3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}, v3{Y: -1}},
		{[4]v3{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}, v3{Z: -1}},
	}
}

// Cube returns the unit cube spanning -1..1 on every axis.
func Cube() *Mesh {
	return assemble(CubeKey, box(-1, 1, -1, 1, -1, 1))
}

// Person returns the body-part cuboid: half-width 0.5 on x and z, hanging
// from its origin down to y=-1 so rotations swing it like a limb.
func Person() *Mesh {
	return assemble(PersonKey, box(-0.5, 0.5, -1, 0, -0.5, 0.5))
}

// Gable returns a triangular roof prism with its ridge along z at y=1.
// The up face is degenerate.
func Gable() *Mesh {
	return assemble(GableKey, [FaceCount]face{
		{[4]v3{{1, -1, -1}, {0, 1, -1}, {-1, -1, -1}, {-1, -1, -1}}, v3{Z: -1}},
		{[4]v3{{-1, -1, 1}, {0, 1, 1}, {0, 1, -1}, {-1, -1, -1}}, v3{X: -2, Y: 1}},
		{[4]v3{{0, 1, 1}, {0, 1, -1}, {0, 1, 1}, {0, 1, -1}}, v3{Y: 1}},
		{[4]v3{{1, -1, 1}, {0, 1, 1}, {0, 1, -1}, {1, -1, -1}}, v3{X: 2, Y: 1}},
		{[4]v3{{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}}, v3{Y: -1}},
		{[4]v3{{1, -1, 1}, {-1, -1, 1}, {0, 1, 1}, {0, 1, 1}}, v3{Z: 1}},
	})
}

// Shed returns a lean-to roof sloping from a ridge at x=-1, y=1 down to
// the x=1 eave. The up face is degenerate.
func Shed() *Mesh {
	o := ShedOffset
	q := -2 / (1 - o)
	return assemble(ShedKey, [FaceCount]face{
		{[4]v3{{-1, -1, 1}, {1, -1, 1}, {-1, 1, o}, {-1, 1, o}}, v3{Y: 1, Z: -q}},
		{[4]v3{{1, -1, -1}, {1, -1, 1}, {-1, 1, o}, {-1, 1, -o}}, v3{X: 1, Y: 1}},
		{[4]v3{{-1, 1, -o}, {-1, 1, o}, {-1, 1, -o}, {-1, 1, o}}, v3{Y: 1}},
		{[4]v3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, o}, {-1, 1, -o}}, v3{X: -1}},
		{[4]v3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, v3{Y: -1}},
		{[4]v3{{-1, -1, -1}, {1, -1, -1}, {-1, 1, -o}, {-1, 1, -o}}, v3{Y: 1, Z: q}},
	})
}

// Prism returns a box whose +z face is narrowed by offset on both sides,
// or only on the -x side when rightAngle is set. offset must lie in (0,2).
func Prism(offset float32, rightAngle bool) (*Mesh, error) {
	if offset <= 0 || offset >= 2 {
		return nil, fmt.Errorf("%w: prism offset %g outside (0,2)", ErrInvalidMesh, offset)
	}
	p := offset
	r := 1 - p
	rightNormal := v3{X: 2, Z: p}
	if rightAngle {
		r = 1
		rightNormal = v3{X: 1}
	}
	l := -1 + p

	m := assemble(PrismKey(offset, rightAngle), [FaceCount]face{
		{[4]v3{{r, 1, 1}, {l, 1, 1}, {l, -1, 1}, {r, -1, 1}}, v3{Z: 1}},
		{[4]v3{{r, 1, 1}, {r, -1, 1}, {1, -1, -1}, {1, 1, -1}}, rightNormal},
		{[4]v3{{r, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {l, 1, 1}}, v3{Y: 1}},
		{[4]v3{{l, 1, 1}, {-1, 1, -1}, {-1, -1, -1}, {l, -1, 1}}, v3{X: -2, Z: p}},
		{[4]v3{{-1, -1, -1}, {1, -1, -1}, {r, -1, 1}, {l, -1, 1}}, v3{Y: -1}},
		{[4]v3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, v3{Z: -1}},
	})
	// The last vertex of the back face carries no blue component.
	m.Colors[len(m.Colors)-1] = 0
	return m, nil
}

// Build returns the mesh identified by key.
func Build(key Key) (*Mesh, error) {
	var m *Mesh
	switch key.Kind {
	case KindCube:
		m = Cube()
	case KindPerson:
		m = Person()
	case KindGable:
		m = Gable()
	case KindShed:
		m = Shed()
	case KindPrism:
		var err error
		if m, err = Prism(key.Offset, key.RightAngle); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrInvalidMesh, key.Kind)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// assemble flattens faces into vertex arrays with white colors and the
// shared two-triangles-per-face index list.
func assemble(key Key, faces [FaceCount]face) *Mesh {
	m := &Mesh{
		Key:       key,
		Positions: make([]float32, 0, VertexCount*3),
		Normals:   make([]float32, 0, VertexCount*3),
		Colors:    make([]float32, VertexCount*3),
		Indices:   make([]uint8, 0, IndexCount),
	}
	for i := range m.Colors {
		m.Colors[i] = 1
	}
	for i, f := range faces {
		for _, c := range f.corners {
			m.Positions = append(m.Positions, c.X, c.Y, c.Z)
			m.Normals = append(m.Normals, f.normal.X, f.normal.Y, f.normal.Z)
		}
		base := uint8(i * VertsPerFace)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
