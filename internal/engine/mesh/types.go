// Package mesh builds the fixed primitive shapes the scene is made of and
// the per-draw texture-coordinate and color arrays that go with them.
//
// Every primitive has six logical faces of four vertices each, in the
// order front, right, up, left, down, back, and each face is split into
// two triangles (0,1,2) and (0,2,3).
package mesh

import (
	"errors"
	"fmt"
)

const (
	// FaceCount is the number of logical faces in every primitive.
	FaceCount = 6
	// VertsPerFace is the number of vertices per logical face.
	VertsPerFace = 4
	// VertexCount is the number of vertices in every primitive.
	VertexCount = FaceCount * VertsPerFace
	// IndexCount is the number of triangle indices in every primitive.
	IndexCount = FaceCount * 6
)

// ErrInvalidMesh is returned when a mesh does not have the fixed layout.
var ErrInvalidMesh = errors.New("invalid mesh")

// Kind identifies a primitive shape.
type Kind int

const (
	KindCube Kind = iota
	KindPerson
	KindGable
	KindShed
	KindPrism
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindPerson:
		return "person"
	case KindGable:
		return "gable"
	case KindShed:
		return "shed"
	case KindPrism:
		return "prism"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Key identifies a built mesh. Offset and RightAngle only apply to prisms.
type Key struct {
	Kind       Kind
	Offset     float32
	RightAngle bool
}

// Keys of the parameterless shapes.
var (
	CubeKey   = Key{Kind: KindCube}
	PersonKey = Key{Kind: KindPerson}
	GableKey  = Key{Kind: KindGable}
	ShedKey   = Key{Kind: KindShed}
)

// PrismKey returns the key of a truncated prism.
func PrismKey(offset float32, rightAngle bool) Key {
	return Key{Kind: KindPrism, Offset: offset, RightAngle: rightAngle}
}

func (k Key) String() string {
	if k.Kind == KindPrism {
		return fmt.Sprintf("prism(%g,%t)", k.Offset, k.RightAngle)
	}
	return k.Kind.String()
}

// Mesh holds immutable vertex data ready for GPU upload.
// Positions, Normals and Colors carry three floats per vertex.
type Mesh struct {
	Key       Key
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint8
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// Validate checks the fixed six-face layout.
func (m *Mesh) Validate() error {
	if len(m.Positions) != VertexCount*3 {
		return fmt.Errorf("%w: %s has %d position floats", ErrInvalidMesh, m.Key, len(m.Positions))
	}
	if len(m.Normals) != VertexCount*3 {
		return fmt.Errorf("%w: %s has %d normal floats", ErrInvalidMesh, m.Key, len(m.Normals))
	}
	if len(m.Colors) != VertexCount*3 {
		return fmt.Errorf("%w: %s has %d color floats", ErrInvalidMesh, m.Key, len(m.Colors))
	}
	if len(m.Indices) != IndexCount {
		return fmt.Errorf("%w: %s has %d indices", ErrInvalidMesh, m.Key, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= VertexCount {
			return fmt.Errorf("%w: %s index %d references vertex %d", ErrInvalidMesh, m.Key, i, idx)
		}
	}
	return nil
}
