package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/durham-house/internal/engine/mesh"
)

// Attribute locations shared with shaders/scene.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
	attribTexCoord = 3
)

// gpuMesh holds the buffers of one mesh key. Positions, normals and
// indices never change; colors and texture coordinates are rewritten on
// every draw.
type gpuMesh struct {
	vao        uint32
	positions  uint32
	normals    uint32
	colors     uint32
	texCoords  uint32
	ebo        uint32
	indexCount int32
}

func uploadMesh(m *mesh.Mesh) (*gpuMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := &gpuMesh{indexCount: m.IndexCount()}
	gl.GenVertexArrays(1, &g.vao)
	if g.vao == 0 {
		return nil, fmt.Errorf("creating vertex array for %s", m.Key)
	}
	gl.BindVertexArray(g.vao)

	g.positions = arrayBuffer(m.Positions, gl.STATIC_DRAW, attribPosition, 3)
	g.normals = arrayBuffer(m.Normals, gl.STATIC_DRAW, attribNormal, 3)
	g.colors = arrayBuffer(m.Colors, gl.DYNAMIC_DRAW, attribColor, 3)
	g.texCoords = arrayBuffer(make([]float32, mesh.UVFloats), gl.DYNAMIC_DRAW, attribTexCoord, 2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices), gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		g.delete()
		return nil, fmt.Errorf("uploading %s: gl error 0x%x", m.Key, code)
	}
	return g, nil
}

func arrayBuffer(data []float32, usage uint32, location uint32, size int32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(location)
	return id
}

// stream overwrites the per-draw vertex attributes.
func (g *gpuMesh) stream(uv, colors []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, g.texCoords)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(uv)*4, gl.Ptr(uv))
	gl.BindBuffer(gl.ARRAY_BUFFER, g.colors)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*4, gl.Ptr(colors))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (g *gpuMesh) delete() {
	for _, id := range []*uint32{&g.positions, &g.normals, &g.colors, &g.texCoords, &g.ebo} {
		if *id != 0 {
			gl.DeleteBuffers(1, id)
			*id = 0
		}
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
