// Package renderer draws the scene's primitives with a single lit,
// textured shader program.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/durham-house/internal/engine/lighting"
	"github.com/Faultbox/durham-house/internal/engine/matstack"
	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/internal/engine/renderer/shaders"
	"github.com/Faultbox/durham-house/internal/engine/shader"
	"github.com/Faultbox/durham-house/internal/logger"
	"github.com/Faultbox/durham-house/pkg/math"
)

var uniforms = []string{
	"u_ModelMatrix",
	"u_NormalMatrix",
	"u_ViewMatrix",
	"u_ProjectionMatrix",
	"u_Texture",
	"u_LightColor",
	"u_LightPosition",
	"u_AmbientColor",
	"u_DiffuseBoost",
}

// capabilities are the GL states enabled for the scene. Every fragment is
// opaque, so blending stays off.
var capabilities = []uint32{gl.DEPTH_TEST}

// Config holds renderer configuration.
type Config struct {
	ClearColor [3]float32
}

// Renderer owns the scene program and the GPU copy of every mesh drawn
// so far.
// IMPORTANT: create and use it only on the thread owning the GL context,
// after gl.Init.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  map[mesh.Key]*gpuMesh
	log     *zap.Logger

	locModel  int32
	locNormal int32
}

// New compiles the scene program and sets the fixed GL state.
func New(cfg Config) (*Renderer, error) {
	program, err := shader.Compile(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling scene program: %w", err)
	}
	if err := program.Require(uniforms...); err != nil {
		program.Delete()
		return nil, err
	}

	r := &Renderer{
		config:    cfg,
		program:   program,
		meshes:    make(map[mesh.Key]*gpuMesh),
		log:       logger.Named("renderer"),
		locModel:  program.Uniform("u_ModelMatrix"),
		locNormal: program.Uniform("u_NormalMatrix"),
	}

	for _, c := range capabilities {
		gl.Enable(c)
	}
	gl.DepthFunc(gl.LESS)

	r.log.Info("renderer ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("device", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Uint32("program", program.ID))
	return r, nil
}

// SetClearColor changes the background color used by Begin.
func (r *Renderer) SetClearColor(c [3]float32) {
	r.config.ClearColor = c
}

// Begin clears the target and loads the per-frame uniforms.
func (r *Renderer) Begin(view, proj math.Mat4, light lighting.Light, width, height int32) {
	gl.Viewport(0, 0, width, height)
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("u_ViewMatrix"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform("u_ProjectionMatrix"), 1, false, proj.Ptr())
	gl.Uniform3fv(r.program.Uniform("u_LightColor"), 1, &light.Color[0])
	gl.Uniform3fv(r.program.Uniform("u_LightPosition"), 1, &light.Position[0])
	gl.Uniform3fv(r.program.Uniform("u_AmbientColor"), 1, &light.Ambient[0])
	gl.Uniform1f(r.program.Uniform("u_DiffuseBoost"), lighting.DiffuseBoost)
	gl.Uniform1i(r.program.Uniform("u_Texture"), 0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Draw pushes model, draws d under it and pops, leaving the stack as it
// found it.
func (r *Renderer) Draw(stack *matstack.Stack, model math.Mat4, d DrawCall) error {
	if err := d.Validate(); err != nil {
		return err
	}
	g, err := r.buffers(d.Mesh)
	if err != nil {
		return err
	}

	stack.Push(model)
	defer stack.Pop()
	top, _ := stack.Peek()
	normal := top.NormalMatrix()

	gl.UniformMatrix4fv(r.locModel, 1, false, top.Ptr())
	gl.UniformMatrix4fv(r.locNormal, 1, false, normal.Ptr())

	gl.BindVertexArray(g.vao)
	g.stream(d.UV, d.Colors)
	gl.BindTexture(gl.TEXTURE_2D, d.Texture)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_BYTE, 0)
	gl.BindVertexArray(0)
	return nil
}

// buffers returns the GPU copy of m, uploading it on first use.
func (r *Renderer) buffers(m *mesh.Mesh) (*gpuMesh, error) {
	if g, ok := r.meshes[m.Key]; ok {
		return g, nil
	}
	g, err := uploadMesh(m)
	if err != nil {
		return nil, err
	}
	r.meshes[m.Key] = g
	r.log.Debug("mesh uploaded", zap.Stringer("mesh", m.Key), zap.Int32("indices", g.indexCount))
	return g, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for key, g := range r.meshes {
		g.delete()
		delete(r.meshes, key)
	}
	r.program.Delete()
}
