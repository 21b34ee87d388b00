// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms scene vertices and forwards the lighting inputs.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies the point light and ambient term.
//
//go:embed scene.frag
var SceneFragmentShader string
