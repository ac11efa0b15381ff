// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MainVertexShader transforms lit scene geometry.
//
//go:embed main.vert
var MainVertexShader string

// MainFragmentShader shades geometry with the directional, point and spot lights.
//
//go:embed main.frag
var MainFragmentShader string

// BorderVertexShader transforms the scaled silhouette of an outlined mesh.
//
//go:embed border.vert
var BorderVertexShader string

// BorderFragmentShader fills the silhouette with a flat colour.
//
//go:embed border.frag
var BorderFragmentShader string

// LineVertexShader transforms debug line vertices.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader colours debug lines.
//
//go:embed line.frag
var LineFragmentShader string
