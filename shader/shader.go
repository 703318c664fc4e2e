package shader

import (
	_ "embed"
)

// ─────────────────────────────── Flame (WebGL2) ────────────────────────────────

// The flame pair is written against WebGL2 and translated to desktop GLSL at
// startup, so it can be shared with a browser build unchanged.

//go:embed flame.vert
var flameVertexSource string

//go:embed flame.frag
var flameFragmentSource string

// Matrix uniforms the flame vertex shader expects from the renderer.
const (
	UniformProjection = "projectionMatrix"
	UniformModelView  = "modelViewMatrix"
)

// Vertex attribute locations of the flame quad.
const (
	AttribPosition = 0
	AttribUV       = 1
)

// ────────────────────────────── Overlay (desktop GL) ──────────────────────────────

// Draws an axis aligned rectangle given in window pixels with a top-left
// origin, either as a flat colour or tinted texture.
const overlayVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
uniform vec4 u_rect;
uniform vec2 u_viewport;
out vec2 frag_uv;
void main() {
    vec2 px = u_rect.xy + in_vert * u_rect.zw;
    frag_uv = in_vert;
    gl_Position = vec4(px.x / u_viewport.x * 2.0 - 1.0, 1.0 - px.y / u_viewport.y * 2.0, 0.0, 1.0);
}
`

const overlayFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform vec4 u_color;
uniform int u_textured;
void main() {
    // textures are alpha-premultiplied, so the colour is too
    vec4 c = vec4(u_color.rgb * u_color.a, u_color.a);
    if (u_textured == 1) {
        c *= texture(u_texture, frag_uv);
    }
    fragColor = c;
}
`

// Copies the offscreen colour buffer to the default framebuffer.
const blitVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const blitFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

// ────────────────────────────────── Public API ─────────────────────────────────

func FlameVertexShader() string {
	return flameVertexSource
}

func FlameFragmentShader() string {
	return flameFragmentSource
}

func OverlayVertexShader() string {
	return overlayVertexShaderSourceGL
}

func OverlayFragmentShader() string {
	return overlayFragmentShaderSourceGL
}

func BlitVertexShader() string {
	return blitVertexShaderSourceGL
}

func BlitFragmentShader() string {
	return blitFragmentShaderSourceGL
}
