// SPDX-License-Identifier: GPL-2.0-or-later

package shade

// The GLSL sources mirror ShadeFloat3/ShadePackedUint3 exactly. Attribute
// locations and the uniform block are fixed: 0 position (ivec3), 1 color
// (per encoding), 2 light modifier, block "Matrices" expected at binding
// point 0.

const (
	vertexSourceFloat3 = `
#version 330
layout (location = 0) in ivec3 position;
layout (location = 1) in vec3 color;
layout (location = 2) in uint lightModifier;

layout (std140) uniform Matrices {
	mat4 view;
	mat4 proj;
};

out vec3 fragColor;

void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	fragColor = color * (float(lightModifier) / 10.0);
}
`

	vertexSourcePackedUint3 = `
#version 330
layout (location = 0) in ivec3 position;
layout (location = 1) in uvec3 color;
layout (location = 2) in uint lightModifier;

layout (std140) uniform Matrices {
	mat4 view;
	mat4 proj;
};

out vec3 fragColor;

void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	fragColor = (vec3(color) / 256.0) * (float(lightModifier) / 10.0);
}
`
)

// VertexSource returns the GLSL vertex shader implementing the stage for
// this encoding.
func (e ColorEncoding) VertexSource() string {
	switch e {
	case Float3:
		return vertexSourceFloat3
	case PackedUint3:
		return vertexSourcePackedUint3
	}
	panic("shade: unknown color encoding")
}

// Layout is the interleaved vertex buffer layout matching an encoding. All
// attributes are read with VertexAttribIPointer except the Float3 color.
type Layout struct {
	Stride      int32
	PosOffset   uintptr
	ColorOffset uintptr
	LightOffset uintptr
}

// Layout returns the buffer layout the mesh uploader must use for this
// encoding: position as 3 int32, then the color, then one light byte.
func (e ColorEncoding) Layout() Layout {
	switch e {
	case Float3:
		return Layout{Stride: 25, PosOffset: 0, ColorOffset: 12, LightOffset: 24}
	case PackedUint3:
		return Layout{Stride: 16, PosOffset: 0, ColorOffset: 12, LightOffset: 15}
	}
	panic("shade: unknown color encoding")
}
