package voxellib

// The vertex stage comes from the shade package so the GPU pipeline and the
// host reference cannot drift apart. Only the fragment stage lives here.

const (
	fragmentSourceChunkDrawer = `
#version 330
in vec3 fragColor;
out vec4 frag_color;

void main() {
	frag_color = vec4(fragColor, 1.0);
}
`
)
