// SPDX-License-Identifier: GPL-2.0-or-later

// Package shade defines the vertex shading stage of the voxel renderer: how
// packed integer positions, per-vertex color and a light modifier become a
// clip-space position and a shaded color. The same arithmetic exists twice,
// once as GLSL consumed by the GPU pipeline and once as plain Go so the
// contract stays testable without a GL context. Both must be kept in
// lock-step with the attribute layout the mesh uploader uses.
package shade

import "github.com/go-gl/mathgl/mgl32"

// ColorDivisor normalizes 8 bit color channels to [0,1). 255 would reach
// exactly 1.0 at full intensity, 256 saturates at 255/256 ~ 0.996. The
// renderer has always divided by 256 and changing it shifts every color, so
// it stays 256 until someone confirms the intended fidelity.
const ColorDivisor = 256.0

// lightDivisor turns the discrete light level into a brightness factor.
// Level 10 is full brightness, 0 is black. Levels above 10 overbrighten and
// are left for the output merger to clamp.
const lightDivisor = 10.0

// UniformBlock is the per draw uniform data at binding 0. The layout is
// std140 compatible as is, so it can be written to a uniform buffer without
// repacking.
type UniformBlock struct {
	View mgl32.Mat4
	Proj mgl32.Mat4
}

// ShadedVertex is the output of one shading invocation. Color is interpolated
// across the primitive by the rasterizer, ClipPos still carries w, the
// perspective divide happens in fixed function later.
type ShadedVertex struct {
	ClipPos mgl32.Vec4
	Color   mgl32.Vec3
}

// ColorEncoding selects how attribute location 1 is interpreted. A mesh
// format picks exactly one encoding and the vertex buffer producer must match
// it, there is no runtime detection.
type ColorEncoding int

const (
	// Float3 is three float color components already normalized to [0,1].
	Float3 ColorEncoding = iota
	// PackedUint3 is three 8 bit channels in [0,255], normalized by
	// ColorDivisor in the shader.
	PackedUint3
)

func (e ColorEncoding) String() string {
	switch e {
	case Float3:
		return "float3"
	case PackedUint3:
		return "packedUint3"
	}
	return "unknown"
}

// Brightness returns the multiplicative brightness factor for a light level.
// No clamping, by contract the mesher only emits levels in [0,10].
func Brightness(light uint8) float32 {
	return float32(light) / lightDivisor
}

// NormalizeColor converts packed 8 bit channels to the float color the
// Float3 encoding would carry directly.
func NormalizeColor(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(r) / ColorDivisor,
		float32(g) / ColorDivisor,
		float32(b) / ColorDivisor,
	}
}

// Transform promotes an integer grid position to float and transforms it into
// clip space. Grid coordinates of any realistic world size convert exactly.
func Transform(u *UniformBlock, pos [3]int32) mgl32.Vec4 {
	p := mgl32.Vec4{float32(pos[0]), float32(pos[1]), float32(pos[2]), 1}
	return u.Proj.Mul4(u.View).Mul4x1(p)
}

// ShadeFloat3 runs one invocation of the stage for the Float3 encoding.
func ShadeFloat3(u *UniformBlock, pos [3]int32, color mgl32.Vec3, light uint8) ShadedVertex {
	return ShadedVertex{
		ClipPos: Transform(u, pos),
		Color:   color.Mul(Brightness(light)),
	}
}

// ShadePackedUint3 runs one invocation of the stage for the PackedUint3
// encoding.
func ShadePackedUint3(u *UniformBlock, pos [3]int32, r, g, b, light uint8) ShadedVertex {
	return ShadedVertex{
		ClipPos: Transform(u, pos),
		Color:   NormalizeColor(r, g, b).Mul(Brightness(light)),
	}
}
