// SPDX-License-Identifier: GPL-2.0-or-later

package voxellib

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"govoxel/cvars"
	"govoxel/input"
	qmath "govoxel/math"
	"govoxel/shade"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is the free flying viewpoint. It owns the view and projection
// matrices and fills the uniform block of the shading stage once per frame.
type Camera struct {
	pos   mgl32.Vec3
	yaw   float32
	pitch float32

	near   float32
	far    float32
	aspect float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

func NewCamera(aspect float32) *Camera {
	c := &Camera{
		pos:    mgl32.Vec3{-20, 0, 0},
		near:   0.1,
		far:    1000,
		aspect: aspect,
	}
	c.updateView()
	c.updateProjection()
	return c
}

func deg2rad(deg float32) float32 {
	return deg / 180 * math32.Pi
}

// Update applies the accumulated mouse deltas and the held movement buttons.
func (c *Camera) Update(dt float32) {
	sens := cvars.MouseSensitivity.Value()
	c.yaw += float32(input.MouseDeltaX) * dt * sens
	c.pitch -= float32(input.MouseDeltaY) * dt * sens
	c.pitch = qmath.Clamp(-89, c.pitch, 89)

	// movement stays level, only the view pitches
	dir := mgl32.Vec3{
		math32.Cos(deg2rad(c.yaw)),
		0,
		math32.Sin(deg2rad(c.yaw)),
	}.Normalize()
	right := dir.Cross(worldUp).Normalize()

	speed := cvars.MoveSpeed.Value() * dt
	if input.Speed.Down() {
		speed *= 2
	}
	if input.Forward.Down() {
		c.pos = c.pos.Add(dir.Mul(speed))
	}
	if input.Back.Down() {
		c.pos = c.pos.Sub(dir.Mul(speed))
	}
	if input.MoveLeft.Down() {
		c.pos = c.pos.Sub(right.Mul(speed))
	}
	if input.MoveRight.Down() {
		c.pos = c.pos.Add(right.Mul(speed))
	}
	if input.Up.Down() {
		c.pos = c.pos.Add(worldUp.Mul(speed))
	}
	if input.Down.Down() {
		c.pos = c.pos.Sub(worldUp.Mul(speed))
	}

	c.updateView()
}

func (c *Camera) updateView() {
	front := mgl32.Vec3{
		math32.Cos(deg2rad(c.yaw)) * math32.Cos(deg2rad(c.pitch)),
		math32.Sin(deg2rad(c.pitch)),
		math32.Sin(deg2rad(c.yaw)) * math32.Cos(deg2rad(c.pitch)),
	}.Normalize()
	c.view = mgl32.LookAtV(c.pos, c.pos.Add(front), worldUp)
}

func (c *Camera) updateProjection() {
	c.proj = mgl32.Perspective(
		mgl32.DegToRad(cvars.Fov.Value()), c.aspect, c.near, c.far)
}

// SetAspect rebuilds the projection after a window resize.
func (c *Camera) SetAspect(aspect float32) {
	c.aspect = aspect
	c.updateProjection()
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.pos
}

// UniformBlock returns the per draw uniform data for the shading stage.
func (c *Camera) UniformBlock() shade.UniformBlock {
	return shade.UniformBlock{
		View: c.view,
		Proj: c.proj,
	}
}
