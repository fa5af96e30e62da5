// SPDX-License-Identifier: GPL-2.0-or-later

package voxellib

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"govoxel/glh"
	"govoxel/shade"
	"govoxel/world"
)

// uniformBinding is the binding point of the Matrices block, fixed by the
// shading stage contract.
const uniformBinding = 0

type chunkMesh struct {
	vao     *glh.VertexArray
	vbo     *glh.Buffer
	ebo     *glh.Buffer
	rev     uuid.UUID
	indices int32
}

// chunkDrawer owns the GL side of chunk rendering: the program, the uniform
// buffer and one vertex/index buffer pair per resident chunk.
type chunkDrawer struct {
	prog     *glh.Program
	ubo      *glh.Buffer
	encoding shade.ColorEncoding
	meshes   map[world.ChunkPos]*chunkMesh
}

func newChunkDrawer() (*chunkDrawer, error) {
	d := &chunkDrawer{
		encoding: shade.PackedUint3,
		meshes:   make(map[world.ChunkPos]*chunkMesh),
	}
	var err error
	d.prog, err = glh.NewProgram(d.encoding.VertexSource(), fragmentSourceChunkDrawer)
	if err != nil {
		return nil, errors.Wrap(err, "chunk drawer program")
	}
	d.prog.BindUniformBlock("Matrices", uniformBinding)

	d.ubo = glh.NewBuffer(glh.UniformBuffer)
	d.ubo.Bind()
	d.ubo.SetData(int(unsafe.Sizeof(shade.UniformBlock{})), nil)
	d.ubo.BindBase(uniformBinding)
	return d, nil
}

// SetUniforms uploads the per frame view and projection matrices.
func (d *chunkDrawer) SetUniforms(u *shade.UniformBlock) {
	d.ubo.Bind()
	d.ubo.SetSubData(0, int(unsafe.Sizeof(*u)), unsafe.Pointer(u))
}

// Upload (re)uploads the geometry of a freshly meshed chunk. A chunk whose
// mesh revision is already resident is left alone.
func (d *chunkDrawer) Upload(c *world.Chunk) {
	m, ok := d.meshes[c.Pos]
	if !ok {
		m = &chunkMesh{
			vao: glh.NewVertexArray(),
			vbo: glh.NewBuffer(glh.ArrayBuffer),
			ebo: glh.NewBuffer(glh.ElementArrayBuffer),
		}
		d.meshes[c.Pos] = m
	}
	if m.rev == c.MeshRev {
		return
	}
	m.rev = c.MeshRev
	m.indices = int32(len(c.Geometry.Indices))
	if m.indices == 0 {
		return
	}

	l := d.encoding.Layout()
	m.vao.Bind()
	m.vbo.Bind()
	m.vbo.SetData(len(c.Geometry.Vertices)*int(l.Stride), glh.Ptr(c.Geometry.Vertices))
	m.ebo.Bind()
	m.ebo.SetData(4*len(c.Geometry.Indices), glh.Ptr(c.Geometry.Indices))

	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribIPointerWithOffset(0, 3, gl.INT, l.Stride, l.PosOffset)
	gl.VertexAttribIPointerWithOffset(1, 3, gl.UNSIGNED_BYTE, l.Stride, l.ColorOffset)
	gl.VertexAttribIPointerWithOffset(2, 1, gl.UNSIGNED_BYTE, l.Stride, l.LightOffset)
	gl.BindVertexArray(0)
}

// Drop releases the GPU buffers of a chunk that left the visible set. The
// actual deletion happens through the glh cleanups once the objects are
// collected.
func (d *chunkDrawer) Drop(pos world.ChunkPos) {
	delete(d.meshes, pos)
}

// Draw renders every resident chunk and returns how many were drawn.
func (d *chunkDrawer) Draw() int {
	d.prog.Use()
	drawn := 0
	for _, m := range d.meshes {
		if m.indices == 0 {
			continue
		}
		m.vao.Bind()
		gl.DrawElements(gl.TRIANGLES, m.indices, gl.UNSIGNED_INT, gl.PtrOffset(0))
		drawn++
	}
	gl.BindVertexArray(0)
	return drawn
}

func setupGLState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.81, 0.92, 1)
}

func clearFrame(width, height int32) {
	gl.Viewport(0, 0, width, height)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
