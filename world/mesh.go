// SPDX-License-Identifier: GPL-2.0-or-later

package world

// Vertex is the wire format of one mesh vertex, 16 bytes, matching the
// PackedUint3 layout of the shading stage: integer world position, 8 bit
// color channels, one light modifier byte.
type Vertex struct {
	X, Y, Z int32
	R, G, B uint8
	Light   uint8
}

// MeshBuffer collects the geometry of one meshing run. Reset keeps the
// backing arrays so a buffer can be reused across chunks.
type MeshBuffer struct {
	Vertices []Vertex
	Indices  []uint32
}

func (b *MeshBuffer) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// Quads returns the number of emitted quads.
func (b *MeshBuffer) Quads() int {
	return len(b.Vertices) / 4
}

// maskValue is one cell of the greedy merge mask. set marks a face to emit,
// positive tells which side of the slice it faces. Cells merge when all
// three fields match.
type maskValue struct {
	id       uint16
	set      bool
	positive bool
}

// Mesh runs the greedy mesher over the chunk and writes the merged quads
// into dst. For each of the three axes it scans the chunk slice by slice,
// collects exposed faces into a 2D mask and merges equal neighboring cells
// into maximal rectangles.
//
// after https://github.com/fesoliveira014/cubeproject/blob/master/CubeProject/tactical/volume/mesher/ChunkMesher.cpp
func (c *Chunk) Mesh(dst *MeshBuffer) {
	dst.Reset()
	var indicesMax uint32

	emitQuad := func(corners [4][3]int32, s side) {
		light := s.light()
		for _, q := range corners {
			dst.Vertices = append(dst.Vertices, Vertex{
				X:     q[0] + c.Pos.X*ChunkSize,
				Y:     q[1] + int32(c.Pos.Y)*ChunkSize,
				Z:     q[2] + c.Pos.Z*ChunkSize,
				R:     255,
				G:     255,
				B:     255,
				Light: light,
			})
		}
		for _, i := range [6]uint32{0, 1, 2, 2, 3, 0} {
			dst.Indices = append(dst.Indices, indicesMax+i)
		}
		indicesMax += 4
	}

	var mask [ChunkSize * ChunkSize]maskValue

	for axis := 0; axis < 3; axis++ {
		u := (axis + 1) % 3
		v := (axis + 2) % 3

		var x, q [3]int32
		q[axis] = 1
		x[axis] = -1

		for x[axis] < ChunkSize {
			// fill the mask for the slice between x[axis] and x[axis]+1
			n := 0
			for i := int32(0); i < ChunkSize; i++ {
				x[v] = i
				for j := int32(0); j < ChunkSize; j++ {
					x[u] = j

					var a, b Block
					if x[axis] >= 0 &&
						c.faceVisible(x[0], x[1], x[2], sideFromAxis(axis, true)) {
						a = c.At(x[0], x[1], x[2])
					}
					if x[axis] < ChunkSize-1 &&
						c.faceVisible(x[0]+q[0], x[1]+q[1], x[2]+q[2], sideFromAxis(axis, false)) {
						b = c.At(x[0]+q[0], x[1]+q[1], x[2]+q[2])
					}

					switch {
					case (a.ID != 0) == (b.ID != 0):
						mask[n] = maskValue{}
					case a.ID != 0:
						mask[n] = maskValue{id: a.ID, set: true, positive: true}
					default:
						mask[n] = maskValue{id: b.ID, set: true}
					}
					n++
				}
			}

			x[axis]++

			// merge mask cells into maximal rectangles
			n = 0
			for j := int32(0); j < ChunkSize; j++ {
				for i := int32(0); i < ChunkSize; {
					m := mask[n]
					if !m.set {
						n++
						i++
						continue
					}

					width := int32(1)
					for i+width < ChunkSize && mask[n+int(width)] == m {
						width++
					}

					height := int32(1)
					done := false
					for !done && height+j < ChunkSize {
						for k := int32(0); k < width; k++ {
							if mask[n+int(k)+int(height)*ChunkSize] != m {
								done = true
								break
							}
						}
						if !done {
							height++
						}
					}

					x[u] = i
					x[v] = j
					var du, dv [3]int32
					// winding flips with the face direction
					if m.positive {
						du[u] = width
						dv[v] = height
					} else {
						du[v] = height
						dv[u] = width
					}

					emitQuad([4][3]int32{
						{x[0], x[1], x[2]},
						{x[0] + du[0], x[1] + du[1], x[2] + du[2]},
						{x[0] + du[0] + dv[0], x[1] + du[1] + dv[1], x[2] + du[2] + dv[2]},
						{x[0] + dv[0], x[1] + dv[1], x[2] + dv[2]},
					}, sideFromAxis(axis, m.positive))

					for l := int32(0); l < height; l++ {
						for k := int32(0); k < width; k++ {
							mask[n+int(k)+int(l)*ChunkSize] = maskValue{}
						}
					}

					i += width
					n += int(width)
				}
			}
		}
	}
}
