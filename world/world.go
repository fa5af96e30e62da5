// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// maxLayer is the highest chunk layer the world generates. The test terrain
// never reaches above layer 0 but the visible band logic keeps the original
// ceiling.
const maxLayer = 10

// World is the set of resident chunks around the viewer.
type World struct {
	chunks map[ChunkPos]*Chunk
}

func New() *World {
	return &World{
		chunks: make(map[ChunkPos]*Chunk),
	}
}

// Chunk returns the resident chunk at pos, if any. The uploader compares
// the returned pointer against the delivered chunk to discard meshing
// results of chunks that were dropped, or dropped and recreated, while in
// flight.
func (w *World) Chunk(pos ChunkPos) (*Chunk, bool) {
	c, ok := w.chunks[pos]
	return c, ok
}

// Contains reports whether pos is resident.
func (w *World) Contains(pos ChunkPos) bool {
	_, ok := w.chunks[pos]
	return ok
}

// Len returns the number of resident chunks.
func (w *World) Len() int {
	return len(w.chunks)
}

// viewerChunk floors the viewer position into chunk coordinates.
func viewerChunk(x, y, z float32) (int32, int32, int32) {
	return int32(math32.Floor(x / ChunkSize)),
		int32(math32.Floor(y / ChunkSize)),
		int32(math32.Floor(z / ChunkSize))
}

// Update drops chunks farther than dist+2 from the viewer on any axis,
// creates every missing chunk within dist and hands the new chunks to
// request for meshing. It returns the positions that were dropped so the
// renderer can release their GPU buffers.
func (w *World) Update(viewerX, viewerY, viewerZ float32, dist int32, request func(*Chunk)) []ChunkPos {
	cx, cy, cz := viewerChunk(viewerX, viewerY, viewerZ)

	var dropped []ChunkPos
	for pos := range w.chunks {
		if abs32(pos.X-cx) > dist+2 ||
			abs32(int32(pos.Y)-cy) > dist+2 ||
			abs32(pos.Z-cz) > dist+2 {
			dropped = append(dropped, pos)
		}
	}
	for _, pos := range dropped {
		delete(w.chunks, pos)
	}

	for x := cx - dist; x < cx+dist; x++ {
		for y := cy - dist; y < cy+dist; y++ {
			if y < 0 || y > maxLayer {
				continue
			}
			for z := cz - dist; z < cz+dist; z++ {
				pos := ChunkPos{X: x, Y: uint32(y), Z: z}
				if _, ok := w.chunks[pos]; ok {
					continue
				}
				c := NewChunk(pos)
				w.chunks[pos] = c
				request(c)
			}
		}
	}

	return dropped
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
