// SPDX-License-Identifier: GPL-2.0-or-later

// Package world holds the chunked block storage and turns chunks into
// renderable geometry.
package world

import (
	"github.com/google/uuid"
)

// ChunkSize is the edge length of a cubic chunk in blocks.
const ChunkSize = 16

const chunkVolume = ChunkSize * ChunkSize * ChunkSize

// Block is one voxel. ID 0 is air.
type Block struct {
	ID uint16
}

// ChunkPos addresses a chunk in chunk coordinates. Y is unsigned, the world
// has a floor and a fixed number of vertical layers.
type ChunkPos struct {
	X int32
	Y uint32
	Z int32
}

// Chunk is a ChunkSize^3 region of blocks plus its meshed geometry.
// Blocks are laid out x major: idx = x*S*S + y*S + z.
type Chunk struct {
	Pos    ChunkPos
	Blocks [chunkVolume]Block

	// Geometry and MeshRev are written by the meshing worker that owns the
	// chunk at that moment and read by the uploader afterwards. A zero
	// MeshRev means the chunk has never been meshed.
	Geometry MeshBuffer
	MeshRev  uuid.UUID
}

// NewChunk creates a chunk with the test terrain of the renderer: each
// column is solid up to height |x-z|.
func NewChunk(pos ChunkPos) *Chunk {
	c := &Chunk{Pos: pos}
	for x := int32(0); x < ChunkSize; x++ {
		for z := int32(0); z < ChunkSize; z++ {
			height := x - z
			if height < 0 {
				height = -height
			}
			for y := int32(0); y < height; y++ {
				c.Blocks[blockIndex(x, y, z)].ID = 1
			}
		}
	}
	return c
}

func blockIndex(x, y, z int32) int {
	return int(x)*ChunkSize*ChunkSize + int(y)*ChunkSize + int(z)
}

// At returns the block at chunk-local coordinates.
func (c *Chunk) At(x, y, z int32) Block {
	return c.Blocks[blockIndex(x, y, z)]
}

type side int

// side order matches the axis scan of the mesher: positive sides first.
const (
	sideNorth  side = iota // x+
	sideTop                // y+
	sideEast               // z+
	sideSouth              // x-
	sideBottom             // y-
	sideWest               // z-
)

func sideFromAxis(axis int, positive bool) side {
	if positive {
		return side(axis)
	}
	return side(axis + 3)
}

// light returns the per face light modifier in [0,10].
func (s side) light() uint8 {
	switch s {
	case sideNorth, sideSouth:
		return 8
	case sideWest, sideEast:
		return 6
	case sideTop:
		return 10
	default: // sideBottom
		return 5
	}
}

func (s side) offset() (int32, int32, int32) {
	switch s {
	case sideNorth:
		return 1, 0, 0
	case sideSouth:
		return -1, 0, 0
	case sideEast:
		return 0, 0, 1
	case sideWest:
		return 0, 0, -1
	case sideTop:
		return 0, 1, 0
	default: // sideBottom
		return 0, -1, 0
	}
}

// faceVisible reports whether the face of block (x,y,z) toward s is exposed.
// Neighbors outside the chunk count as air, chunk borders are always drawn.
func (c *Chunk) faceVisible(x, y, z int32, s side) bool {
	ox, oy, oz := s.offset()
	x, y, z = x+ox, y+oy, z+oz
	if x < 0 || x >= ChunkSize ||
		y < 0 || y >= ChunkSize ||
		z < 0 || z >= ChunkSize {
		return true
	}
	return c.At(x, y, z).ID == 0
}
