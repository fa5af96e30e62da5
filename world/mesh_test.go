// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"testing"
	"unsafe"

	"govoxel/shade"
)

func TestVertexLayout(t *testing.T) {
	// the wire struct must match the layout the shading stage declares
	l := shade.PackedUint3.Layout()
	if s := unsafe.Sizeof(Vertex{}); int32(s) != l.Stride {
		t.Errorf("Vertex size = %d, layout stride %d", s, l.Stride)
	}
	if o := unsafe.Offsetof(Vertex{}.X); o != l.PosOffset {
		t.Errorf("position offset = %d, want %d", o, l.PosOffset)
	}
	if o := unsafe.Offsetof(Vertex{}.R); o != l.ColorOffset {
		t.Errorf("color offset = %d, want %d", o, l.ColorOffset)
	}
	if o := unsafe.Offsetof(Vertex{}.Light); o != l.LightOffset {
		t.Errorf("light offset = %d, want %d", o, l.LightOffset)
	}
}

func TestMeshEmptyChunk(t *testing.T) {
	c := &Chunk{}
	var buf MeshBuffer
	c.Mesh(&buf)
	if buf.Quads() != 0 || len(buf.Indices) != 0 {
		t.Errorf("empty chunk meshed to %d quads, %d indices", buf.Quads(), len(buf.Indices))
	}
}

func TestMeshSingleBlock(t *testing.T) {
	c := &Chunk{}
	c.Blocks[blockIndex(8, 8, 8)].ID = 1
	var buf MeshBuffer
	c.Mesh(&buf)

	if buf.Quads() != 6 {
		t.Fatalf("single block meshed to %d quads, want 6", buf.Quads())
	}
	if len(buf.Vertices) != 24 || len(buf.Indices) != 36 {
		t.Fatalf("got %d vertices, %d indices, want 24, 36",
			len(buf.Vertices), len(buf.Indices))
	}

	// one face per light level of the side table: x sides 8, z sides 6,
	// top 10, bottom 5; four vertices each
	lights := make(map[uint8]int)
	for _, v := range buf.Vertices {
		lights[v.Light]++
		if v.R != 255 || v.G != 255 || v.B != 255 {
			t.Fatalf("vertex color = (%d,%d,%d), want white", v.R, v.G, v.B)
		}
	}
	want := map[uint8]int{8: 8, 6: 8, 10: 4, 5: 4}
	for l, n := range want {
		if lights[l] != n {
			t.Errorf("light %d on %d vertices, want %d (all: %v)", l, lights[l], n, lights)
		}
	}
}

func TestMeshIndexPattern(t *testing.T) {
	c := &Chunk{}
	c.Blocks[blockIndex(1, 2, 3)].ID = 1
	var buf MeshBuffer
	c.Mesh(&buf)

	for q := 0; q < buf.Quads(); q++ {
		base := uint32(q * 4)
		want := []uint32{base, base + 1, base + 2, base + 2, base + 3, base}
		got := buf.Indices[q*6 : q*6+6]
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("quad %d indices = %v, want %v", q, got, want)
			}
		}
	}
}

func TestMeshGreedyMerge(t *testing.T) {
	// a full 16x1x16 slab merges to one quad per face
	c := &Chunk{}
	for x := int32(0); x < ChunkSize; x++ {
		for z := int32(0); z < ChunkSize; z++ {
			c.Blocks[blockIndex(x, 0, z)].ID = 1
		}
	}
	var buf MeshBuffer
	c.Mesh(&buf)
	if buf.Quads() != 6 {
		t.Errorf("solid slab meshed to %d quads, want 6", buf.Quads())
	}
}

func TestMeshNoMergeAcrossBlockIDs(t *testing.T) {
	// two adjacent columns of different IDs must not merge
	c := &Chunk{}
	c.Blocks[blockIndex(4, 0, 4)].ID = 1
	c.Blocks[blockIndex(5, 0, 4)].ID = 2
	var buf MeshBuffer
	c.Mesh(&buf)
	// 2 top, 2 bottom, 2+2 x ends, 2+2 z sides
	if buf.Quads() != 10 {
		t.Errorf("two-ID pair meshed to %d quads, want 10", buf.Quads())
	}
}

func TestMeshWorldOffset(t *testing.T) {
	c := &Chunk{Pos: ChunkPos{X: 1, Y: 2, Z: -3}}
	c.Blocks[blockIndex(0, 0, 0)].ID = 1
	var buf MeshBuffer
	c.Mesh(&buf)

	minX, minY, minZ := int32(1<<30), int32(1<<30), int32(1<<30)
	for _, v := range buf.Vertices {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		minZ = min(minZ, v.Z)
	}
	if minX != 1*ChunkSize || minY != 2*ChunkSize || minZ != -3*ChunkSize {
		t.Errorf("mesh min corner = (%d,%d,%d), want (%d,%d,%d)",
			minX, minY, minZ, 1*ChunkSize, 2*ChunkSize, -3*ChunkSize)
	}
}

func TestMeshDeterministic(t *testing.T) {
	c := NewChunk(ChunkPos{X: 3, Y: 0, Z: -2})
	var a, b MeshBuffer
	c.Mesh(&a)
	c.Mesh(&b)
	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Fatalf("mesh sizes differ between runs: %d/%d vs %d/%d",
			len(a.Vertices), len(a.Indices), len(b.Vertices), len(b.Indices))
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs: %v != %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestMeshBufferReuse(t *testing.T) {
	c := NewChunk(ChunkPos{})
	var buf MeshBuffer
	c.Mesh(&buf)
	n := len(buf.Vertices)
	c.Mesh(&buf)
	if len(buf.Vertices) != n {
		t.Errorf("reused buffer has %d vertices, want %d", len(buf.Vertices), n)
	}
}

func BenchmarkMesh(b *testing.B) {
	c := NewChunk(ChunkPos{})
	var buf MeshBuffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Mesh(&buf)
	}
}
