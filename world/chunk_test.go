// SPDX-License-Identifier: GPL-2.0-or-later

package world

import "testing"

func TestTerrainFill(t *testing.T) {
	c := NewChunk(ChunkPos{})
	// column height is |x-z|
	cases := []struct {
		x, y, z int32
		solid   bool
	}{
		{0, 0, 0, false},  // height 0, empty column
		{5, 0, 2, true},   // height 3
		{5, 2, 2, true},
		{5, 3, 2, false},
		{2, 2, 5, true},   // symmetric
		{15, 14, 0, true}, // tallest column
		{15, 15, 0, false},
	}
	for _, tc := range cases {
		got := c.At(tc.x, tc.y, tc.z).ID != 0
		if got != tc.solid {
			t.Errorf("At(%d,%d,%d) solid = %v, want %v", tc.x, tc.y, tc.z, got, tc.solid)
		}
	}
}

func TestFaceVisible(t *testing.T) {
	c := &Chunk{}
	c.Blocks[blockIndex(8, 8, 8)].ID = 1
	c.Blocks[blockIndex(9, 8, 8)].ID = 1

	if c.faceVisible(8, 8, 8, sideNorth) {
		t.Error("face toward a solid neighbor should not be visible")
	}
	if !c.faceVisible(8, 8, 8, sideTop) {
		t.Error("face toward air should be visible")
	}
	if !c.faceVisible(0, 0, 0, sideSouth) {
		t.Error("chunk border faces count as visible")
	}
	if !c.faceVisible(15, 15, 15, sideEast) {
		t.Error("chunk border faces count as visible")
	}
}

func TestSideLights(t *testing.T) {
	cases := []struct {
		s    side
		want uint8
	}{
		{sideNorth, 8},
		{sideSouth, 8},
		{sideEast, 6},
		{sideWest, 6},
		{sideTop, 10},
		{sideBottom, 5},
	}
	for _, tc := range cases {
		if got := tc.s.light(); got != tc.want {
			t.Errorf("side %d light = %d, want %d", tc.s, got, tc.want)
		}
	}
}
