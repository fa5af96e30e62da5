// SPDX-License-Identifier: GPL-2.0-or-later

// voxelbench measures meshing throughput without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"govoxel/meshing"
	"govoxel/world"
)

func run() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	n := fs.Int("n", 512, "the number of chunks to mesh")
	workers := fs.Int("workers", 0, "mesh worker count, 0 selects automatically")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	pool := meshing.NewPool(meshing.WorkerCount(*workers))
	defer pool.Stop()

	// the same column layout the world generates around a viewer
	chunks := make([]*world.Chunk, 0, *n)
	for i := 0; i < *n; i++ {
		pos := world.ChunkPos{
			X: int32(i % 32),
			Y: uint32(i/1024) % 11,
			Z: int32(i/32) % 32,
		}
		chunks = append(chunks, world.NewChunk(pos))
	}

	pb := progressbar.Default(int64(*n))
	defer pb.Close()

	start := time.Now()
	for _, c := range chunks {
		pool.Submit(c)
	}

	var vertices, quads int
	done := 0
	for done < *n {
		drained := pool.TryDrain(func(c *world.Chunk) {
			vertices += len(c.Geometry.Vertices)
			quads += c.Geometry.Quads()
			done++
			pb.Add(1)
		})
		if drained == 0 {
			time.Sleep(time.Millisecond)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("meshed %d chunks in %v (%.0f chunks/s)\n",
		*n, elapsed.Round(time.Millisecond), float64(*n)/elapsed.Seconds())
	fmt.Printf("%d vertices, %d quads, %.1f quads per chunk\n",
		vertices, quads, float64(quads)/float64(*n))

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run benchmark: %v\n", err)
		os.Exit(1)
	}
}
