// SPDX-License-Identifier: GPL-2.0-or-later

package voxellib

import (
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"govoxel/config"
	"govoxel/cvars"
	"govoxel/input"
	"govoxel/meshing"
	"govoxel/window"
	"govoxel/world"
)

const VERSION = 1.00

type engine struct {
	world  *world.World
	pool   *meshing.Pool
	camera *Camera
	drawer *chunkDrawer
}

var (
	host     engine
	quitChan chan bool
)

func init() {
	quitChan = make(chan bool, 2)
}

// Main runs the whole engine and returns after the window is closed.
func Main() error {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d\n", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	log.Printf("GoVoxel %1.2f\n", VERSION)

	if p, err := config.Path(); err != nil {
		log.Printf("Couldn't locate config: %v", err)
	} else if err := config.Load(p); err != nil {
		log.Printf("Couldn't load config: %v", err)
	}

	if err := window.Create("GoVoxel"); err != nil {
		return err
	}
	defer window.Shutdown()
	log.Printf("VSync: %v", window.VSync())
	setupGLState()

	drawer, err := newChunkDrawer()
	if err != nil {
		return err
	}

	width, height := window.Size()
	host = engine{
		world:  world.New(),
		pool:   meshing.NewPool(meshing.WorkerCount(cvars.MeshWorkers.Int())),
		camera: NewCamera(float32(width) / float32(height)),
		drawer: drawer,
	}
	defer host.pool.Stop()

	window.GrabMouse(true)
	runLoop()

	if p, err := config.Path(); err == nil {
		if err := config.Save(p); err != nil {
			log.Printf("Couldn't save config: %v", err)
		}
	}
	return nil
}

func runLoop() {
	oldtime := time.Now()
	for {
		select {
		case <-quitChan:
			return
		default:
			// If we have no input focus at all, sleep a bit
			if !window.InputFocus() {
				time.Sleep(16 * time.Millisecond)
			}
			dt := float32(time.Since(oldtime).Seconds())
			oldtime = time.Now()
			hostFrame(dt)
		}
	}
}

func hostFrame(dt float32) {
	sendEvents()

	pos := host.camera.Position()
	dist := int32(cvars.RenderDistance.Int())
	dropped := host.world.Update(pos.X(), pos.Y(), pos.Z(), dist, host.pool.Submit)
	for _, p := range dropped {
		host.drawer.Drop(p)
	}
	host.pool.TryDrain(func(c *world.Chunk) {
		// the chunk may have been dropped, or dropped and recreated,
		// while it sat in the queue
		if cur, ok := host.world.Chunk(c.Pos); ok && cur == c {
			host.drawer.Upload(c)
		}
	})

	host.camera.Update(dt)
	input.Reset()

	width, height := window.Size()
	clearFrame(int32(width), int32(height))
	u := host.camera.UniformBlock()
	host.drawer.SetUniforms(&u)
	host.drawer.Draw()
	window.EndRendering()
}
