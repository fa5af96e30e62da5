// SPDX-License-Identifier: GPL-2.0-or-later

package voxellib

import (
	"github.com/veandco/go-sdl2/sdl"

	"govoxel/input"
	"govoxel/window"
)

// movementButton maps a scancode to its movement button. Both QWERTY and
// AZERTY bindings are live at the same time, the two key slots per button
// keep that from glitching.
func movementButton(sc sdl.Scancode) *input.Button {
	switch sc {
	case sdl.SCANCODE_W, sdl.SCANCODE_Z:
		return &input.Forward
	case sdl.SCANCODE_S:
		return &input.Back
	case sdl.SCANCODE_A, sdl.SCANCODE_Q:
		return &input.MoveLeft
	case sdl.SCANCODE_D:
		return &input.MoveRight
	case sdl.SCANCODE_SPACE:
		return &input.Up
	case sdl.SCANCODE_LCTRL:
		return &input.Down
	case sdl.SCANCODE_LSHIFT:
		return &input.Speed
	}
	return nil
}

func handleKeyboardEvent(e *sdl.KeyboardEvent) {
	// We want the key and not what it is mapped to. So use Scancode
	if b := movementButton(e.Keysym.Scancode); b != nil {
		if e.State == sdl.PRESSED {
			b.DownKey(int(e.Keysym.Scancode))
		} else {
			b.UpKey(int(e.Keysym.Scancode))
		}
		return
	}
	if e.State != sdl.PRESSED || e.Repeat != 0 {
		return
	}
	switch e.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		quitChan <- true
	case sdl.SCANCODE_F11:
		window.ToggleFullscreen()
	}
}

func handleMouseMotionEvent(e *sdl.MouseMotionEvent) {
	input.MouseMotion(float64(e.XRel), float64(e.YRel))
}

func handleWindowEvent(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		window.GrabMouse(true)
	case sdl.WINDOWEVENT_FOCUS_LOST:
		window.GrabMouse(false)
		input.ReleaseAll()
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		w, h := window.Size()
		if h > 0 {
			host.camera.SetAspect(float32(w) / float32(h))
		}
	}
}

func sendEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.WindowEvent:
			handleWindowEvent(t)
		case *sdl.KeyboardEvent:
			handleKeyboardEvent(t)
		case *sdl.MouseMotionEvent:
			handleMouseMotionEvent(t)
		case *sdl.QuitEvent:
			quitChan <- true
		default:
			break
		}
	}
}
