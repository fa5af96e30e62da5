// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"govoxel/cvar"
	"govoxel/cvars"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func Shutdown() {
	sdl.GLDeleteContext(context)
	context = nil
	window.Destroy()
	window = nil
}

func Fullscreen() bool {
	return window.GetFlags()&(sdl.WINDOW_FULLSCREEN|sdl.WINDOW_FULLSCREEN_DESKTOP) != 0
}

// ToggleFullscreen switches between windowed and borderless fullscreen.
func ToggleFullscreen() {
	if Fullscreen() {
		if err := window.SetFullscreen(0); err != nil {
			log.Printf("Couldn't leave fullscreen: %v", err)
		}
	} else {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			log.Printf("Couldn't enter fullscreen: %v", err)
		}
	}
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func SetVSync(on bool) {
	interval := 0
	if on {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Printf("Couldn't set swap interval: %v", err)
	}
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

// GrabMouse puts the mouse into relative mode for the fly camera.
func GrabMouse(grab bool) {
	if sdl.SetRelativeMouseMode(grab) != 0 {
		log.Printf("Couldn't set relative mouse mode")
	}
}

// Create opens the window and sets up the GL context. Width and height come
// from the cvars so a config file can override them.
func Create(title string) error {
	width := int32(cvars.WindowWidth.Int())
	height := int32(cvars.WindowHeight.Int())

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var err error
	window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		// retry without the depth size constraint
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
		window, err = sdl.CreateWindow(title,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			width, height,
			sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
		if err != nil {
			return errors.Wrap(err, "create window")
		}
	}

	context, err = window.GLCreateContext()
	if err != nil {
		return errors.Wrap(err, "create GL context")
	}
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init gl")
	}
	gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))

	SetVSync(cvars.VSync.Bool())
	cvars.VSync.SetCallback(func(cv *cvar.Cvar) {
		SetVSync(cv.Bool())
	})
	if cvars.Fullscreen.Bool() {
		ToggleFullscreen()
	}
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	} else if severity != gl.DEBUG_SEVERITY_NOTIFICATION {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func EndRendering() {
	window.GLSwap()
}
