// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"govoxel/cvar"
)

var (
	Fov              *cvar.Cvar
	Fullscreen       *cvar.Cvar
	MeshWorkers      *cvar.Cvar
	MouseSensitivity *cvar.Cvar
	MoveSpeed        *cvar.Cvar
	RenderDistance   *cvar.Cvar
	VSync            *cvar.Cvar
	WindowHeight     *cvar.Cvar
	WindowWidth      *cvar.Cvar
)

func init() {
	Fov = cvar.MustRegister("fov", "45", cvar.ARCHIVE)
	Fullscreen = cvar.MustRegister("fullscreen", "0", cvar.ARCHIVE)
	MeshWorkers = cvar.MustRegister("mesh_workers", "0", cvar.ARCHIVE)
	MouseSensitivity = cvar.MustRegister("sensitivity", "5", cvar.ARCHIVE)
	MoveSpeed = cvar.MustRegister("move_speed", "400", cvar.ARCHIVE)
	RenderDistance = cvar.MustRegister("render_distance", "10", cvar.ARCHIVE)
	VSync = cvar.MustRegister("vsync", "1", cvar.ARCHIVE)
	WindowHeight = cvar.MustRegister("window_height", "720", cvar.ARCHIVE)
	WindowWidth = cvar.MustRegister("window_width", "1080", cvar.ARCHIVE)
}
