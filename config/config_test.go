// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"govoxel/cvar"
	"govoxel/cvars"
)

func TestApply(t *testing.T) {
	defer cvars.RenderDistance.Reset()
	defer cvars.VSync.Reset()

	err := Apply([]byte("render_distance: 4\nvsync: 0\n"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := cvars.RenderDistance.Int(); got != 4 {
		t.Errorf("render_distance = %d, want 4", got)
	}
	if cvars.VSync.Bool() {
		t.Error("vsync should be off")
	}
}

func TestApplyFloat(t *testing.T) {
	defer cvars.MouseSensitivity.Reset()

	if err := Apply([]byte("sensitivity: 2.5\n")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := cvars.MouseSensitivity.Value(); got != 2.5 {
		t.Errorf("sensitivity = %v, want 2.5", got)
	}
}

func TestApplyUnknownKey(t *testing.T) {
	if err := Apply([]byte("no_such_setting: 1\n")); err != nil {
		t.Errorf("unknown keys should be skipped, got %v", err)
	}
	if _, ok := cvar.Get("no_such_setting"); ok {
		t.Error("unknown key must not create a cvar")
	}
}

func TestApplyMalformed(t *testing.T) {
	if err := Apply([]byte("\t: [")); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), Filename)); err != nil {
		t.Errorf("missing config file should be fine, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	defer cvars.Fov.Reset()
	defer cvars.MoveSpeed.Reset()

	cvars.Fov.SetByString("70")
	cvars.MoveSpeed.SetByString("250")

	path := filepath.Join(t.TempDir(), Filename)
	if err := Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cvars.Fov.Reset()
	cvars.MoveSpeed.Reset()
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cvars.Fov.Value(); got != 70 {
		t.Errorf("fov after round trip = %v, want 70", got)
	}
	if got := cvars.MoveSpeed.Value(); got != 250 {
		t.Errorf("move_speed after round trip = %v, want 250", got)
	}
}

func TestLoadFile(t *testing.T) {
	defer cvars.Fov.Reset()

	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte("fov: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cvars.Fov.Value(); got != 90 {
		t.Errorf("fov = %v, want 90", got)
	}
}
