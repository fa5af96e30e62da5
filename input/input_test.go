// SPDX-License-Identifier: GPL-2.0-or-later

package input

import "testing"

func TestTwoKeysOneButton(t *testing.T) {
	var b Button
	b.DownKey(10)
	b.DownKey(20)
	if !b.Down() {
		t.Error("button should be down")
	}
	b.UpKey(10)
	if !b.Down() {
		t.Error("second key still holds the button")
	}
	b.UpKey(20)
	if b.Down() {
		t.Error("button should be released")
	}
}

func TestKeyRepeat(t *testing.T) {
	var b Button
	b.DownKey(10)
	b.DownKey(10) // key repeat must not occupy the second slot
	b.DownKey(20)
	b.UpKey(10)
	b.UpKey(20)
	if b.Down() {
		t.Error("button stuck after key repeat")
	}
}

func TestUnrelatedKeyUp(t *testing.T) {
	var b Button
	b.DownKey(10)
	b.UpKey(99)
	if !b.Down() {
		t.Error("unrelated key release must not release the button")
	}
}

func TestMouseMotion(t *testing.T) {
	defer Reset()
	MouseMotion(3, -1)
	MouseMotion(2, 2)
	if MouseDeltaX != 5 || MouseDeltaY != 1 {
		t.Errorf("accumulated delta = (%v,%v), want (5,1)", MouseDeltaX, MouseDeltaY)
	}
	Reset()
	if MouseDeltaX != 0 || MouseDeltaY != 0 {
		t.Error("Reset did not clear deltas")
	}
}

func TestReleaseAll(t *testing.T) {
	Forward.DownKey(1)
	Speed.DownKey(2)
	ReleaseAll()
	if Forward.Down() || Speed.Down() {
		t.Error("ReleaseAll left buttons down")
	}
}
