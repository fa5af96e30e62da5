// SPDX-License-Identifier: GPL-2.0-or-later

// package input handles button event tracking
package input

type Button struct {
	// key nums holding it down, can handle 2 keys with the same action
	holdingDown [2]int
	down        bool
}

var (
	Forward   Button
	Back      Button
	MoveLeft  Button
	MoveRight Button
	Up        Button
	Down      Button
	Speed     Button
)

// mouse look deltas, accumulated per frame
var (
	MouseDeltaX float64
	MouseDeltaY float64
)

func (b *Button) Down() bool {
	return b.down
}

// DownKey marks the button held by key k. Key numbers must be non zero.
func (b *Button) DownKey(k int) {
	if b.holdingDown[0] == k || b.holdingDown[1] == k {
		// repeating key
		return
	}
	if b.holdingDown[0] == 0 {
		b.holdingDown[0] = k
	} else if b.holdingDown[1] == 0 {
		b.holdingDown[1] = k
	}
	b.down = true
}

// UpKey releases key k. The button stays down while another key holds it.
func (b *Button) UpKey(k int) {
	if b.holdingDown[0] == k {
		b.holdingDown[0] = 0
	} else if b.holdingDown[1] == k {
		b.holdingDown[1] = 0
	} else {
		return
	}
	if b.holdingDown[0] != 0 || b.holdingDown[1] != 0 {
		// some other key is still holding it down
		return
	}
	b.down = false
}

func MouseMotion(dx, dy float64) {
	MouseDeltaX += dx
	MouseDeltaY += dy
}

// Reset clears the per frame mouse deltas. Called after each update.
func Reset() {
	MouseDeltaX = 0
	MouseDeltaY = 0
}

// ReleaseAll clears every button, used when the window loses focus.
func ReleaseAll() {
	for _, b := range []*Button{
		&Forward, &Back, &MoveLeft, &MoveRight, &Up, &Down, &Speed,
	} {
		b.holdingDown = [2]int{}
		b.down = false
	}
	Reset()
}
