//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostButtonKeys maps the four simulated buttons onto the number row, in
// the order chordInput reads them (bit 0 first).
var hostButtonKeys = [buttonPinCount]ebiten.Key{
	ebiten.Key1,
	ebiten.Key2,
	ebiten.Key3,
	ebiten.Key4,
}

// poll reflects the current keyboard state onto the virtual button pins
// once per frame, the way a real board's GPIO read would see whichever
// buttons are physically held down.
func (h *hostHAL) poll() {
	for i, key := range hostButtonKeys {
		h.buttons[i].setLevel(ebiten.IsKeyPressed(key))
	}
}
