//go:build tinygo && bootdebug

package app

import (
	"image/color"

	"spos/hal"

	"tinygo.org/x/tinyfont"
)

func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(fb, overlayFont, 0, 12, "spos boot", fg)
	tinyfont.WriteLine(fb, overlayFont, 0, 28, msg, fg)
	_ = fb.Present()
}
