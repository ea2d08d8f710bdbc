package app

import (
	"fmt"
	"image/color"

	"spos/hal"

	"tinygo.org/x/tinyfont"
)

// installPanicHandler is a no-op hook kept for parity with the teacher's
// boot sequence, where panic recovery is wired up before any task runs.
// This module's only fatal path is kernel.FatalHandler (see fatal below);
// there is no separate task-level panic/recover to install here since the
// kernel package never calls a process's Program itself.
func installPanicHandler(h hal.HAL) {}

// fatal renders an unrecoverable scheduler error (spec §7: stack
// checksum mismatch) to the log and, if a display is attached, to the
// framebuffer directly — the task-manager overlay's own tinyterm buffer
// is bypassed since a fatal error can happen with the overlay closed.
func fatal(h hal.HAL, msg string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("FATAL: " + msg)
	}

	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			drawFatalScreen(fb, msg)
		}
	}

	haltForever()
}

func drawFatalScreen(fb hal.Framebuffer, msg string) {
	w, ht := fb.Size()
	fb.FillRectangle(0, 0, w, ht, color.RGBA{R: 0x80, G: 0, B: 0, A: 0xFF})

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(fb, overlayFont, 4, 16, "spos: FATAL", fg)
	tinyfont.WriteLine(fb, overlayFont, 4, 32, fmt.Sprintf("%.40s", msg), fg)
	_ = fb.Present()
}
