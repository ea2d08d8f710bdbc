package app

import (
	"testing"

	"spos/hal"
)

func TestDrawFatalScreenFillsTheFramebuffer(t *testing.T) {
	h := hal.New()
	fb := h.Display().Framebuffer()

	drawFatalScreen(fb, "stack overflow detected")

	// The bottom-right pixel is far from the text and must hold the fill
	// colour, RGB(0x80, 0, 0) in RGB565 = 0x8000, stored little-endian.
	buf := fb.Buffer()
	off := len(buf) - 2
	if buf[off] != 0x00 || buf[off+1] != 0x80 {
		t.Fatalf("bottom-right pixel bytes = (%#x, %#x), want (0x0, 0x80)", buf[off], buf[off+1])
	}
}

func TestFatalLogsAndHalts(t *testing.T) {
	h := hal.New()

	defer func() {
		if recover() == nil {
			t.Fatalf("fatal() returned instead of halting via panic")
		}
	}()
	fatal(h, "stack overflow detected")
}
