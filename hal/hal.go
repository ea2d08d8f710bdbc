package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines. On host builds it writes to
// stdout; on baremetal TinyGo builds it writes to UART0, and on other
// TinyGo targets it uses println.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook, and a
// superset of tinygo.org/x/drivers.Displayer / tinyterm.Displayer so
// tinyfont and tinyterm can draw onto it directly on both host and
// TinyGo builds.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	Display() error
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input is the button-chord device spec'd by the original os_input.c:
// Chord reports the currently pressed button mask (bit layout is
// platform-specific; the kernel only cares about equality against
// kernel.TaskManagerChord), and WaitForRelease blocks until no button is
// pressed, mirroring os_waitForNoInput.
type Input interface {
	Chord() uint8
	WaitForRelease()
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Display() Display
	Input() Input
	Time() Time
}
