package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// framebuffer is the one Framebuffer implementation shared by host and
// TinyGo builds: a plain RGB565 byte buffer plus the handful of methods
// tinygo.org/x/drivers.Displayer (and tinyterm's superset of it) expect,
// so tinyfont and tinyterm can draw onto it without caring which platform
// produced it.
type framebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	scroll   int16
	rotation drivers.Rotation
}

func newFramebuffer(width, height int) *framebuffer {
	stride := width * 2
	return &framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *framebuffer) Width() int          { return f.width }
func (f *framebuffer) Height() int         { return f.height }
func (f *framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *framebuffer) StrideBytes() int    { return f.stride }
func (f *framebuffer) Buffer() []byte      { return f.buf }

func (f *framebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Size satisfies drivers.Displayer.
func (f *framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

// SetPixel satisfies drivers.Displayer.
func (f *framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := iy*f.stride + ix*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

// Display satisfies drivers.Displayer; this backend has nothing to flush
// to (Present is a no-op as well, and the host window copies the buffer
// itself in its Draw), so it is a no-op.
func (f *framebuffer) Display() error { return nil }

// FillRectangle satisfies tinyterm.Displayer.
func (f *framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	x0, y0 := int(x), int(y)
	x1, y1 := x0+int(width), y0+int(height)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.width {
		x1 = f.width
	}
	if y1 > f.height {
		y1 = f.height
	}
	for row := y0; row < y1; row++ {
		base := row * f.stride
		for col := x0; col < x1; col++ {
			off := base + col*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
	return nil
}

// SetScroll satisfies tinyterm.Displayer. This backend has no hardware
// scroll register, so it just remembers the requested line; tinyterm
// falls back to software scrolling when UseSoftwareScroll is set, which
// is how both host and TinyGo builds configure their terminal.
func (f *framebuffer) SetScroll(line int16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scroll = line
}

// SetRotation satisfies tinyterm.Displayer. Rotation is accepted and
// stored but this backend never reinterprets width/height for it; real
// rotating displays do that in their own driver, below this interface.
func (f *framebuffer) SetRotation(rotation drivers.Rotation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotation = rotation
	return nil
}

func (f *framebuffer) Present() error { return nil }

func (f *framebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
