//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	gpio    GPIO
	fb      *framebuffer
	buttons []*virtualPin
	input   *chordInput
	t       *hostTime
}

// buttonPinCount is the number of virtual buttons the host simulates,
// matching the 4-bit chord layout spec.md's task-manager constant fits.
const buttonPinCount = 4

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	t := newHostTime()
	led := &hostLED{logger: logger}

	buttons := make([]*virtualPin, buttonPinCount)
	chordPins := make([]GPIOPin, buttonPinCount)
	pins := []GPIOPin{newLEDPin("LED", led)}
	for i := 0; i < buttonPinCount; i++ {
		btn := newVirtualPin(fmt.Sprintf("BTN%d", i+1), GPIOCapInput)
		btn.Configure(GPIOModeInput, GPIOPullNone)
		buttons[i] = btn
		chordPins[i] = btn
		pins = append(pins, btn)
	}
	gpio := newVirtualGPIO(pins)

	return &hostHAL{
		logger:  logger,
		led:     led,
		gpio:    gpio,
		fb:      newFramebuffer(320, 320),
		buttons: buttons,
		input:   newChordInput(chordPins...).(*chordInput),
		t:       t,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return h.input }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *framebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
