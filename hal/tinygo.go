//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	fb     *framebuffer
	input  *chordInput
	t      *tinyGoTime
}

// buttonPins are the four GPIOs wired to the evaluation board's buttons,
// configured with an internal pull-up so an unpressed button reads high
// and a pressed one pulls the line low (inverted onto the chord's active
// level by machineButtonPin.Read below).
var buttonPins = [buttonPinCount]machine.Pin{
	machine.GP2,
	machine.GP3,
	machine.GP4,
	machine.GP5,
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}

	chordPins := make([]GPIOPin, buttonPinCount)
	pins := []GPIOPin{newLEDPin("LED", led)}
	for i, mp := range buttonPins {
		mp.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		btn := &machineButtonPin{pin: mp, name: "BTN"}
		chordPins[i] = btn
		pins = append(pins, btn)
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    led,
		gpio:   newVirtualGPIO(pins),
		fb:     newFramebuffer(320, 320),
		input:  newChordInput(chordPins...).(*chordInput),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return h.input }
func (h *tinyGoHAL) Time() Time       { return h.t }

// machineButtonPin adapts a machine.Pin, read with its physical pull-up
// active-low convention, to the GPIOPin interface's active-high Read.
type machineButtonPin struct {
	pin  machine.Pin
	name string
}

func (p *machineButtonPin) Name() string   { return p.name }
func (p *machineButtonPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *machineButtonPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return ErrNotImplemented
	}
	return nil
}

func (p *machineButtonPin) Read() (bool, error) { return !p.pin.Get(), nil }

func (p *machineButtonPin) Write(level bool) error { return ErrNotImplemented }
