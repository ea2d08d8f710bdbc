package hal

import "testing"

func TestVirtualPinReadDefaultsToInputMode(t *testing.T) {
	p := newVirtualPin("BTN1", GPIOCapInput)
	level, err := p.Read()
	if err != nil {
		t.Fatalf("Read() on a freshly created pin returned error: %v", err)
	}
	if level {
		t.Fatalf("Read() = true, want false for a never-touched pin")
	}
}

func TestVirtualPinSetLevelBypassesOutputModeCheck(t *testing.T) {
	p := newVirtualPin("BTN1", GPIOCapInput)
	if err := p.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure() = %v, want nil", err)
	}

	p.setLevel(true)

	level, err := p.Read()
	if err != nil {
		t.Fatalf("Read() = %v, want nil error", err)
	}
	if !level {
		t.Fatalf("Read() = false after setLevel(true), want true")
	}
}

func TestVirtualPinWriteRejectedWhenNotOutput(t *testing.T) {
	p := newVirtualPin("BTN1", GPIOCapInput)
	if err := p.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure() = %v, want nil", err)
	}
	if err := p.Write(true); err == nil {
		t.Fatalf("Write() on an input-configured pin = nil error, want an error")
	}
}

func TestVirtualPinConfigureRejectsUnsupportedCaps(t *testing.T) {
	p := newVirtualPin("BTN1", GPIOCapInput)
	if err := p.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatalf("Configure(output) on an input-only pin = nil error, want an error")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatalf("Configure(pull-up) on a pin without GPIOCapPullUp = nil error, want an error")
	}
}

func TestVirtualGPIOPinCountAndLookup(t *testing.T) {
	pins := []GPIOPin{newVirtualPin("A", GPIOCapInput), newVirtualPin("B", GPIOCapInput)}
	g := newVirtualGPIO(pins)

	if got := g.PinCount(); got != 2 {
		t.Fatalf("PinCount() = %d, want 2", got)
	}
	if got := g.Pin(0).Name(); got != "A" {
		t.Fatalf("Pin(0).Name() = %q, want %q", got, "A")
	}
	if got := g.Pin(5); got != nil {
		t.Fatalf("Pin(5) = %v, want nil for out-of-range id", got)
	}
}

func TestNewVirtualGPIOEmptyReturnsNullGPIO(t *testing.T) {
	g := newVirtualGPIO(nil)
	if got := g.PinCount(); got != 0 {
		t.Fatalf("PinCount() = %d, want 0 for an empty pin set", got)
	}
	if got := g.Pin(0); got != nil {
		t.Fatalf("Pin(0) on an empty GPIO = %v, want nil", got)
	}
}
