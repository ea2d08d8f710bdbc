package app

import (
	"testing"

	"spos/hal"
	"spos/kernel"
)

func TestOverlayToggleFlipsVisibility(t *testing.T) {
	h := hal.New()
	ov := newOverlay(h)

	if ov.Visible() {
		t.Fatalf("Visible() = true before any Toggle, want false")
	}
	ov.Toggle()
	if !ov.Visible() {
		t.Fatalf("Visible() = false after one Toggle, want true")
	}
	ov.Toggle()
	if ov.Visible() {
		t.Fatalf("Visible() = true after two Toggles, want false")
	}
}

func TestOverlayRenderDoesNotPanicAgainstALiveScheduler(t *testing.T) {
	h := hal.New()
	ov := newOverlay(h)
	sched := kernel.New(kernel.WithSeed(1))
	sched.InitScheduler(func() {}, nil)
	sched.StartScheduler()

	ov.Render(sched)
}

func TestOverlayWithoutADisplayIsHarmless(t *testing.T) {
	ov := &overlay{}
	ov.Toggle()
	if ov.Visible() {
		t.Fatalf("Toggle() on a termless overlay flipped visibility, want it to stay false")
	}
	sched := kernel.New(kernel.WithSeed(1))
	sched.InitScheduler(func() {}, nil)
	sched.StartScheduler()
	ov.Render(sched)
}
