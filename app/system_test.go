package app

import (
	"testing"

	"spos/hal"
	"spos/kernel"
)

func TestNewStartsSchedulerWithIdleRunning(t *testing.T) {
	h := hal.New()
	sys := New(h, Config{Strategy: kernel.Even, Seed: 1})

	if got := sys.sched.CurrentPID(); got != 0 {
		t.Fatalf("CurrentPID() = %d, want 0 (idle)", got)
	}
	if got := sys.sched.Slot(0).State(); got != kernel.Running {
		t.Fatalf("idle slot state = %v, want Running", got)
	}
}

func TestNewRegistersAutostartEntriesInOrder(t *testing.T) {
	h := hal.New()
	var ran []int
	auto := &kernel.AutostartEntry{
		Program: func() { ran = append(ran, 1) },
		Next:    &kernel.AutostartEntry{Program: func() { ran = append(ran, 2) }},
	}
	sys := New(h, Config{Strategy: kernel.RunToCompletion, Autostart: auto, Seed: 1})

	if got := sys.sched.Slot(1).State(); got != kernel.Ready {
		t.Fatalf("slot 1 state = %v, want Ready", got)
	}
	if got := sys.sched.Slot(2).State(); got != kernel.Ready {
		t.Fatalf("slot 2 state = %v, want Ready", got)
	}

	sys.sched.Slot(1).Program()()
	sys.sched.Slot(2).Program()()
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Fatalf("slot programs ran as %v, want [1 2] (declaration order)", ran)
	}
}

func TestTickRunsExactlyOneQuantumOfTheCurrentProcess(t *testing.T) {
	h := hal.New()
	var calls int
	auto := &kernel.AutostartEntry{Program: func() { calls++ }}
	sys := New(h, Config{Strategy: kernel.RunToCompletion, Autostart: auto, Seed: 1})

	// Idle is not selectable while the autostart process is READY, so the
	// first tick switches RunToCompletion from idle to pid 1, and every
	// later tick holds pid 1; its Program must then run exactly once per
	// tick.
	for i := 0; i < 4; i++ {
		sys.Tick()
	}
	if calls != 4 {
		t.Fatalf("autostart Program ran %d times across 4 ticks, want exactly 4", calls)
	}
}

func TestTickNeverPanicsWithOverlayToggledOpen(t *testing.T) {
	h := hal.New()
	sys := New(h, Config{Strategy: kernel.Even, Seed: 1})
	sys.overlay.Toggle()

	for i := 0; i < 8; i++ {
		sys.Tick()
	}
}
