// Package app wires the kernel scheduler core to a concrete hal.HAL: it
// supplies the idle program, the task-manager overlay, and the per-tick
// loop that actually runs whichever process the scheduler names current.
//
// The kernel package intentionally never calls a Program itself (see its
// package doc); app.System.Tick is where that boundary is crossed. Each
// registered Program is expected to do one small, non-blocking unit of
// work per call — the Go analogue of the original firmware's
// "the timer ISR fires, the current task's main loop runs until the next
// tick" cooperative model, since Go offers no way to suspend a running
// goroutine the way a hardware interrupt suspends an instruction stream.
package app

import (
	"spos/hal"
	"spos/internal/buildinfo"
	"spos/kernel"
)

// Config selects the scheduling strategy and the set of programs started
// at boot, alongside idle at pid 0.
type Config struct {
	Strategy  kernel.Kind
	Autostart *kernel.AutostartEntry
	Seed      int64
}

// System is a running instance of the scheduler bound to a HAL.
type System struct {
	hal     hal.HAL
	sched   *kernel.Scheduler
	overlay *overlay
}

// BootHook and bootHookStart are nil by default and set by
// bootdiag_tinygo.go's init when built with the bootdebug tag, giving
// New() a way to report boot progress without every build paying for the
// USB-CDC diagnostic stream.
var (
	BootHook      func(h hal.HAL, msg string)
	bootHookStart func(h hal.HAL)
)

func reportBoot(h hal.HAL, msg string) {
	if BootHook != nil {
		BootHook(h, msg)
	}
}

// New builds and boots a System: constructs the scheduler with the
// task-manager overlay and fatal handler wired to h, registers idle and
// cfg.Autostart, and starts the scheduler at idle.
func New(h hal.HAL, cfg Config) *System {
	installPanicHandler(h)
	if bootHookStart != nil {
		bootHookStart(h)
	}
	reportBoot(h, "overlay")
	ov := newOverlay(h)

	reportBoot(h, "scheduler")
	sched := kernel.New(
		kernel.WithFatalHandler(func(msg string) { fatal(h, msg) }),
		kernel.WithTaskManager(ov.Toggle),
		kernel.WithSeed(cfg.Seed),
	)
	sched.SetStrategy(cfg.Strategy)
	sched.InitScheduler(idleProgram(h), cfg.Autostart)
	sched.StartScheduler()
	reportBoot(h, "running")

	if l := h.Logger(); l != nil {
		l.WriteLineString("spos " + buildinfo.Short() + " boot: strategy=" + cfg.Strategy.String())
	}

	return &System{hal: h, sched: sched, overlay: ov}
}

// Tick runs one firing of the preemption core followed by exactly one
// call into whichever process is now current, then redraws the overlay
// if it is open. Callers drive this from their platform's tick source
// (on host, the ebiten window's Update or RunHeadless's ticker; on TinyGo,
// hal.Time.Ticks()).
func (s *System) Tick() {
	in := s.hal.Input()
	s.sched.Preempt(in.Chord(), in.WaitForRelease)

	current := s.sched.Slot(s.sched.CurrentPID())
	if prog := current.Program(); prog != nil {
		prog()
	}

	if s.overlay.Visible() {
		s.overlay.Render(s.sched)
	}
}

// Run adapts a System into the func() error step shape hal.RunWindow and
// hal.RunHeadless expect.
func Run(h hal.HAL, cfg Config) func() error {
	sys := New(h, cfg)
	return func() error {
		sys.Tick()
		return nil
	}
}

// idleProgram mirrors original_source/os_scheduler.c's idle(): cheap,
// harmless busywork selected only when nothing else is READY. A real LCD
// clear/redraw would be wasteful every tick, so this logs a heartbeat at
// a fixed interval instead.
func idleProgram(h hal.HAL) kernel.Program {
	var ticks uint64
	return func() {
		ticks++
		if ticks%256 == 0 {
			if l := h.Logger(); l != nil {
				l.WriteLineString("idle")
			}
		}
	}
}
