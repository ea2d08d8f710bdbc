package kernel

import "math/rand"

// TaskManagerChord is the button chord that opens the task-manager
// overlay. It is hardware-specific in the original source; spec §9 says
// to treat it as a configuration constant.
const TaskManagerChord uint8 = 0b00001000 | 0b00000001

// FatalHandler is called on an unrecoverable error (spec §7: stack
// corruption). It must not return to the scheduler; the default
// implementation panics. hal implementations may install one that prints
// a diagnostic to a display and halts instead.
type FatalHandler func(msg string)

func defaultFatalHandler(msg string) {
	panic(msg)
}

// Scheduler is the process-wide singleton: process table, current pid,
// active strategy and its private state, and the critical-section guard.
// Spec design notes call for exactly this: a single struct with documented
// entry points (Exec, Preempt, EnterCritical/LeaveCritical, SetStrategy,
// InitScheduler/StartScheduler) as the only ways to mutate it.
type Scheduler struct {
	table   Table
	current ProcessID

	strategy   Kind
	roundRobin roundRobinState
	aging      agingState
	rng        *rand.Rand

	crit criticalSection

	fatal     FatalHandler
	onChord   func()
	chordMask uint8
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithTimerMask installs the platform hook that masks/unmasks the
// scheduler timer interrupt during critical sections.
func WithTimerMask(m TimerMask) Option {
	return func(s *Scheduler) { s.crit.timer = m }
}

// WithFatalHandler overrides the default panic-on-fatal behaviour.
func WithFatalHandler(h FatalHandler) Option {
	return func(s *Scheduler) {
		if h != nil {
			s.fatal = h
		}
	}
}

// WithTaskManager installs the callback invoked when the preemption core
// observes the task-manager chord (spec §4.F step 7).
func WithTaskManager(open func()) Option {
	return func(s *Scheduler) { s.onChord = open }
}

// WithSeed pins the Random strategy's PRNG for deterministic tests.
func WithSeed(seed int64) Option {
	return func(s *Scheduler) { s.rng = newRNG(seed) }
}

// New creates a Scheduler with an empty process table, strategy Even, and
// a boot-time-seeded PRNG.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		fatal:     defaultFatalHandler,
		chordMask: TaskManagerChord,
		rng:       newRNG(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentPID returns the id of the slot currently in state Running.
func (s *Scheduler) CurrentPID() ProcessID { return s.current }

// Slot exposes read-only access to a process table entry.
func (s *Scheduler) Slot(pid ProcessID) *Process { return s.table.Slot(pid) }

// EnterCritical masks the scheduler timer interrupt, nesting safely.
func (s *Scheduler) EnterCritical() { s.crit.enter() }

// LeaveCritical unmasks the scheduler timer interrupt once the outermost
// EnterCritical/LeaveCritical pair has unwound.
func (s *Scheduler) LeaveCritical() { s.crit.leave() }

// CriticalDepth reports the current critical-section nesting depth.
func (s *Scheduler) CriticalDepth() uint8 { return s.crit.depth() }

// Exec registers a new process (spec §4.A). It returns InvalidPID if the
// table is full or program is nil, and otherwise the new process's pid.
func (s *Scheduler) Exec(program Program, priority Priority) ProcessID {
	s.EnterCritical()
	defer s.LeaveCritical()
	return s.table.exec(program, priority)
}

// selectNext dispatches to the active strategy's select function.
func (s *Scheduler) selectNext(current ProcessID) ProcessID {
	return lookupStrategy(s.strategy)(s, current)
}

// Preempt runs one firing of the timer-compare interrupt (spec §4.F). It
// is the scheduler core's only mutation path once the scheduler has
// started, apart from Exec, SetStrategy and the critical-section helpers,
// and it never calls a process's Program itself:
// it only decides, via the active strategy, which pid is current when it
// returns. The caller is responsible for actually running that process's
// next quantum of work.
//
// chord is the input device's current button bitmask (spec §6); a value
// equal to the configured task-manager chord opens the overlay, but only
// after waitForRelease returns, mirroring the original ISR's
// `os_waitForNoInput(); os_taskManOpen();` pair — without that wait, a
// chord held across more than one tick would toggle the overlay open and
// shut every tick instead of opening it once per press. waitForRelease
// may be nil, in which case the chord opens the overlay immediately (for
// callers, such as tests, with no input device to block on).
func (s *Scheduler) Preempt(chord uint8, waitForRelease func()) {
	cur := s.table.Slot(s.current)

	// 1-2. save_context + record stack pointer for the outgoing process.
	saveContext(&cur.stack)

	// 4. verify the stack checksum before trusting anything else about it.
	got := checksum(&cur.stack)
	if got != cur.checksum {
		s.fatal("Stack overflow detected")
		return
	}

	// 5. the outgoing process becomes READY.
	cur.state = Ready

	// 6. strategy dispatch picks the next pid.
	next := s.selectNext(s.current)

	// 7. peripheral sidecar: wait for the chord to release before opening
	// the task manager, so holding it doesn't toggle the overlay every tick.
	if s.onChord != nil && chord == s.chordMask {
		if waitForRelease != nil {
			waitForRelease()
		}
		s.onChord()
	}

	// 8-9. the incoming process becomes RUNNING; restore_context and the
	// freshly recomputed checksum are stored for the next round-trip.
	nextSlot := s.table.Slot(next)
	nextSlot.state = Running
	restoreContext(&nextSlot.stack)
	nextSlot.checksum = checksum(&nextSlot.stack)

	s.current = next
}
