package kernel

// AutostartEntry is one node of the autostart singly-linked list supplied
// by the application layer at link time (spec §6). Order is preserved.
type AutostartEntry struct {
	Program Program
	Next    *AutostartEntry
}

// InitScheduler creates idle as pid 0, then spawns every autostart entry
// in declaration order, all at DefaultPriority (spec §4.G, §4.A). It
// returns false if idle could not be created as slot 0 — a construction
// invariant spec §9 calls out explicitly.
func (s *Scheduler) InitScheduler(idle Program, autostart *AutostartEntry) bool {
	pid := s.Exec(idle, DefaultPriority)
	if pid != 0 {
		return false
	}
	// Mirrors the original source's belt-and-suspenders re-assertion that
	// every freshly execed slot is READY; Exec already guarantees this,
	// so this loop is redundant by construction and kept only for parity
	// with the AVR original (see SPEC_FULL.md's supplemented-features note).
	s.table.Slot(pid).state = Ready

	for node := autostart; node != nil; node = node.Next {
		child := s.Exec(node.Program, DefaultPriority)
		if child != InvalidPID {
			s.table.Slot(child).state = Ready
		}
	}
	return true
}

// StartScheduler marks slot 0 running and performs the first
// restore_context, handing control to idle. From this call onward the
// system is multitasking: the caller must begin feeding Preempt from its
// timer source.
func (s *Scheduler) StartScheduler() {
	s.current = 0
	slot := s.table.Slot(0)
	slot.state = Running
	restoreContext(&slot.stack)
	slot.checksum = checksum(&slot.stack)
}
