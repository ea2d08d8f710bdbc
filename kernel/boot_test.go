package kernel

import "testing"

func TestInitSchedulerPlacesIdleAtSlotZero(t *testing.T) {
	s := New()
	idle := func() {}
	ok := s.InitScheduler(idle, nil)
	if !ok {
		t.Fatal("InitScheduler() = false, want true")
	}
	if got := s.Slot(0).State(); got != Ready {
		t.Fatalf("idle state = %s, want ready", got)
	}
}

func TestInitSchedulerSpawnsAutostartInOrder(t *testing.T) {
	s := New()
	idle := func() {}
	var ran []int
	mark := func(i int) Program { return func() { ran = append(ran, i) } }
	list := &AutostartEntry{Program: mark(0), Next: &AutostartEntry{Program: mark(1), Next: &AutostartEntry{Program: mark(2)}}}

	s.InitScheduler(idle, list)

	for i := 0; i < 3; i++ {
		pid := ProcessID(i + 1)
		slot := s.Slot(pid)
		if slot.State() != Ready {
			t.Fatalf("pid %d state = %s, want ready", pid, slot.State())
		}
		slot.Program()()
	}
	for i, got := range ran {
		if got != i {
			t.Fatalf("autostart ran out of order: %v", ran)
		}
	}
}

// TestInitSchedulerOverflowsGracefully covers spec scenario S4: more
// autostart entries than free slots must not corrupt the table or panic;
// the entries that don't fit are simply never created.
func TestInitSchedulerOverflowsGracefully(t *testing.T) {
	s := New()
	idle := func() {}

	var head *AutostartEntry
	for i := 0; i < MaxProcesses+4; i++ {
		head = &AutostartEntry{Program: func() {}, Next: head}
	}

	ok := s.InitScheduler(idle, head)
	if !ok {
		t.Fatal("InitScheduler() = false, want true")
	}

	for pid := ProcessID(0); pid < MaxProcesses; pid++ {
		if s.Slot(pid).State() != Ready {
			t.Fatalf("pid %d state = %s, want ready", pid, s.Slot(pid).State())
		}
	}
}

func TestStartSchedulerMarksIdleRunning(t *testing.T) {
	s := New()
	idle := func() {}
	s.InitScheduler(idle, nil)
	s.StartScheduler()

	if s.CurrentPID() != 0 {
		t.Fatalf("CurrentPID() = %d, want 0", s.CurrentPID())
	}
	if got := s.Slot(0).State(); got != Running {
		t.Fatalf("idle state after start = %s, want running", got)
	}
}
