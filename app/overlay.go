package app

import (
	"image/color"

	"spos/hal"
	"spos/internal/buildinfo"
	"spos/kernel"

	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyterm"
)

var overlayFont = &freemono.Regular9pt7b

const (
	overlayFontHeight = int16(11)
	overlayFontOffset = int16(8)

	// ansiGreen selects tinyterm's SGRFgGreen for the header line.
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

var overlayBG = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}

// overlay is the task-manager screen opened by the button chord
// kernel.TaskManagerChord (spec §4.F step 7): a live table of every
// process's pid, priority and state, rendered through the same
// tinyterm.Terminal/tinyfont stack on host and TinyGo builds since both
// share the hal.Framebuffer Displayer surface.
type overlay struct {
	fb      hal.Framebuffer
	term    *tinyterm.Terminal
	visible bool
}

func newOverlay(h hal.HAL) *overlay {
	disp := h.Display()
	if disp == nil {
		return &overlay{}
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return &overlay{}
	}

	term := tinyterm.NewTerminal(fb)
	term.Configure(&tinyterm.Config{
		Font:              overlayFont,
		FontHeight:        overlayFontHeight,
		FontOffset:        overlayFontOffset,
		UseSoftwareScroll: true,
	})
	return &overlay{fb: fb, term: term}
}

// Toggle flips overlay visibility. It is installed as the scheduler's
// task-manager callback (kernel.WithTaskManager), so it runs synchronously
// inside Preempt whenever the chord matches.
func (o *overlay) Toggle() {
	if o.term == nil {
		return
	}
	o.visible = !o.visible
}

func (o *overlay) Visible() bool { return o.visible }

// Render redraws the whole overlay from scratch: tinyterm has no ANSI
// erase-display support, so the framebuffer is cleared directly before
// writing the new frame.
func (o *overlay) Render(s *kernel.Scheduler) {
	if o.term == nil {
		return
	}

	w, h := o.fb.Size()
	o.fb.FillRectangle(0, 0, w, h, overlayBG)

	o.term.Printf(ansiGreen+"spos %s"+ansiReset+"\r\n", buildinfo.Short())
	o.term.Printf("strategy: %s\r\n", s.GetStrategy())
	o.term.Println("")

	for pid := kernel.ProcessID(0); pid < kernel.MaxProcesses; pid++ {
		slot := s.Slot(pid)
		if slot.State() == kernel.Unused {
			continue
		}
		marker := byte(' ')
		if pid == s.CurrentPID() {
			marker = '*'
		}
		o.term.Printf("%c pid=%-2d pri=%-3d %s\r\n", marker, pid, slot.Priority(), slot.State())
	}

	o.term.Display()
	_ = o.fb.Present()
}
