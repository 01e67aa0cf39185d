// Package modal implements the dialog open/close lifecycle. A dialog
// moves closed -> open -> closing -> closed; the closing phase exists so
// renderers can play a fade-out before the dialog fully disappears.
package modal

import (
	"time"

	"github.com/pulsepad/pulsepad/internal/scene"
)

// CloseDelay is how long a dialog stays in the closing phase before it
// fully resets. Callers schedule FinishClose this long after BeginClose.
const CloseDelay = 260 * time.Millisecond

// Phase is the dialog lifecycle state.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Dialog drives the phase transitions for one dialog element and keeps
// the element's open/closing classes in step with the phase. Timers are
// the caller's job: BeginClose reports that a FinishClose is due after
// CloseDelay, and FinishClose applies unconditionally when it arrives.
// Stale timers from an earlier close are not cancelled, so reopening
// during the closing window still ends closed once the timer lands.
type Dialog struct {
	phase   Phase
	element *scene.Element
}

// New returns a closed dialog bound to el. A nil element is tolerated;
// the phase machine still runs, only the class bookkeeping goes nowhere.
func New(el *scene.Element) *Dialog {
	return &Dialog{phase: PhaseClosed, element: el}
}

// Phase returns the current lifecycle phase.
func (d *Dialog) Phase() Phase {
	return d.phase
}

// Visible reports whether the dialog occupies the screen, which covers
// both the open and closing phases.
func (d *Dialog) Visible() bool {
	return d.phase != PhaseClosed
}

// Open shows the dialog immediately and reports whether anything changed.
// Opening an already-open dialog is a no-op. Opening during the closing
// window works, but a pending FinishClose will still land.
func (d *Dialog) Open() bool {
	if d.phase == PhaseOpen {
		return false
	}
	d.phase = PhaseOpen
	d.element.Remove(scene.ClassClosing)
	d.element.Add(scene.ClassOpen)
	return true
}

// BeginClose starts the fade-out and reports whether the caller should
// schedule FinishClose after CloseDelay. A closed dialog reports false.
// Triggering again while already closing schedules another timer; every
// one of them lands on FinishClose, which is safe to repeat.
func (d *Dialog) BeginClose() bool {
	if d.phase == PhaseClosed {
		return false
	}
	d.phase = PhaseClosing
	d.element.Remove(scene.ClassOpen)
	d.element.Add(scene.ClassClosing)
	return true
}

// FinishClose fully hides and resets the dialog. It applies regardless of
// the current phase so that a stale close timer always settles the dialog
// closed, matching the unguarded fixed-delay close.
func (d *Dialog) FinishClose() {
	d.phase = PhaseClosed
	d.element.Remove(scene.ClassOpen)
	d.element.Remove(scene.ClassClosing)
}
