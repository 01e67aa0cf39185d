package modal

import (
	"testing"

	"github.com/pulsepad/pulsepad/internal/scene"
)

func TestLifecycle(t *testing.T) {
	el := scene.NewElement(scene.ElementDialog)
	d := New(el)

	if d.Phase() != PhaseClosed {
		t.Fatalf("Phase() = %v, want closed", d.Phase())
	}
	if d.Visible() {
		t.Fatal("new dialog is visible")
	}

	if !d.Open() {
		t.Fatal("Open() = false, want true")
	}
	if d.Phase() != PhaseOpen || !d.Visible() {
		t.Fatalf("after Open: phase %v visible %v", d.Phase(), d.Visible())
	}
	if !el.Has(scene.ClassOpen) || el.Has(scene.ClassClosing) {
		t.Errorf("after Open: classes %q", el.ClassString())
	}

	if !d.BeginClose() {
		t.Fatal("BeginClose() = false, want true")
	}
	if d.Phase() != PhaseClosing || !d.Visible() {
		t.Fatalf("after BeginClose: phase %v visible %v", d.Phase(), d.Visible())
	}
	if el.Has(scene.ClassOpen) || !el.Has(scene.ClassClosing) {
		t.Errorf("after BeginClose: classes %q", el.ClassString())
	}

	d.FinishClose()
	if d.Phase() != PhaseClosed || d.Visible() {
		t.Fatalf("after FinishClose: phase %v visible %v", d.Phase(), d.Visible())
	}
	if got := el.ClassString(); got != "" {
		t.Errorf("after FinishClose: classes %q, want none", got)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	el := scene.NewElement(scene.ElementDialog)
	d := New(el)

	if !d.Open() {
		t.Fatal("first Open() = false, want true")
	}
	if d.Open() {
		t.Error("second Open() = true, want false")
	}
	if d.Phase() != PhaseOpen {
		t.Errorf("Phase() = %v, want open", d.Phase())
	}
	if got := el.ClassString(); got != scene.ClassOpen {
		t.Errorf("classes = %q, want %q", got, scene.ClassOpen)
	}
}

func TestBeginCloseFromClosedIsNoOp(t *testing.T) {
	d := New(scene.NewElement(scene.ElementDialog))
	if d.BeginClose() {
		t.Error("BeginClose() on closed dialog = true, want false")
	}
	if d.Phase() != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", d.Phase())
	}
}

func TestRepeatedCloseSettlesClosed(t *testing.T) {
	el := scene.NewElement(scene.ElementDialog)
	d := New(el)
	d.Open()

	// Each trigger would schedule its own timer; all of them land on
	// FinishClose and the dialog must end fully closed.
	pending := 0
	for i := 0; i < 3; i++ {
		if d.BeginClose() {
			pending++
		}
	}
	if pending != 3 {
		t.Fatalf("scheduled %d timers, want 3", pending)
	}
	for i := 0; i < pending; i++ {
		d.FinishClose()
	}
	if d.Phase() != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", d.Phase())
	}
	if got := el.ClassString(); got != "" {
		t.Errorf("classes = %q, want none", got)
	}
}

func TestStaleTimerClosesReopenedDialog(t *testing.T) {
	el := scene.NewElement(scene.ElementDialog)
	d := New(el)

	d.Open()
	d.BeginClose()
	// Reopen before the close timer lands.
	if !d.Open() {
		t.Fatal("Open() during closing = false, want true")
	}
	if d.Phase() != PhaseOpen {
		t.Fatalf("Phase() = %v, want open", d.Phase())
	}
	// The unguarded timer still fires and settles the dialog closed.
	d.FinishClose()
	if d.Phase() != PhaseClosed {
		t.Errorf("Phase() after stale timer = %v, want closed", d.Phase())
	}
}

func TestNilElementDialog(t *testing.T) {
	d := New(nil)
	if !d.Open() {
		t.Error("Open() = false, want true")
	}
	if !d.BeginClose() {
		t.Error("BeginClose() = false, want true")
	}
	d.FinishClose()
	if d.Phase() != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", d.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseClosed, "closed"},
		{PhaseOpen, "open"},
		{PhaseClosing, "closing"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}
