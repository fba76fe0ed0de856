package tabs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/internal/database/repository"
)

func testCompartments() []repository.Compartment {
	return []repository.Compartment{
		{ID: "cmp-1", Name: "Production", X: 0, Y: 0, Width: 300, Height: 200, Metadata: "{}"},
		{ID: "cmp-2", Name: "Staging", X: 400, Y: 300, Width: 300, Height: 200, Metadata: "{}"},
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func TestTopologyClickSelectsCompartment(t *testing.T) {
	tp := NewTopology(newTestRuntime("topology.write"))
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})

	// Cell (1, 3) maps to unit (10, 60): inside cmp-1's body.
	tp.Update(press(1, 3))
	if tp.selected != "cmp-1" {
		t.Fatalf("body click should select, got %q", tp.selected)
	}
}

func TestTopologyBackdropClickDeselects(t *testing.T) {
	tp := NewTopology(newTestRuntime("topology.write"))
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})
	tp.Update(press(1, 3))

	// Unit (900, 40) misses both compartments.
	tp.Update(press(90, 2))
	if tp.selected != "" {
		t.Fatalf("click on empty canvas should deselect, got %q", tp.selected)
	}
}

func TestTopologyHeaderDragMovesWithoutDeadZoneJitter(t *testing.T) {
	tp := NewTopology(newTestRuntime("topology.write"))
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})

	// Header of cmp-1: unit y < 30, so cell (1, 0).
	tp.Update(press(1, 0))
	o := tp.overlays[0]
	if !o.Dragging() {
		t.Fatalf("header press should start a move gesture")
	}
	if tp.selected != "cmp-1" {
		t.Fatalf("header press should also select")
	}

	// One cell right is 10 units, past the 3-unit dead zone.
	tp.Update(motion(2, 0))
	if !o.Moved() {
		t.Fatalf("motion past the dead zone should mark the gesture as moved")
	}
	if o.Compartment.Rect.X != 10 {
		t.Fatalf("expected rect to follow the drag, got x=%d", o.Compartment.Rect.X)
	}
}

func TestTopologyCloseButtonNeedsWriteCapability(t *testing.T) {
	rt := newTestRuntime() // read-only
	tp := NewTopology(rt)
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})

	// Close button of cmp-1: unit x in [270, 300), y < 30 → cell (27, 0).
	_, cmd := tp.Update(press(27, 0))
	if rt.Dialogs.IsOpen() {
		t.Fatalf("remove confirm must not open without topology.write")
	}
	if msg, ok := collectStatus(cmd); !ok || !msg.IsErr {
		t.Fatalf("expected error status, got %#v", msg)
	}
}

func TestTopologyCloseButtonOpensConfirm(t *testing.T) {
	rt := newTestRuntime("topology.write")
	tp := NewTopology(rt)
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})

	_, cmd := tp.Update(press(27, 0))
	if !rt.Dialogs.IsOpen() {
		t.Fatalf("close button should open the remove confirm")
	}
	dlg, _, _ := rt.Dialogs.Active()
	if dlg.Title() != "Remove Compartment" {
		t.Fatalf("unexpected dialog title %q", dlg.Title())
	}

	rt.Dialogs.Close(false) // cancelled
	out := runBatch(cmd)
	found := false
	for _, msg := range out {
		if dec, ok := msg.(removeDecisionMsg); ok {
			found = true
			if dec.id != "cmp-1" {
				t.Fatalf("decision should target cmp-1, got %q", dec.id)
			}
			if _, followup := tp.Update(dec); followup != nil {
				t.Fatalf("cancelled confirm must not delete")
			}
		}
	}
	if !found {
		t.Fatalf("expected a removeDecisionMsg from the press command")
	}
}

func TestTopologyCapabilityFlipReevaluatesGuard(t *testing.T) {
	rt := newTestRuntime("topology.write")
	tp := NewTopology(rt)
	tp.Update(compartmentsLoadedMsg{comps: testCompartments()})
	if !tp.editable.Mounted() {
		t.Fatalf("guard should start mounted")
	}

	rt.Caps.Revoke("topology.write")
	tp.Update(core.CapsChangedMsg{})
	if tp.editable.Mounted() {
		t.Fatalf("guard should unmount after the capability is revoked")
	}
}

// runBatch executes cmd, flattening tea.Batch output into messages.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runBatch(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func collectStatus(cmd tea.Cmd) (core.StatusMsg, bool) {
	for _, msg := range runBatch(cmd) {
		if s, ok := msg.(core.StatusMsg); ok {
			return s, true
		}
	}
	return core.StatusMsg{}, false
}
