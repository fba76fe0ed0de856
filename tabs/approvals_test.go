package tabs

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/access"
	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/internal/config"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
)

// newTestRuntime builds a runtime with no datastore attached. Tests drive
// tabs through their messages and stop short of commands that hit the
// repositories.
func newTestRuntime(caps ...string) *core.Runtime {
	mgr := dialogs.NewManager()
	return &core.Runtime{
		Cfg:     config.Config{UI: config.UIConfig{Actor: "tester", TimeFormat: time.Kitchen}},
		Dialogs: mgr,
		Host:    dialogs.NewHost(mgr),
		Crumbs:  nav.NewBuilder(),
		Caps:    access.NewSet(caps...),
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testApprovals() []repository.Approval {
	return []repository.Approval{
		{ID: "ap-1", Title: "Scale cluster", Requester: "ada", Resource: "cluster/a", State: repository.ApprovalPending},
		{ID: "ap-2", Title: "Open port", Requester: "bob", Resource: "net/b", State: repository.ApprovalPending},
		{ID: "ap-3", Title: "Delete bucket", Requester: "cam", Resource: "bucket/c", State: repository.ApprovalPending},
	}
}

func TestApprovalsSelectionFlow(t *testing.T) {
	a := NewApprovals(newTestRuntime("approvals.write"))
	a.Update(approvalsLoadedMsg{rows: testApprovals()})

	a.Update(key(" "))
	if !a.checked.Selected("ap-1") || a.checked.Count() != 1 {
		t.Fatalf("space should check the cursor row, got count=%d", a.checked.Count())
	}

	a.Update(key("j"))
	a.Update(key(" "))
	if a.checked.Count() != 2 {
		t.Fatalf("expected 2 checked, got %d", a.checked.Count())
	}
	if !a.checked.SomeSelected() || a.checked.AllSelected() {
		t.Fatalf("two of three checked should be the indeterminate state")
	}

	a.Update(key("a"))
	if !a.checked.AllSelected() {
		t.Fatalf("toggle-all from partial should select every row")
	}
	a.Update(key("a"))
	if a.checked.Count() != 0 {
		t.Fatalf("toggle-all from full should clear, got %d", a.checked.Count())
	}
}

func TestApprovalsDecideRequiresCapability(t *testing.T) {
	rt := newTestRuntime() // no approvals.write
	a := NewApprovals(rt)
	a.Update(approvalsLoadedMsg{rows: testApprovals()})

	_, cmd := a.Update(key("y"))
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("expected error status, got %#v", msg)
	}
	if rt.Dialogs.IsOpen() {
		t.Fatalf("no dialog should open without the write capability")
	}
}

func TestApprovalsConfirmThenDecide(t *testing.T) {
	rt := newTestRuntime("approvals.write")
	a := NewApprovals(rt)
	a.Update(approvalsLoadedMsg{rows: testApprovals()})
	a.Update(key(" "))
	a.Update(key("j"))
	a.Update(key(" "))

	_, cmd := a.Update(key("y"))
	if !rt.Dialogs.IsOpen() {
		t.Fatalf("expected confirm dialog to open")
	}
	dlg, _, _ := rt.Dialogs.Active()
	if dlg.Title() != "Approve Requests" {
		t.Fatalf("unexpected dialog title %q", dlg.Title())
	}

	rt.Dialogs.Close(true)
	out, ok := cmd().(decideConfirmMsg)
	if !ok {
		t.Fatalf("expected decideConfirmMsg, got %T", out)
	}
	if out.state != repository.ApprovalApproved || len(out.ids) != 2 {
		t.Fatalf("decision should carry the checked ids, got %#v", out)
	}
	if out.result != true {
		t.Fatalf("confirmed close should deliver true")
	}
}

func TestApprovalsDismissedConfirmDoesNothing(t *testing.T) {
	rt := newTestRuntime("approvals.write")
	a := NewApprovals(rt)
	a.Update(approvalsLoadedMsg{rows: testApprovals()})

	_, cmd := a.Update(key("r"))
	rt.Dialogs.Close(nil) // esc / backdrop
	out := cmd().(decideConfirmMsg)
	_, followup := a.Update(out)
	if followup != nil {
		t.Fatalf("dismissed confirm must not trigger a decision")
	}
}

func TestApprovalsLoadErrorDegradesToEmpty(t *testing.T) {
	a := NewApprovals(newTestRuntime())
	_, cmd := a.Update(approvalsLoadedMsg{err: errors.New("datastore down")})
	if len(a.rows) != 0 {
		t.Fatalf("load failure should leave an empty queue")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || !msg.IsErr {
		t.Fatalf("load failure should surface an error status")
	}
}

func TestApprovalsCursorResetAfterReload(t *testing.T) {
	a := NewApprovals(newTestRuntime())
	a.Update(approvalsLoadedMsg{rows: testApprovals()})
	a.Update(key("j"))
	a.Update(key("j"))

	a.Update(approvalsLoadedMsg{rows: testApprovals()[:1]})
	if a.cursor != 0 {
		t.Fatalf("cursor past the new row count should reset, got %d", a.cursor)
	}
}
