package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/access"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/nav"
)

// stubTab records the messages routed to it.
type stubTab struct {
	id       string
	received []tea.Msg
}

func (s *stubTab) ID() string               { return s.id }
func (s *stubTab) Title() string            { return s.id }
func (s *stubTab) Scope() string            { return "tab:" + s.id }
func (s *stubTab) Init() tea.Cmd            { return nil }
func (s *stubTab) View(w, h int) string     { return s.id }
func (s *stubTab) Snapshot() *nav.Snapshot {
	return &nav.Snapshot{Segments: []string{s.id}, Crumb: &nav.Descriptor{Label: s.id}}
}

func (s *stubTab) Update(msg tea.Msg) (Tab, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func newTestModel() (*Model, []*stubTab, *Runtime) {
	mgr := dialogs.NewManager()
	rt := &Runtime{
		Dialogs: mgr,
		Host:    dialogs.NewHost(mgr),
		Crumbs:  nav.NewBuilder(),
		Caps:    access.NewSet(),
	}
	stubs := []*stubTab{{id: "alpha"}, {id: "beta"}, {id: "gamma"}}
	keys := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"tab:*"}},
		{Keys: []string{"tab"}, Action: "next-tab", Scopes: []string{"tab:*"}},
		{Keys: []string{"shift+tab"}, Action: "prev-tab", Scopes: []string{"tab:*"}},
	})
	m := NewModel(rt, keys, []Tab{stubs[0], stubs[1], stubs[2]})
	return m, stubs, rt
}

func TestModelTabSwitching(t *testing.T) {
	m, _, _ := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab().ID() != "beta" {
		t.Fatalf("tab should advance, got %s", m.ActiveTab().ID())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveTab().ID() != "alpha" {
		t.Fatalf("shift+tab should go back, got %s", m.ActiveTab().ID())
	}

	m.Update(runeKey("3"))
	if m.ActiveTab().ID() != "gamma" {
		t.Fatalf("digit should jump to the tab, got %s", m.ActiveTab().ID())
	}
}

func TestModelSwitchRebuildsBreadcrumbs(t *testing.T) {
	m, _, rt := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	trail := rt.Crumbs.Trail()
	if len(trail) != 2 {
		t.Fatalf("expected root + tab crumbs, got %d", len(trail))
	}
	if trail[1].Label != "beta" {
		t.Fatalf("leaf crumb should name the active tab, got %q", trail[1].Label)
	}
}

func TestModelCapsChangeBroadcastsToAllTabs(t *testing.T) {
	m, stubs, _ := newTestModel()

	m.Update(CapsChangedMsg{})
	for _, s := range stubs {
		found := false
		for _, msg := range s.received {
			if _, ok := msg.(CapsChangedMsg); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("tab %s never saw the capability change", s.id)
		}
	}
}

func TestModelDialogOutranksTabKeys(t *testing.T) {
	m, stubs, rt := newTestModel()
	rt.Dialogs.Open(dialogs.NewConfirm(rt.Dialogs, "Confirm", "sure?"), nil)
	m.rt.Host.Sync() // activate

	if got := m.currentScope(); got != ScopeDialog {
		t.Fatalf("open dialog should own the scope, got %q", got)
	}

	before := len(stubs[0].received)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab().ID() != "alpha" {
		t.Fatalf("tab switching must be inert while a dialog is open")
	}
	if len(stubs[0].received) != before {
		t.Fatalf("keys must not reach the tab while a dialog is open")
	}
}

func TestModelStatusLineUpdates(t *testing.T) {
	m, _, _ := newTestModel()
	m.Update(StatusMsg{Text: "saved", IsErr: false})
	if m.status != "saved" || m.statusErr {
		t.Fatalf("status line should track the last StatusMsg")
	}
}

func TestModelMouseTranslatedToContentCoords(t *testing.T) {
	m, stubs, _ := newTestModel()
	m.Update(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	var got *tea.MouseMsg
	for _, msg := range stubs[0].received {
		if mm, ok := msg.(tea.MouseMsg); ok {
			got = &mm
		}
	}
	if got == nil {
		t.Fatalf("mouse event never reached the active tab")
	}
	if got.Y != 7-headerRows {
		t.Fatalf("mouse Y should be content-local, got %d", got.Y)
	}
}
