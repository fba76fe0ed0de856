package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestIsActionScoped(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"tab:*"}},
		{Keys: []string{"y"}, Action: "approve", Scopes: []string{"tab:approvals"}},
		{Keys: []string{"ctrl+c"}, Action: "quit"},
	})

	if !r.IsAction(runeKey("q"), "quit", "tab:topology") {
		t.Fatalf("tab:* should match any tab scope")
	}
	if r.IsAction(runeKey("q"), "quit", ScopeDialog) {
		t.Fatalf("tab:* must not match the dialog scope")
	}
	if !r.IsAction(runeKey("y"), "approve", "tab:approvals") {
		t.Fatalf("exact scope should match")
	}
	if r.IsAction(runeKey("y"), "approve", "tab:audit") {
		t.Fatalf("exact scope must not leak into other tabs")
	}
	if !r.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, "quit", ScopeDialog) {
		t.Fatalf("empty scope list should match everywhere")
	}
}

func TestBindingsForScopeFiltersFooterHints(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"esc"}, Description: "close", Scopes: []string{ScopeDialog}},
		{Keys: []string{"n"}, Description: "new", Scopes: []string{"tab:topology"}},
		{Keys: []string{"tab"}, Description: "next tab", Scopes: []string{"tab:*"}},
	})

	dialog := r.BindingsForScope(ScopeDialog)
	if len(dialog) != 1 || dialog[0].Description != "close" {
		t.Fatalf("dialog scope should only show dialog hints, got %#v", dialog)
	}

	topo := r.BindingsForScope("tab:topology")
	if len(topo) != 2 {
		t.Fatalf("tab scope should show tab-specific plus wildcard hints, got %d", len(topo))
	}
}
