// Package app assembles the console: key bindings, tab list and the root
// model built from a runtime.
package app

import (
	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/tabs"
)

// Keymap declares the global bindings, then registers the per-scope footer
// hints on top. The dispatch precedence means dialog-scope hints replace the
// tab hints while a dialog is open.
func Keymap() *core.KeyRegistry {
	r := core.NewKeyRegistry([]core.KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"tab:*"}},
		{Keys: []string{"tab"}, Action: "next-tab", Description: "next tab", Scopes: []string{"tab:*"}},
		{Keys: []string{"shift+tab"}, Action: "prev-tab", Description: "prev tab", Scopes: []string{"tab:*"}},
	})
	for _, hint := range []core.KeyBinding{
		{Keys: []string{"n"}, Description: "new", Scopes: []string{"tab:topology"}},
		{Keys: []string{"e"}, Description: "metadata", Scopes: []string{"tab:topology"}},
		{Keys: []string{"g"}, Description: "groups", Scopes: []string{"tab:topology"}},
		{Keys: []string{"d"}, Description: "remove", Scopes: []string{"tab:topology"}},

		{Keys: []string{"space"}, Description: "check", Scopes: []string{"tab:approvals", "tab:notifications"}},
		{Keys: []string{"a"}, Description: "check all", Scopes: []string{"tab:approvals", "tab:notifications"}},
		{Keys: []string{"y"}, Description: "approve", Scopes: []string{"tab:approvals"}},
		{Keys: []string{"r"}, Description: "reject", Scopes: []string{"tab:approvals"}},
		{Keys: []string{"m"}, Description: "mark read", Scopes: []string{"tab:notifications"}},

		{Keys: []string{"n"}, Description: "next page", Scopes: []string{"tab:audit"}},
		{Keys: []string{"p"}, Description: "prev page", Scopes: []string{"tab:audit"}},
		{Keys: []string{"enter"}, Description: "detail", Scopes: []string{"tab:audit"}},

		{Keys: []string{"space"}, Description: "toggle", Scopes: []string{"tab:settings"}},

		{Keys: []string{"esc"}, Description: "close", Scopes: []string{core.ScopeDialog}},
		{Keys: []string{"tab"}, Description: "next field", Scopes: []string{core.ScopeDialog}},
	} {
		r.Register(hint)
	}
	return r
}

// Wire builds the root model with the standard tab order.
func Wire(rt *core.Runtime) *core.Model {
	return core.NewModel(rt, Keymap(), []core.Tab{
		tabs.NewTopology(rt),
		tabs.NewApprovals(rt),
		tabs.NewAudit(rt),
		tabs.NewNotifications(rt),
		tabs.NewSettings(rt),
	})
}
