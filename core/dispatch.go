package core

// Input precedence: the dialog host always outranks the active tab. Both the
// key router and the footer hints read this table, so the two can never
// disagree about which scope is live.

const ScopeDialog = "dialog"

type dispatchEntry struct {
	name  string
	guard func(m *Model) bool
	scope func(m *Model) string
}

func dispatchPrecedence() []dispatchEntry {
	return []dispatchEntry{
		{
			name:  "dialog",
			guard: func(m *Model) bool { return m.rt.Dialogs.IsOpen() },
			scope: func(m *Model) string { return ScopeDialog },
		},
		{
			name:  "tab",
			guard: func(m *Model) bool { return true },
			scope: func(m *Model) string { return m.tabs[m.active].Scope() },
		},
	}
}

// currentScope returns the scope of the highest-precedence active layer.
func (m *Model) currentScope() string {
	for _, e := range dispatchPrecedence() {
		if e.guard(m) {
			return e.scope(m)
		}
	}
	return "*"
}
