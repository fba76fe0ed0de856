package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/nav"
)

// Tab is one top-level console surface.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Tab, tea.Cmd)
	View(width, height int) string
	// Snapshot returns the tab's active route chain for the breadcrumb bar.
	Snapshot() *nav.Snapshot
}
