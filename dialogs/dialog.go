// Package dialogs implements modal dialogs: the single-slot manager that owns
// "the currently open dialog", the host that renders it with a focus trap,
// and the console's concrete dialogs.
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the contract every modal implements. The host drives Update/View
// and runs the focus trap over the FocusCount/FocusIndex/SetFocus surface; a
// dialog with zero focusables opts out of both trap and auto-focus.
type Dialog interface {
	// Init receives the payload the dialog was opened with. Runs once, at
	// activation.
	Init(data any) tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	// View renders the card interior at the given width.
	View(width int) string
	Title() string

	FocusCount() int
	FocusIndex() int
	SetFocus(i int) tea.Cmd
}
