package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/theme"
)

// Detail is a read-only dialog with zero focusable elements, used for audit
// event details. Focus trap and auto-focus are no-ops for it.
type Detail struct {
	mgr   *Manager
	title string
	body  string
}

func NewDetail(mgr *Manager, title string) *Detail {
	return &Detail{mgr: mgr, title: title}
}

func (d *Detail) Title() string { return d.title }

func (d *Detail) Init(data any) tea.Cmd {
	if s, ok := data.(string); ok {
		d.body = s
	}
	return nil
}

func (d *Detail) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		d.mgr.Close(nil)
	}
	return d, nil
}

func (d *Detail) FocusCount() int     { return 0 }
func (d *Detail) FocusIndex() int     { return 0 }
func (d *Detail) SetFocus(int) tea.Cmd { return nil }

func (d *Detail) View(width int) string {
	return d.body + "\n\n" + theme.Muted.Render("enter/esc close")
}
