package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nor-os/nimbus-console/theme"
)

// Confirm is a yes/no dialog. Close result is true on confirm, false on
// explicit cancel, nil when dismissed via esc/backdrop.
type Confirm struct {
	mgr     *Manager
	title   string
	message string
	focus   int // 0 cancel, 1 confirm
}

func NewConfirm(mgr *Manager, title, message string) *Confirm {
	return &Confirm{mgr: mgr, title: title, message: message}
}

func (c *Confirm) Title() string { return c.title }

// Init accepts an optional string payload overriding the message.
func (c *Confirm) Init(data any) tea.Cmd {
	if s, ok := data.(string); ok && s != "" {
		c.message = s
	}
	return nil
}

func (c *Confirm) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch key.String() {
	case "left", "h":
		c.focus = 0
	case "right", "l":
		c.focus = 1
	case "y":
		c.mgr.Close(true)
	case "n":
		c.mgr.Close(false)
	case "enter":
		c.mgr.Close(c.focus == 1)
	}
	return c, nil
}

func (c *Confirm) FocusCount() int { return 2 }
func (c *Confirm) FocusIndex() int { return c.focus }
func (c *Confirm) SetFocus(i int) tea.Cmd {
	c.focus = i
	return nil
}

func (c *Confirm) View(width int) string {
	cancel := "  Cancel  "
	confirm := "  Confirm  "
	on := lipgloss.NewStyle().Foreground(theme.ColorText).Background(theme.ColorAccent).Bold(true)
	off := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	if c.focus == 1 {
		confirm = on.Render(confirm)
		cancel = off.Render(cancel)
	} else {
		cancel = on.Render(cancel)
		confirm = off.Render(confirm)
	}
	body := lipgloss.NewStyle().Width(width).Render(c.message)
	return body + "\n\n" + cancel + "   " + confirm
}
