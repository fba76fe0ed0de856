package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/selection"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

type (
	notificationsLoadedMsg struct {
		rows []repository.Notification
		err  error
	}
	markedReadMsg struct {
		err error
	}
)

// Notifications lists governance notifications with bulk mark-read.
type Notifications struct {
	rt      *core.Runtime
	rows    []repository.Notification
	cursor  int
	checked *selection.Model[repository.Notification]
	loading bool
}

func NewNotifications(rt *core.Runtime) *Notifications {
	n := &Notifications{rt: rt, loading: true}
	n.checked = selection.New(
		func() []repository.Notification { return n.rows },
		func(r repository.Notification) string { return r.ID },
	)
	return n
}

func (n *Notifications) ID() string    { return "notifications" }
func (n *Notifications) Title() string { return "Notifications" }
func (n *Notifications) Scope() string { return "tab:notifications" }

func (n *Notifications) Init() tea.Cmd {
	rt := n.rt
	return func() tea.Msg {
		rows, err := rt.Notifications.List(context.Background())
		return notificationsLoadedMsg{rows: rows, err: err}
	}
}

func (n *Notifications) Snapshot() *nav.Snapshot {
	return &nav.Snapshot{
		Segments: []string{"notifications"},
		Crumb:    &nav.Descriptor{Label: "Notifications"},
	}
}

func (n *Notifications) Update(msg tea.Msg) (core.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		n.loading = false
		if msg.err != nil {
			n.rt.Log.Error().Err(msg.err).Msg("list notifications")
			n.rows = nil
			return n, status("failed to load notifications", true)
		}
		n.rows = msg.rows
		if n.cursor >= len(n.rows) {
			n.cursor = 0
		}
		return n, nil
	case markedReadMsg:
		if msg.err != nil {
			n.rt.Log.Error().Err(msg.err).Msg("mark notifications read")
			return n, status("mark-read failed", true)
		}
		n.checked.Clear()
		return n, n.Init()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if n.cursor > 0 {
				n.cursor--
			}
		case "down", "j":
			if n.cursor < len(n.rows)-1 {
				n.cursor++
			}
		case " ":
			if n.cursor < len(n.rows) {
				n.checked.Toggle(n.rows[n.cursor].ID)
			}
		case "a":
			n.checked.ToggleAll()
		case "m":
			return n, n.markRead()
		}
	}
	return n, nil
}

// markRead targets the checked rows, or the cursor row when nothing is
// checked.
func (n *Notifications) markRead() tea.Cmd {
	ids := n.checked.IDs()
	if len(ids) == 0 && n.cursor < len(n.rows) {
		ids = []string{n.rows[n.cursor].ID}
	}
	if len(ids) == 0 {
		return nil
	}
	rt := n.rt
	return func() tea.Msg {
		return markedReadMsg{err: rt.Notifications.MarkRead(context.Background(), ids)}
	}
}

func (n *Notifications) View(width, height int) string {
	if n.loading {
		return theme.Muted.Render("Loading notifications…")
	}
	if len(n.rows) == 0 {
		return theme.Muted.Render("No notifications.")
	}
	headerCheck := widgets.CheckOff
	if n.checked.AllSelected() {
		headerCheck = widgets.CheckOn
	} else if n.checked.SomeSelected() {
		headerCheck = widgets.CheckPartial
	}
	rows := make([][]string, 0, len(n.rows))
	checks := make([]bool, 0, len(n.rows))
	unread := 0
	for _, r := range n.rows {
		subject := r.Subject
		if !r.Read {
			subject = "● " + subject
			unread++
		}
		rows = append(rows, []string{subject, r.CreatedAt.Format(n.rt.Cfg.UI.TimeFormat)})
		checks = append(checks, n.checked.Selected(r.ID))
	}
	table := widgets.CheckTable{
		Headers:     []string{"Subject", "Received"},
		Rows:        rows,
		Checked:     checks,
		HeaderCheck: headerCheck,
		Cursor:      n.cursor,
		CursorStyle: theme.CursorRow,
		HeaderStyle: theme.Header,
	}
	summary := fmt.Sprintf("%d unread of %d", unread, len(n.rows))
	return table.Render(width, height-1) + "\n" + theme.Muted.Render(summary)
}
