package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

const auditPageSize = 15

type auditLoadedMsg struct {
	events []repository.AuditEvent
	total  int
	err    error
}

// Audit is the audit event viewer: newest first, paged, with a read-only
// detail dialog.
type Audit struct {
	rt      *core.Runtime
	events  []repository.AuditEvent
	total   int
	page    int
	cursor  int
	loading bool
}

func NewAudit(rt *core.Runtime) *Audit {
	return &Audit{rt: rt, loading: true}
}

func (a *Audit) ID() string    { return "audit" }
func (a *Audit) Title() string { return "Audit" }
func (a *Audit) Scope() string { return "tab:audit" }

func (a *Audit) Init() tea.Cmd {
	return a.load()
}

func (a *Audit) load() tea.Cmd {
	rt := a.rt
	page := a.page
	return func() tea.Msg {
		events, err := rt.Audit.ListRecent(context.Background(), auditPageSize, page*auditPageSize)
		if err != nil {
			return auditLoadedMsg{err: err}
		}
		total, err := rt.Audit.Count(context.Background())
		return auditLoadedMsg{events: events, total: total, err: err}
	}
}

func (a *Audit) Snapshot() *nav.Snapshot {
	return &nav.Snapshot{
		Segments: []string{"audit"},
		Crumb:    &nav.Descriptor{Label: "Audit Log"},
	}
}

func (a *Audit) Update(msg tea.Msg) (core.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case auditLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.rt.Log.Error().Err(msg.err).Msg("list audit events")
			a.events = nil
			return a, status("failed to load audit log", true)
		}
		a.events = msg.events
		a.total = msg.total
		if a.cursor >= len(a.events) {
			a.cursor = 0
		}
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		case "down", "j":
			if a.cursor < len(a.events)-1 {
				a.cursor++
			}
		case "n", "right":
			if (a.page+1)*auditPageSize < a.total {
				a.page++
				a.loading = true
				return a, a.load()
			}
		case "p", "left":
			if a.page > 0 {
				a.page--
				a.loading = true
				return a, a.load()
			}
		case "enter":
			return a, a.openDetail()
		}
	}
	return a, nil
}

func (a *Audit) openDetail() tea.Cmd {
	if a.cursor >= len(a.events) {
		return nil
	}
	e := a.events[a.cursor]
	body := fmt.Sprintf("Actor     %s\nAction    %s\nResource  %s\nWhen      %s",
		e.Actor, e.Action, e.Resource, e.OccurredAt.Format(a.rt.Cfg.UI.TimeFormat))
	if e.Detail != "" {
		body += "\nDetail    " + e.Detail
	}
	ch := a.rt.Dialogs.Open(dialogs.NewDetail(a.rt.Dialogs, "Audit Event"), body)
	return func() tea.Msg {
		<-ch // read-only dialog, result is always nil
		return nil
	}
}

func (a *Audit) View(width, height int) string {
	if a.loading {
		return theme.Muted.Render("Loading audit log…")
	}
	if len(a.events) == 0 {
		return theme.Muted.Render("Audit log is empty.")
	}
	rows := make([][]string, 0, len(a.events))
	for _, e := range a.events {
		rows = append(rows, []string{
			e.OccurredAt.Format(a.rt.Cfg.UI.TimeFormat), e.Actor, e.Action, e.Resource,
		})
	}
	table := widgets.CheckTable{
		Headers:     []string{"When", "Actor", "Action", "Resource"},
		Rows:        rows,
		HeaderCheck: "   ",
		Cursor:      a.cursor,
		CursorStyle: theme.CursorRow,
		HeaderStyle: theme.Header,
	}
	pages := (a.total + auditPageSize - 1) / auditPageSize
	footer := fmt.Sprintf("page %d/%d · %d events", a.page+1, pages, a.total)
	return table.Render(width, height-1) + "\n" + theme.Muted.Render(footer)
}
