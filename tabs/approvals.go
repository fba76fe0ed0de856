package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/access"
	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/selection"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

type (
	approvalsLoadedMsg struct {
		rows []repository.Approval
		err  error
	}
	decideConfirmMsg struct {
		state  string
		ids    []string
		result any
	}
	decisionDoneMsg struct {
		n     int64
		state string
		err   error
	}
)

// Approvals is the pending-approval queue with checkbox bulk-selection.
// Approve/reject requires the approvals.write capability.
type Approvals struct {
	rt      *core.Runtime
	rows    []repository.Approval
	cursor  int
	checked *selection.Model[repository.Approval]
	write   *access.Guard
	loading bool
}

func NewApprovals(rt *core.Runtime) *Approvals {
	a := &Approvals{
		rt:      rt,
		write:   access.NewGuard(rt.Caps, "approvals.write"),
		loading: true,
	}
	a.checked = selection.New(
		func() []repository.Approval { return a.rows },
		func(r repository.Approval) string { return r.ID },
	)
	return a
}

func (a *Approvals) ID() string    { return "approvals" }
func (a *Approvals) Title() string { return "Approvals" }
func (a *Approvals) Scope() string { return "tab:approvals" }

func (a *Approvals) Init() tea.Cmd {
	rt := a.rt
	return func() tea.Msg {
		rows, err := rt.Approvals.ListPending(context.Background())
		return approvalsLoadedMsg{rows: rows, err: err}
	}
}

func (a *Approvals) Snapshot() *nav.Snapshot {
	return &nav.Snapshot{
		Segments: []string{"approvals"},
		Crumb:    &nav.Descriptor{Label: "Approvals"},
	}
}

func (a *Approvals) Update(msg tea.Msg) (core.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case approvalsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			// Degrade to an empty queue; the backend owns retries.
			a.rt.Log.Error().Err(msg.err).Msg("list approvals")
			a.rows = nil
			return a, status("failed to load approvals", true)
		}
		a.rows = msg.rows
		if a.cursor >= len(a.rows) {
			a.cursor = 0
		}
		return a, nil
	case core.CapsChangedMsg:
		a.write.Recheck()
		return a, nil
	case decideConfirmMsg:
		if confirmed, _ := msg.result.(bool); confirmed {
			return a, a.decide(msg.ids, msg.state)
		}
		return a, nil
	case decisionDoneMsg:
		if msg.err != nil {
			a.rt.Log.Error().Err(msg.err).Msg("decide approvals")
			return a, status("decision failed", true)
		}
		a.checked.Clear()
		note := fmt.Sprintf("%d request(s) %s", msg.n, msg.state)
		return a, tea.Batch(status(note, false), a.Init())
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, nil
}

func (a *Approvals) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
	case " ":
		if a.cursor < len(a.rows) {
			a.checked.Toggle(a.rows[a.cursor].ID)
		}
	case "a":
		a.checked.ToggleAll()
	case "y":
		return a.confirmDecision(repository.ApprovalApproved)
	case "r":
		return a.confirmDecision(repository.ApprovalRejected)
	}
	return nil
}

// confirmDecision targets the checked rows, or the cursor row when nothing is
// checked.
func (a *Approvals) confirmDecision(state string) tea.Cmd {
	if !a.write.Mounted() {
		return status("approvals.write capability required", true)
	}
	ids := a.checked.IDs()
	if len(ids) == 0 && a.cursor < len(a.rows) {
		ids = []string{a.rows[a.cursor].ID}
	}
	if len(ids) == 0 {
		return nil
	}
	verb := "Approve"
	if state == repository.ApprovalRejected {
		verb = "Reject"
	}
	ch := a.rt.Dialogs.Open(
		dialogs.NewConfirm(a.rt.Dialogs, verb+" Requests", ""),
		fmt.Sprintf("%s %d pending request(s)?", verb, len(ids)),
	)
	return func() tea.Msg { return decideConfirmMsg{state: state, ids: ids, result: <-ch} }
}

func (a *Approvals) decide(ids []string, state string) tea.Cmd {
	rt := a.rt
	return func() tea.Msg {
		n, err := rt.Approvals.Decide(context.Background(), ids, state)
		if err == nil {
			for _, id := range ids {
				rt.AuditEvent(state, "approval/"+id, "")
			}
		}
		return decisionDoneMsg{n: n, state: state, err: err}
	}
}

func (a *Approvals) View(width, height int) string {
	if a.loading {
		return theme.Muted.Render("Loading approvals…")
	}
	if len(a.rows) == 0 {
		return theme.Muted.Render("No pending approvals.")
	}
	headerCheck := widgets.CheckOff
	if a.checked.AllSelected() {
		headerCheck = widgets.CheckOn
	} else if a.checked.SomeSelected() {
		headerCheck = widgets.CheckPartial
	}
	rows := make([][]string, 0, len(a.rows))
	checks := make([]bool, 0, len(a.rows))
	for _, r := range a.rows {
		rows = append(rows, []string{r.Title, r.Requester, r.Resource, r.CreatedAt.Format(a.rt.Cfg.UI.TimeFormat)})
		checks = append(checks, a.checked.Selected(r.ID))
	}
	table := widgets.CheckTable{
		Headers:     []string{"Request", "Requester", "Resource", "Created"},
		Rows:        rows,
		Checked:     checks,
		HeaderCheck: headerCheck,
		Cursor:      a.cursor,
		CursorStyle: theme.CursorRow,
		HeaderStyle: theme.Header,
	}
	out := table.Render(width, height-1)
	summary := fmt.Sprintf("%d pending · %d checked", len(a.rows), a.checked.Count())
	if !a.write.Mounted() {
		summary += theme.Error.Render("  read-only")
	}
	return out + "\n" + theme.Muted.Render(summary)
}
