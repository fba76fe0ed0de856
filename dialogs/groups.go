package dialogs

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/selection"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

// Group is an access group a resource can be assigned to.
type Group struct {
	ID          string
	Name        string
	Description string
}

// GroupLister is the collaborator service behind the assignment dialog.
type GroupLister interface {
	ListGroups(ctx context.Context) ([]Group, error)
	GroupsForResource(ctx context.Context, resourceID string) ([]string, error)
}

type groupsLoadedMsg struct {
	groups  []Group
	current []string
	err     error
}

// GroupAssign lets the user pick groups for a resource. It is opened with the
// resource id as payload; the resource's current memberships load alongside
// the group list and arrive pre-checked, so confirming an untouched dialog
// re-assigns exactly what was already there. A failing service degrades to an
// empty list with loading off; the error is never surfaced as a crash, and
// enter after a failed load dismisses with a nil result instead of an empty
// assignment.
type GroupAssign struct {
	mgr        *Manager
	svc        GroupLister
	resourceID string
	input      textinput.Model
	groups     []Group
	visible    []Group
	cursor     int
	checked    *selection.Model[Group]
	loading    bool
	failed     bool
	focus      int // 0 filter input, 1 list
}

func NewGroupAssign(mgr *Manager, svc GroupLister) *GroupAssign {
	inp := textinput.New()
	inp.Placeholder = "Filter groups"
	inp.Prompt = "/ "
	g := &GroupAssign{mgr: mgr, svc: svc, input: inp}
	g.checked = selection.New(
		func() []Group { return g.visible },
		func(gr Group) string { return gr.ID },
	)
	return g
}

func (g *GroupAssign) Title() string { return "Assign Groups" }

func (g *GroupAssign) Init(data any) tea.Cmd {
	g.loading = true
	if id, ok := data.(string); ok {
		g.resourceID = id
	}
	svc := g.svc
	id := g.resourceID
	return func() tea.Msg {
		groups, err := svc.ListGroups(context.Background())
		if err != nil {
			return groupsLoadedMsg{err: err}
		}
		current, err := svc.GroupsForResource(context.Background(), id)
		return groupsLoadedMsg{groups: groups, current: current, err: err}
	}
}

func (g *GroupAssign) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch msg := msg.(type) {
	case groupsLoadedMsg:
		g.loading = false
		if msg.err != nil {
			g.failed = true
			g.groups = nil
		} else {
			g.groups = msg.groups
			for _, id := range msg.current {
				g.checked.Toggle(id)
			}
		}
		g.refilter()
		return g, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if g.focus == 1 && g.cursor > 0 {
				g.cursor--
				return g, nil
			}
		case "down", "j":
			if g.focus == 1 && g.cursor < len(g.visible)-1 {
				g.cursor++
				return g, nil
			}
		case " ":
			if g.focus == 1 && g.cursor < len(g.visible) {
				g.checked.Toggle(g.visible[g.cursor].ID)
				return g, nil
			}
		case "enter":
			// Without the loaded membership baseline an empty checked set
			// would wipe assignments the user never saw.
			if g.failed {
				g.mgr.Close(nil)
			} else {
				g.mgr.Close(g.checked.IDs())
			}
			return g, nil
		}
		if g.focus == 0 {
			var cmd tea.Cmd
			g.input, cmd = g.input.Update(msg)
			g.refilter()
			return g, cmd
		}
	}
	return g, nil
}

func (g *GroupAssign) FocusCount() int { return 2 }
func (g *GroupAssign) FocusIndex() int { return g.focus }
func (g *GroupAssign) SetFocus(i int) tea.Cmd {
	g.focus = i
	if i == 0 {
		return g.input.Focus()
	}
	g.input.Blur()
	return nil
}

// refilter ranks groups against the filter query by edit distance, exact
// substring matches first.
func (g *GroupAssign) refilter() {
	query := strings.ToLower(strings.TrimSpace(g.input.Value()))
	if query == "" {
		g.visible = g.groups
	} else {
		type ranked struct {
			group Group
			dist  int
		}
		out := make([]ranked, 0, len(g.groups))
		for _, gr := range g.groups {
			name := strings.ToLower(gr.Name)
			dist := levenshtein.ComputeDistance(query, name)
			if strings.Contains(name, query) {
				dist = 0
			}
			if dist <= len(name) {
				out = append(out, ranked{group: gr, dist: dist})
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].dist < out[j].dist })
		g.visible = make([]Group, 0, len(out))
		for _, r := range out {
			g.visible = append(g.visible, r.group)
		}
	}
	if g.cursor >= len(g.visible) {
		g.cursor = 0
	}
}

func (g *GroupAssign) View(width int) string {
	if g.loading {
		return theme.Muted.Render("Loading groups…")
	}
	var b strings.Builder
	b.WriteString(g.input.View())
	b.WriteString("\n\n")
	if len(g.visible) == 0 {
		b.WriteString(theme.Muted.Render("No groups available"))
		return b.String()
	}
	for i, gr := range g.visible {
		check := widgets.CheckOff
		if g.checked.Selected(gr.ID) {
			check = widgets.CheckOn
		}
		line := check + " " + gr.Name
		if gr.Description != "" {
			line += theme.Muted.Render("  " + gr.Description)
		}
		line = widgets.Truncate(line, width)
		if i == g.cursor && g.focus == 1 {
			line = theme.CursorRow.Render(line)
		}
		b.WriteString(line)
		if i < len(g.visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SelectedIDs exposes the checked set, mainly for tests.
func (g *GroupAssign) SelectedIDs() []string { return g.checked.IDs() }
