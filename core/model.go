package core

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

// headerRows is the tab bar plus the breadcrumb row.
const headerRows = 2

// Model is the root Bubble Tea model: tab list, breadcrumb bar, status line
// and the dialog host layered on top.
type Model struct {
	rt     *Runtime
	keys   *KeyRegistry
	tabs   []Tab
	active int

	width  int
	height int

	status    string
	statusErr bool
}

func NewModel(rt *Runtime, keys *KeyRegistry, tabs []Tab) *Model {
	if len(tabs) == 0 {
		panic("model needs at least one tab")
	}
	return &Model{rt: rt, keys: keys, tabs: tabs}
}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	for _, t := range m.tabs {
		cmds = append(cmds, t.Init())
	}
	cmds = append(cmds, func() tea.Msg { return NavigateMsg{} })
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case NavigateMsg:
		m.rt.Crumbs.Navigate(m.snapshot())
		return m, nil
	case CrumbLabelMsg:
		m.rt.Crumbs.SetLabel(msg.Key, msg.Label)
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case CapsChangedMsg:
		// Every tab re-evaluates its guards, not just the active one.
		var cmds []tea.Cmd
		for i, t := range m.tabs {
			next, cmd := t.Update(msg)
			m.tabs[i] = next
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd

	// Dialog host outranks everything per the dispatch table.
	hostCmd, handled := m.rt.Host.Update(msg)
	cmds = append(cmds, hostCmd)
	if handled {
		cmds = append(cmds, m.rt.Host.Sync())
		return m, tea.Batch(cmds...)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		scope := m.currentScope()
		switch {
		case m.keys.IsAction(key, "quit", scope):
			return m, tea.Quit
		case m.keys.IsAction(key, "next-tab", scope):
			return m, m.switchTab((m.active + 1) % len(m.tabs))
		case m.keys.IsAction(key, "prev-tab", scope):
			return m, m.switchTab((m.active - 1 + len(m.tabs)) % len(m.tabs))
		}
		if n := tabDigit(key); n >= 0 && n < len(m.tabs) {
			return m, m.switchTab(n)
		}
	}

	// Tab content starts below the tab bar and breadcrumb row; hand tabs
	// content-local mouse coordinates.
	if mm, ok := msg.(tea.MouseMsg); ok {
		mm.Y -= headerRows
		msg = mm
	}
	tab, cmd := m.tabs[m.active].Update(msg)
	m.tabs[m.active] = tab
	cmds = append(cmds, cmd, m.rt.Host.Sync())
	return m, tea.Batch(cmds...)
}

// switchTab activates tab i, refreshes it and rebuilds the breadcrumb trail.
func (m *Model) switchTab(i int) tea.Cmd {
	if i == m.active {
		return nil
	}
	m.active = i
	m.rt.Crumbs.Navigate(m.snapshot())
	return m.tabs[i].Init()
}

// snapshot prefixes the active tab's route chain with the console root.
func (m *Model) snapshot() *nav.Snapshot {
	return &nav.Snapshot{
		Crumb: &nav.Descriptor{Label: "Nimbus"},
		Child: m.tabs[m.active].Snapshot(),
	}
}

func tabDigit(key tea.KeyMsg) int {
	s := key.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading…"
	}

	crumbs := m.rt.Crumbs.Trail()
	labels := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		labels = append(labels, c.Label)
	}
	crumbBar := widgets.Crumbbar{
		Labels:    labels,
		LeafStyle: theme.Title,
		DimStyle:  theme.Muted,
	}.Render(m.width)

	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		crumbBar,
		m.tabs[m.active].View(m.width, contentHeight),
		m.statusLine(),
		m.footer(),
	)
	return m.rt.Host.View(base, m.width, m.height)
}

func (m *Model) tabBar() string {
	on := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorAccent)
	off := lipgloss.NewStyle().Foreground(theme.ColorTabOff)
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf(" %d:%s ", i+1, t.Title())
		if i == m.active {
			parts = append(parts, on.Render(label))
		} else {
			parts = append(parts, off.Render(label))
		}
	}
	return widgets.Truncate(strings.Join(parts, ""), m.width)
}

func (m *Model) statusLine() string {
	text := m.status
	if m.statusErr {
		text = theme.Error.Render(text)
	}
	return theme.StatusBar.Width(m.width).Render(widgets.Truncate(text, m.width-2))
}

// footer renders the key hints for the active scope, dialog scope first per
// the dispatch table.
func (m *Model) footer() string {
	bindings := m.keys.BindingsForScope(m.currentScope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, b.Keys[0]+" "+b.Description)
	}
	return theme.Footer.Width(m.width).Render(widgets.Truncate(strings.Join(parts, " · "), m.width-2))
}

// ActiveTab exposes the current tab, for tests.
func (m *Model) ActiveTab() Tab { return m.tabs[m.active] }
