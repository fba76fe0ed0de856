package tabs

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/theme"
)

// toggleable lists the capabilities the settings tab may flip at runtime.
// Everything else in the set is display-only.
var toggleable = []string{"topology.write", "approvals.write"}

// Settings shows the effective configuration and lets the operator flip
// write capabilities on and off, which re-evaluates every capability guard
// in the console.
type Settings struct {
	rt     *core.Runtime
	cursor int
}

func NewSettings(rt *core.Runtime) *Settings {
	return &Settings{rt: rt}
}

func (s *Settings) ID() string    { return "settings" }
func (s *Settings) Title() string { return "Settings" }
func (s *Settings) Scope() string { return "tab:settings" }

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Snapshot() *nav.Snapshot {
	return &nav.Snapshot{
		Segments: []string{"settings"},
		Crumb:    &nav.Descriptor{Label: "Settings"},
	}
}

func (s *Settings) Update(msg tea.Msg) (core.Tab, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(toggleable)-1 {
			s.cursor++
		}
	case " ", "enter":
		return s, s.toggle(toggleable[s.cursor])
	}
	return s, nil
}

// toggle flips a capability and broadcasts the change so guards recheck.
func (s *Settings) toggle(capability string) tea.Cmd {
	if s.rt.Caps.Allowed(capability) {
		s.rt.Caps.Revoke(capability)
	} else {
		s.rt.Caps.Grant(capability)
	}
	s.rt.AuditEvent("capability-toggle", capability, fmt.Sprintf("allowed=%v", s.rt.Caps.Allowed(capability)))
	return func() tea.Msg { return core.CapsChangedMsg{} }
}

func (s *Settings) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.ColorMuted).Width(18)
	var b strings.Builder

	b.WriteString(theme.Title.Render("Configuration"))
	b.WriteString("\n")
	for _, row := range [][2]string{
		{"Actor", s.rt.Cfg.UI.Actor},
		{"Database", s.rt.Cfg.Database.Path},
		{"Log file", s.rt.Cfg.Log.Path},
		{"Log level", s.rt.Cfg.Log.Level},
		{"Time format", s.rt.Cfg.UI.TimeFormat},
	} {
		b.WriteString(label.Render(row[0]) + row[1] + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Capabilities"))
	b.WriteString("\n")
	for i, capName := range toggleable {
		state := theme.Error.Render("denied ")
		if s.rt.Caps.Allowed(capName) {
			state = theme.Success.Render("granted")
		}
		line := fmt.Sprintf("%s  %s", state, capName)
		if i == s.cursor {
			line = theme.CursorRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	for _, capName := range s.fixedCaps() {
		b.WriteString(theme.Success.Render("granted") + "  " + theme.Muted.Render(capName) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("space/enter toggle"))
	return b.String()
}

// fixedCaps returns the granted capabilities that are not runtime-toggleable,
// sorted for a stable render.
func (s *Settings) fixedCaps() []string {
	skip := map[string]bool{}
	for _, c := range toggleable {
		skip[c] = true
	}
	var out []string
	for c := range s.rt.Caps {
		if !skip[c] {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
