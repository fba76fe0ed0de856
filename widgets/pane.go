package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pane draws a bordered, titled content box. Focused panes get the accent
// border.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Accent  lipgloss.Color
	Border  lipgloss.Color
}

func (p Pane) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	borderColor := p.Border
	if p.Focused && p.Accent != "" {
		borderColor = p.Accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width - 2).
		Height(height - 2)

	title := ""
	if p.Title != "" {
		title = lipgloss.NewStyle().Bold(true).Render(Truncate(p.Title, width-4)) + "\n"
	}
	body := clampLines(p.Content, height-2-strings.Count(title, "\n"))
	return style.Render(title + body)
}

func clampLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	return strings.Join(lines, "\n")
}
