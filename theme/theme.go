// Package theme holds the console palette and shared styles.
package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	ColorText    lipgloss.Color = "#cdd6f4"
	ColorMuted   lipgloss.Color = "#a6adc8"
	ColorBorder  lipgloss.Color = "#585b70"
	ColorSurface lipgloss.Color = "#313244"
	ColorAccent  lipgloss.Color = "#89b4fa"
	ColorFocus   lipgloss.Color = "#b4befe"
	ColorSuccess lipgloss.Color = "#a6e3a1"
	ColorError   lipgloss.Color = "#f38ba8"
	ColorWarning lipgloss.Color = "#f9e2af"
	ColorTabOff  lipgloss.Color = "#7f849c"
)

var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	Muted     = lipgloss.NewStyle().Foreground(ColorMuted)
	Error     = lipgloss.NewStyle().Foreground(ColorError)
	Success   = lipgloss.NewStyle().Foreground(ColorSuccess)
	CursorRow = lipgloss.NewStyle().Foreground(ColorText).Background(ColorSurface)
	Header    = lipgloss.NewStyle().Bold(true).Foreground(ColorMuted)
	StatusBar = lipgloss.NewStyle().Foreground(ColorText).Background(ColorSurface).Padding(0, 1)
	Footer    = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2)
)
