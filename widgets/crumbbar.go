package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Crumbbar renders an ordered navigation trail, last element emphasized.
type Crumbbar struct {
	Labels    []string
	Separator string
	LeafStyle lipgloss.Style
	DimStyle  lipgloss.Style
}

func (c Crumbbar) Render(width int) string {
	if len(c.Labels) == 0 || width <= 0 {
		return ""
	}
	sep := c.Separator
	if sep == "" {
		sep = " › "
	}
	parts := make([]string, 0, len(c.Labels))
	for i, label := range c.Labels {
		if i == len(c.Labels)-1 {
			parts = append(parts, c.LeafStyle.Render(label))
		} else {
			parts = append(parts, c.DimStyle.Render(label))
		}
	}
	return Truncate(strings.Join(parts, c.DimStyle.Render(sep)), width)
}
