package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox glyphs for the selection column. The header shows the
// indeterminate glyph when some but not all rows are checked.
const (
	CheckOn      = "[x]"
	CheckOff     = "[ ]"
	CheckPartial = "[~]"
)

// CheckTable renders rows with a leading checkbox column and a cursor
// highlight. Checked reports per-row selection; HeaderCheck is one of the
// three glyphs above.
type CheckTable struct {
	Headers     []string
	Rows        [][]string
	Checked     []bool
	HeaderCheck string
	Cursor      int
	CursorStyle lipgloss.Style
	HeaderStyle lipgloss.Style
}

func (t CheckTable) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(t.Headers) == 0 {
		return ""
	}
	widths := t.columnWidths(width)
	var b strings.Builder

	head := make([]string, 0, len(t.Headers)+1)
	head = append(head, pad(t.HeaderCheck, 3))
	for i, h := range t.Headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(t.HeaderStyle.Render(Truncate(strings.Join(head, "  "), width)))

	for i, row := range t.Rows {
		if i+1 >= height {
			break
		}
		b.WriteString("\n")
		check := "   "
		if t.Checked != nil {
			check = CheckOff
			if i < len(t.Checked) && t.Checked[i] {
				check = CheckOn
			}
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, check)
		for j, cell := range row {
			if j < len(widths) {
				cells = append(cells, pad(cell, widths[j]))
			}
		}
		line := Truncate(strings.Join(cells, "  "), width)
		if i == t.Cursor {
			line = t.CursorStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

// columnWidths spreads the width left of the checkbox column evenly, giving
// the first column any remainder.
func (t CheckTable) columnWidths(width int) []int {
	n := len(t.Headers)
	avail := width - 3 - 2*n
	if avail < n {
		avail = n
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = avail / n
	}
	widths[0] += avail % n
	return widths
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return Truncate(s, width)
}
