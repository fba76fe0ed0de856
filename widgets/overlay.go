package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CardBounds is the screen-cell rectangle a composited card occupies. The
// dialog host hit-tests pointer clicks against it to tell card from backdrop.
type CardBounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the screen cell (x, y) falls inside the card.
func (b CardBounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// OverlayCenter composites card centered over base and returns the card's
// cell bounds. Both strings are treated as line-based grids of the given
// size; ANSI sequences in either are preserved.
func OverlayCenter(base, card string, width, height int) (string, CardBounds) {
	if width <= 0 || height <= 0 {
		return "", CardBounds{}
	}
	cw := lipgloss.Width(card)
	ch := lipgloss.Height(card)
	if cw > width {
		cw = width
	}
	if ch > height {
		ch = height
	}
	bounds := CardBounds{X: (width - cw) / 2, Y: (height - ch) / 2, Width: cw, Height: ch}
	return OverlayAt(base, card, bounds.X, bounds.Y, width, height), bounds
}

// OverlayAt composites overlay on top of base at cell position (x, y).
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		seg := ansi.Truncate(padRight(line, overlayWidth), width-x, "")
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(seg), "")
		baseLines[row] = padRight(left+seg+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s to width cells, appending an ellipsis if cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
