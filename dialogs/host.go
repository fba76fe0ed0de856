package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

// focusFirstMsg carries the deferred focus shift scheduled at activation. The
// generation stamp drops shifts that arrive after the dialog they were meant
// for has already closed.
type focusFirstMsg struct{ gen uint64 }

// Host renders whatever dialog the manager holds, centered over the base
// view, and enforces modal interaction discipline: focus trap on tab /
// shift+tab, esc and backdrop click dismiss with a nil result.
type Host struct {
	mgr    *Manager
	seen   uint64
	bounds widgets.CardBounds
}

func NewHost(mgr *Manager) *Host {
	return &Host{mgr: mgr}
}

// Sync detects a newly activated dialog, runs its Init with the open payload
// and schedules the focus shift to its first focusable element. The shift is
// a command, so it lands after the current render pass. Call once per Update.
func (h *Host) Sync() tea.Cmd {
	if h.mgr.Generation() == h.seen {
		return nil
	}
	h.seen = h.mgr.Generation()
	dlg, data, ok := h.mgr.Active()
	if !ok {
		return nil
	}
	gen := h.seen
	return tea.Batch(
		dlg.Init(data),
		func() tea.Msg { return focusFirstMsg{gen: gen} },
	)
}

// Update handles one message while a dialog is active. The second return
// reports whether the host consumed the message; unconsumed messages still
// get forwarded to the dialog (data loads and the like), but the surrounding
// model keeps seeing them too.
func (h *Host) Update(msg tea.Msg) (tea.Cmd, bool) {
	dlg, _, ok := h.mgr.Active()
	if !ok {
		return nil, false
	}
	switch msg := msg.(type) {
	case focusFirstMsg:
		if msg.gen != h.seen || dlg.FocusCount() == 0 {
			return nil, true
		}
		return dlg.SetFocus(0), true
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			h.mgr.Close(nil)
			return nil, true
		case tea.KeyTab:
			return h.cycleFocus(dlg, 1), true
		case tea.KeyShiftTab:
			return h.cycleFocus(dlg, -1), true
		}
		return h.forward(dlg, msg), true
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!h.bounds.Contains(msg.X, msg.Y) {
			h.mgr.Close(nil)
			return nil, true
		}
		// Clicks inside the card never reach the backdrop; forward with
		// card-local coordinates.
		msg.X -= h.bounds.X
		msg.Y -= h.bounds.Y
		return h.forward(dlg, msg), true
	}
	return h.forward(dlg, msg), false
}

// cycleFocus wraps focus at the first/last focusable boundary instead of
// letting it escape the card. Zero focusables makes this a no-op.
func (h *Host) cycleFocus(dlg Dialog, dir int) tea.Cmd {
	n := dlg.FocusCount()
	if n == 0 {
		return nil
	}
	return dlg.SetFocus(((dlg.FocusIndex()+dir)%n + n) % n)
}

func (h *Host) forward(dlg Dialog, msg tea.Msg) tea.Cmd {
	next, cmd := dlg.Update(msg)
	h.mgr.replace(next)
	return cmd
}

// View composites the active dialog's card over base and records the card
// bounds for backdrop hit-testing. With no active dialog base passes through.
func (h *Host) View(base string, width, height int) string {
	dlg, _, ok := h.mgr.Active()
	if !ok {
		return base
	}
	cardWidth := width - 8
	if cardWidth > 64 {
		cardWidth = 64
	}
	if cardWidth < 20 {
		cardWidth = width
	}
	interior := theme.Title.Render(dlg.Title()) + "\n\n" + dlg.View(cardWidth-6)
	out, bounds := widgets.OverlayCenter(base, theme.Card.Width(cardWidth).Render(interior), width, height)
	h.bounds = bounds
	return out
}

// Bounds exposes the last rendered card rectangle.
func (h *Host) Bounds() widgets.CardBounds { return h.bounds }
