package dialogs

import "github.com/rs/zerolog"

// Manager owns the single active-dialog slot. At most one dialog is open
// process-wide; the slot is mutated only by Open and Close, always on the UI
// goroutine. The manager is constructed once at application start and passed
// to whichever component needs modal interaction.
type Manager struct {
	active *activeDialog
	gen    uint64
	log    zerolog.Logger
}

type activeDialog struct {
	dlg    Dialog
	data   any
	result chan any
}

func NewManager() *Manager {
	return &Manager{log: zerolog.Nop()}
}

// SetLogger attaches a logger for open/close events.
func (m *Manager) SetLogger(log zerolog.Logger) { m.log = log }

// Open registers dlg plus its payload as the active dialog and returns a
// channel that receives exactly one value: the result a later Close is called
// with. The dialog is not validated; the caller guarantees it is renderable.
//
// Opening while another dialog is active supersedes it: the superseded
// dialog's channel receives nil before the slot is replaced, so no caller is
// left waiting forever.
func (m *Manager) Open(dlg Dialog, data any) <-chan any {
	if m.active != nil {
		m.log.Debug().Str("dialog", m.active.dlg.Title()).Msg("dialog superseded")
		m.active.result <- nil
	}
	m.active = &activeDialog{dlg: dlg, data: data, result: make(chan any, 1)}
	m.gen++
	m.log.Debug().Str("dialog", dlg.Title()).Msg("dialog opened")
	return m.active.result
}

// Close delivers result on the active dialog's pending channel and clears the
// slot. No-op when nothing is active.
func (m *Manager) Close(result any) {
	if m.active == nil {
		return
	}
	m.log.Debug().Str("dialog", m.active.dlg.Title()).Msg("dialog closed")
	m.active.result <- result
	m.active = nil
}

// Active returns the open dialog and its payload.
func (m *Manager) Active() (Dialog, any, bool) {
	if m.active == nil {
		return nil, nil, false
	}
	return m.active.dlg, m.active.data, true
}

// IsOpen reports whether a dialog occupies the slot.
func (m *Manager) IsOpen() bool { return m.active != nil }

// Generation increments on every Open; the host uses it to detect activation
// of a new dialog.
func (m *Manager) Generation() uint64 { return m.gen }

// replace writes back the updated dialog value after the host ran Update.
func (m *Manager) replace(dlg Dialog) {
	if m.active != nil {
		m.active.dlg = dlg
	}
}
