package dialogs

import (
	"encoding/json"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nor-os/nimbus-console/theme"
)

// MetadataEditor is a free-text JSON editor for compartment metadata.
// Malformed JSON is surfaced as a locally displayed parse-error string; it is
// never thrown further. Save closes with the edited document.
type MetadataEditor struct {
	mgr      *Manager
	area     textarea.Model
	parseErr string
}

func NewMetadataEditor(mgr *Manager) *MetadataEditor {
	ta := textarea.New()
	ta.Placeholder = "{}"
	ta.SetHeight(8)
	return &MetadataEditor{mgr: mgr, area: ta}
}

func (e *MetadataEditor) Title() string { return "Edit Metadata" }

// Init seeds the editor with the current metadata document.
func (e *MetadataEditor) Init(data any) tea.Cmd {
	if s, ok := data.(string); ok {
		e.area.SetValue(s)
	}
	return nil
}

func (e *MetadataEditor) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		doc := e.area.Value()
		var parsed map[string]any
		if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
			e.parseErr = err.Error()
			return e, nil
		}
		e.parseErr = ""
		e.mgr.Close(doc)
		return e, nil
	}
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd
}

func (e *MetadataEditor) FocusCount() int { return 1 }
func (e *MetadataEditor) FocusIndex() int { return 0 }
func (e *MetadataEditor) SetFocus(int) tea.Cmd {
	return e.area.Focus()
}

func (e *MetadataEditor) View(width int) string {
	e.area.SetWidth(width)
	out := e.area.View() + "\n" + theme.Muted.Render("ctrl+s save · esc cancel")
	if e.parseErr != "" {
		out += "\n" + theme.Error.Render("parse error: "+e.parseErr)
	}
	return out
}

// ParseError exposes the locally displayed error, mainly for tests.
func (e *MetadataEditor) ParseError() string { return e.parseErr }
