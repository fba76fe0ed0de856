package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nor-os/nimbus-console/access"
	"github.com/nor-os/nimbus-console/canvas"
	"github.com/nor-os/nimbus-console/core"
	"github.com/nor-os/nimbus-console/dialogs"
	"github.com/nor-os/nimbus-console/internal/database/repository"
	"github.com/nor-os/nimbus-console/nav"
	"github.com/nor-os/nimbus-console/theme"
	"github.com/nor-os/nimbus-console/widgets"
)

// Canvas units per terminal cell. Geometry is stored in the backend's pixel
// space; the tab maps cells to units on input and back on render.
const (
	unitsPerCol = 10
	unitsPerRow = 20
)

type (
	compartmentsLoadedMsg struct {
		comps []repository.Compartment
		err   error
	}
	removeDecisionMsg struct {
		id     string
		result any
	}
	metadataResultMsg struct {
		id     string
		result any
	}
	groupsResultMsg struct {
		id     string
		result any
	}
	topologySavedMsg struct {
		err  error
		note string
	}
)

// Topology is the compartment canvas: drag to move, drag the corner to
// resize, click to select. Geometry changes persist to the datastore on
// release.
type Topology struct {
	rt       *core.Runtime
	overlays []*canvas.Overlay
	pending  []any // events emitted by overlays during this Update
	selected string
	editable *access.Guard
	loading  bool
}

func NewTopology(rt *core.Runtime) *Topology {
	return &Topology{
		rt:       rt,
		editable: access.NewGuard(rt.Caps, "topology.write"),
		loading:  true,
	}
}

func (t *Topology) ID() string    { return "topology" }
func (t *Topology) Title() string { return "Topology" }
func (t *Topology) Scope() string { return "tab:topology" }

func (t *Topology) Init() tea.Cmd {
	rt := t.rt
	return func() tea.Msg {
		comps, err := rt.Compartments.List(context.Background())
		return compartmentsLoadedMsg{comps: comps, err: err}
	}
}

func (t *Topology) Snapshot() *nav.Snapshot {
	root := &nav.Snapshot{
		Segments: []string{"topology"},
		Crumb:    &nav.Descriptor{Label: "Topology"},
	}
	if t.selected == "" {
		return root
	}
	root.Child = &nav.Snapshot{
		Segments: []string{t.selected},
		Crumb:    &nav.Descriptor{Label: t.selected},
		Params:   map[string]string{"compartmentID": t.selected},
	}
	return root
}

func (t *Topology) Update(msg tea.Msg) (core.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case compartmentsLoadedMsg:
		t.loading = false
		if msg.err != nil {
			t.rt.Log.Error().Err(msg.err).Msg("list compartments")
			t.overlays = nil
			return t, status("failed to load topology", true)
		}
		t.rebuild(msg.comps)
		return t, nil
	case core.CapsChangedMsg:
		t.editable.Recheck()
		return t, nil
	case removeDecisionMsg:
		if confirmed, _ := msg.result.(bool); confirmed {
			return t, t.deleteCompartment(msg.id)
		}
		return t, nil
	case metadataResultMsg:
		doc, ok := msg.result.(string)
		if !ok {
			return t, nil // dismissed
		}
		return t, t.saveMetadata(msg.id, doc)
	case groupsResultMsg:
		ids, ok := msg.result.([]string)
		if !ok {
			return t, nil
		}
		return t, t.assignGroups(msg.id, ids)
	case topologySavedMsg:
		if msg.err != nil {
			t.rt.Log.Error().Err(msg.err).Msg("persist topology change")
			return t, status("save failed", true)
		}
		return t, tea.Batch(status(msg.note, false), t.Init())
	case tea.MouseMsg:
		return t, t.handleMouse(msg)
	case tea.KeyMsg:
		return t, t.handleKey(msg)
	}
	return t, nil
}

func (t *Topology) rebuild(comps []repository.Compartment) {
	t.overlays = make([]*canvas.Overlay, 0, len(comps))
	for _, c := range comps {
		comp := canvas.Compartment{
			ID:       c.ID,
			Name:     c.Name,
			Rect:     canvas.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height},
			Metadata: c.Metadata,
		}
		t.overlays = append(t.overlays, canvas.NewOverlay(comp, func(ev any) {
			t.pending = append(t.pending, ev)
		}))
	}
}

func (t *Topology) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ux, uy := msg.X*unitsPerCol, msg.Y*unitsPerRow
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		hit := false
		for _, o := range t.overlays {
			if o.Press(ux, uy) {
				hit = true
				break
			}
		}
		if !hit && t.selected != "" {
			t.selected = ""
			return tea.Batch(t.drain(), navigate())
		}
	case tea.MouseActionMotion:
		for _, o := range t.overlays {
			if o.Dragging() {
				o.Motion(ux, uy)
			}
		}
	case tea.MouseActionRelease:
		for _, o := range t.overlays {
			if !o.Dragging() {
				continue
			}
			moved := o.Moved()
			rect := o.Compartment.Rect
			id := o.Compartment.ID
			o.Release()
			// A click that never left the dead zone is a select, not a
			// geometry change.
			if moved {
				return tea.Batch(t.drain(), t.saveGeometry(id, rect))
			}
		}
	}
	return t.drain()
}

// drain converts overlay events gathered during this Update into commands.
func (t *Topology) drain() tea.Cmd {
	events := t.pending
	t.pending = nil
	var cmds []tea.Cmd
	for _, ev := range events {
		switch ev := ev.(type) {
		case canvas.SelectEvent:
			t.selected = ev.ID
			name := t.nameOf(ev.ID)
			cmds = append(cmds, navigate(), crumbLabel("compartmentID", name))
		case canvas.RemoveEvent:
			cmds = append(cmds, t.confirmRemove(ev.ID))
		}
		// Move/Resize events already updated the overlay's rect; they
		// persist on release.
	}
	return tea.Batch(cmds...)
}

func (t *Topology) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n":
		if !t.editable.Mounted() {
			return status("topology.write capability required", true)
		}
		return t.createCompartment()
	case "e":
		o := t.selectedOverlay()
		if o == nil || !t.editable.Mounted() {
			return nil
		}
		ch := t.rt.Dialogs.Open(dialogs.NewMetadataEditor(t.rt.Dialogs), o.Compartment.Metadata)
		id := o.Compartment.ID
		return func() tea.Msg { return metadataResultMsg{id: id, result: <-ch} }
	case "g":
		o := t.selectedOverlay()
		if o == nil {
			return nil
		}
		id := o.Compartment.ID
		ch := t.rt.Dialogs.Open(dialogs.NewGroupAssign(t.rt.Dialogs, groupService{repo: t.rt.Groups}), id)
		return func() tea.Msg { return groupsResultMsg{id: id, result: <-ch} }
	case "d":
		if o := t.selectedOverlay(); o != nil && t.editable.Mounted() {
			return t.confirmRemove(o.Compartment.ID)
		}
	}
	return nil
}

func (t *Topology) confirmRemove(id string) tea.Cmd {
	if !t.editable.Mounted() {
		return status("topology.write capability required", true)
	}
	name := t.nameOf(id)
	ch := t.rt.Dialogs.Open(
		dialogs.NewConfirm(t.rt.Dialogs, "Remove Compartment", ""),
		fmt.Sprintf("Remove compartment %q? Contained resources are not deleted.", name),
	)
	return func() tea.Msg { return removeDecisionMsg{id: id, result: <-ch} }
}

func (t *Topology) createCompartment() tea.Cmd {
	rt := t.rt
	n := len(t.overlays) + 1
	return func() tea.Msg {
		c := repository.Compartment{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("Compartment %d", n),
			X:        40 + 30*n,
			Y:        40 + 30*n,
			Width:    300,
			Height:   200,
			Metadata: "{}",
		}
		if err := rt.Compartments.Upsert(context.Background(), c); err != nil {
			return topologySavedMsg{err: err}
		}
		rt.AuditEvent("create", "compartment/"+c.ID, c.Name)
		return topologySavedMsg{note: "compartment created"}
	}
}

func (t *Topology) deleteCompartment(id string) tea.Cmd {
	rt := t.rt
	name := t.nameOf(id)
	t.selected = ""
	return func() tea.Msg {
		if err := rt.Compartments.Delete(context.Background(), id); err != nil {
			return topologySavedMsg{err: err}
		}
		rt.AuditEvent("delete", "compartment/"+id, name)
		return topologySavedMsg{note: fmt.Sprintf("removed %s", name)}
	}
}

func (t *Topology) saveGeometry(id string, rect canvas.Rect) tea.Cmd {
	rt := t.rt
	return func() tea.Msg {
		err := rt.Compartments.SetGeometry(context.Background(), id, rect.X, rect.Y, rect.Width, rect.Height)
		if err != nil {
			return topologySavedMsg{err: err}
		}
		rt.AuditEvent("update-geometry", "compartment/"+id,
			fmt.Sprintf("%dx%d at (%d,%d)", rect.Width, rect.Height, rect.X, rect.Y))
		return topologySavedMsg{note: "geometry saved"}
	}
}

func (t *Topology) saveMetadata(id, doc string) tea.Cmd {
	rt := t.rt
	return func() tea.Msg {
		if err := rt.Compartments.SetMetadata(context.Background(), id, doc); err != nil {
			return topologySavedMsg{err: err}
		}
		rt.AuditEvent("update-metadata", "compartment/"+id, "")
		return topologySavedMsg{note: "metadata saved"}
	}
}

func (t *Topology) assignGroups(id string, groupIDs []string) tea.Cmd {
	rt := t.rt
	return func() tea.Msg {
		if err := rt.Groups.AssignResource(context.Background(), id, groupIDs); err != nil {
			return topologySavedMsg{err: err}
		}
		rt.AuditEvent("assign-groups", "compartment/"+id, fmt.Sprintf("%d group(s)", len(groupIDs)))
		return topologySavedMsg{note: "groups assigned"}
	}
}

func (t *Topology) selectedOverlay() *canvas.Overlay {
	for _, o := range t.overlays {
		if o.Compartment.ID == t.selected {
			return o
		}
	}
	return nil
}

func (t *Topology) nameOf(id string) string {
	for _, o := range t.overlays {
		if o.Compartment.ID == id {
			return o.Compartment.Name
		}
	}
	return id
}

func (t *Topology) View(width, height int) string {
	if t.loading {
		return theme.Muted.Render("Loading topology…")
	}
	if len(t.overlays) == 0 {
		return theme.Muted.Render("No compartments. Press n to create one.")
	}
	base := emptyCanvas(width, height)
	for _, o := range t.overlays {
		r := o.Compartment.Rect
		cw, ch := r.Width/unitsPerCol, r.Height/unitsPerRow
		if cw < 4 {
			cw = 4
		}
		if ch < 3 {
			ch = 3
		}
		pane := widgets.Pane{
			Title:   o.Compartment.Name,
			Content: theme.Muted.Render(o.Compartment.Metadata),
			Focused: o.Compartment.ID == t.selected,
			Accent:  theme.ColorAccent,
			Border:  theme.ColorBorder,
		}.Render(cw, ch)
		base = widgets.OverlayAt(base, pane, r.X/unitsPerCol, r.Y/unitsPerRow, width, height)
	}
	return base
}

func emptyCanvas(width, height int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += " "
	}
	out := line
	for i := 1; i < height; i++ {
		out += "\n" + line
	}
	return out
}

// groupService adapts the group repository to the dialog's lister contract.
type groupService struct {
	repo *repository.GroupRepo
}

func (s groupService) ListGroups(ctx context.Context) ([]dialogs.Group, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dialogs.Group, 0, len(rows))
	for _, g := range rows {
		out = append(out, dialogs.Group{ID: g.ID, Name: g.Name, Description: g.Description})
	}
	return out, nil
}

func (s groupService) GroupsForResource(ctx context.Context, resourceID string) ([]string, error) {
	return s.repo.GroupsForResource(ctx, resourceID)
}

// Shared command helpers.
func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return core.StatusMsg{Text: text, IsErr: isErr} }
}

func navigate() tea.Cmd {
	return func() tea.Msg { return core.NavigateMsg{} }
}

func crumbLabel(key, label string) tea.Cmd {
	return func() tea.Msg { return core.CrumbLabelMsg{Key: key, Label: label} }
}
