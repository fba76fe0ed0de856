package canvas

// Header and handle hit regions, in canvas units.
const (
	headerHeight = 30
	handleSize   = 24
	closeWidth   = 30
)

// Compartment is a labeled visual grouping container on the topology canvas.
type Compartment struct {
	ID       string
	Name     string
	Rect     Rect
	Metadata string
}

// Region classifies where inside a compartment a pointer press landed.
type Region int

const (
	RegionOutside Region = iota
	RegionHeader
	RegionClose
	RegionHandle
	RegionBody
)

// HitTest classifies (x, y) in canvas units against the compartment's rect.
// The close button occupies the right end of the header; the resize handle
// the bottom-right corner.
func (c Compartment) HitTest(x, y int) Region {
	r := c.Rect
	if x < r.X || x >= r.X+r.Width || y < r.Y || y >= r.Y+r.Height {
		return RegionOutside
	}
	if y < r.Y+headerHeight {
		if x >= r.X+r.Width-closeWidth {
			return RegionClose
		}
		return RegionHeader
	}
	if x >= r.X+r.Width-handleSize && y >= r.Y+r.Height-handleSize {
		return RegionHandle
	}
	return RegionBody
}

// Overlay routes pointer events for one compartment into gesture tracking and
// emitted events. Each overlay manages its own tracker; two overlays dragging
// at once are not coordinated (gestures are naturally exclusive per button).
type Overlay struct {
	Compartment Compartment
	tracker     Tracker
	emit        func(ev any)
}

func NewOverlay(c Compartment, emit func(ev any)) *Overlay {
	return &Overlay{Compartment: c, emit: emit}
}

// Press handles a pointer press at (x, y) in canvas units. A press on the
// body or header always emits SelectEvent synchronously, independent of
// whether a drag follows. Header presses begin a move gesture, handle presses
// a resize gesture, and the close button emits RemoveEvent.
//
// Returns false when the press landed outside the compartment.
func (o *Overlay) Press(x, y int) bool {
	switch o.Compartment.HitTest(x, y) {
	case RegionClose:
		o.emit(RemoveEvent{ID: o.Compartment.ID})
	case RegionHeader:
		o.emit(SelectEvent{ID: o.Compartment.ID})
		o.tracker.Press(GestureMove, o.Compartment.ID, x, y, o.Compartment.Rect)
	case RegionHandle:
		o.tracker.Press(GestureResize, o.Compartment.ID, x, y, o.Compartment.Rect)
	case RegionBody:
		o.emit(SelectEvent{ID: o.Compartment.ID})
	default:
		return false
	}
	return true
}

// Motion feeds a pointer move into the in-flight gesture, emitting Move or
// Resize once the dead zone is exceeded. The overlay's own rect tracks the
// emitted geometry so the render stays in step mid-drag.
func (o *Overlay) Motion(x, y int) {
	ev, ok := o.tracker.Motion(x, y)
	if !ok {
		return
	}
	switch ev := ev.(type) {
	case MoveEvent:
		o.Compartment.Rect.X = ev.X
		o.Compartment.Rect.Y = ev.Y
	case ResizeEvent:
		o.Compartment.Rect.Width = ev.Width
		o.Compartment.Rect.Height = ev.Height
	}
	o.emit(ev)
}

// Release ends the gesture and detaches its state.
func (o *Overlay) Release() {
	o.tracker.Release()
}

// Dragging reports whether this overlay has a gesture in flight.
func (o *Overlay) Dragging() bool { return o.tracker.Dragging() }

// Moved reports whether the in-flight gesture has left the dead zone.
func (o *Overlay) Moved() bool { return o.tracker.Moved() }
