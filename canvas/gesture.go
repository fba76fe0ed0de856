// Package canvas holds the topology canvas model: compartment geometry in
// abstract canvas units and the pointer gesture state machine that moves and
// resizes compartments.
package canvas

// Geometry floors and the click-vs-drag dead zone, in canvas units.
const (
	DeadZone  = 3
	MinWidth  = 200
	MinHeight = 150
)

// Rect is compartment geometry in canvas units.
type Rect struct {
	X, Y          int
	Width, Height int
}

// GestureKind selects which geometry a drag mutates.
type GestureKind int

const (
	GestureMove GestureKind = iota
	GestureResize
)

// Events emitted toward the hosting canvas.
type (
	SelectEvent struct{ ID string }
	RemoveEvent struct{ ID string }
	MoveEvent   struct {
		ID   string
		X, Y int
	}
	ResizeEvent struct {
		ID            string
		Width, Height int
	}
)

// Tracker is the per-gesture drag state machine: Idle until Press, Dragging
// until Release. State exists only for the duration of one press-to-release
// gesture and is discarded on Release.
type Tracker struct {
	active bool
	kind   GestureKind
	id     string
	startX int
	startY int
	orig   Rect
	moved  bool
}

// Press enters the Dragging state for the given compartment geometry.
func (t *Tracker) Press(kind GestureKind, id string, x, y int, orig Rect) {
	t.active = true
	t.kind = kind
	t.id = id
	t.startX = x
	t.startY = y
	t.orig = orig
	t.moved = false
}

// Motion reports the event for a pointer move at (x, y), if any. Nothing is
// emitted until the cumulative delta from the press point exceeds the dead
// zone in either axis; after that every motion emits. Resize deltas are
// clamped to the minimum geometry floor.
func (t *Tracker) Motion(x, y int) (any, bool) {
	if !t.active {
		return nil, false
	}
	dx := x - t.startX
	dy := y - t.startY
	if !t.moved {
		if abs(dx) <= DeadZone && abs(dy) <= DeadZone {
			return nil, false
		}
		t.moved = true
	}
	switch t.kind {
	case GestureResize:
		w := t.orig.Width + dx
		if w < MinWidth {
			w = MinWidth
		}
		h := t.orig.Height + dy
		if h < MinHeight {
			h = MinHeight
		}
		return ResizeEvent{ID: t.id, Width: w, Height: h}, true
	default:
		return MoveEvent{ID: t.id, X: t.orig.X + dx, Y: t.orig.Y + dy}, true
	}
}

// Release returns to Idle and discards the gesture state.
func (t *Tracker) Release() {
	*t = Tracker{}
}

// Dragging reports whether a gesture is in flight.
func (t *Tracker) Dragging() bool { return t.active }

// Moved reports whether the in-flight gesture has left the dead zone.
func (t *Tracker) Moved() bool { return t.active && t.moved }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
