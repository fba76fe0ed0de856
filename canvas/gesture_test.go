package canvas

import "testing"

func TestMotionInsideDeadZoneEmitsNothing(t *testing.T) {
	var tr Tracker
	tr.Press(GestureMove, "c1", 100, 100, Rect{X: 10, Y: 20, Width: 300, Height: 200})

	if _, ok := tr.Motion(102, 102); ok {
		t.Fatalf("a (2,2) delta is below the dead zone and must not emit")
	}
	if tr.Moved() {
		t.Fatalf("gesture must not be marked moved inside the dead zone")
	}
}

func TestMotionBeyondDeadZoneEmitsMove(t *testing.T) {
	var tr Tracker
	tr.Press(GestureMove, "c1", 100, 100, Rect{X: 10, Y: 20, Width: 300, Height: 200})

	ev, ok := tr.Motion(105, 100)
	if !ok {
		t.Fatalf("a (5,0) delta exceeds the dead zone")
	}
	move, isMove := ev.(MoveEvent)
	if !isMove {
		t.Fatalf("expected MoveEvent, got %T", ev)
	}
	if move.X != 15 || move.Y != 20 {
		t.Fatalf("move must be origin plus delta, got (%d,%d)", move.X, move.Y)
	}
}

func TestEveryMotionEmitsAfterDeadZone(t *testing.T) {
	var tr Tracker
	tr.Press(GestureMove, "c1", 0, 0, Rect{X: 0, Y: 0, Width: 300, Height: 200})

	if _, ok := tr.Motion(5, 0); !ok {
		t.Fatalf("first motion past the dead zone must emit")
	}
	// Back inside the dead-zone radius: still emits once the flag is set.
	ev, ok := tr.Motion(1, 0)
	if !ok {
		t.Fatalf("subsequent motions emit regardless of delta")
	}
	if move := ev.(MoveEvent); move.X != 1 {
		t.Fatalf("got x=%d", move.X)
	}
}

func TestResizeClampsToFloor(t *testing.T) {
	var tr Tracker
	tr.Press(GestureResize, "c1", 0, 0, Rect{X: 0, Y: 0, Width: 300, Height: 200})

	ev, ok := tr.Motion(-150, -100) // requests 150x100
	if !ok {
		t.Fatalf("delta exceeds dead zone")
	}
	rs := ev.(ResizeEvent)
	if rs.Width != MinWidth {
		t.Fatalf("width must clamp to %d, got %d", MinWidth, rs.Width)
	}
	if rs.Height != MinHeight {
		t.Fatalf("height must clamp to %d, got %d", MinHeight, rs.Height)
	}
}

func TestReleaseReturnsToIdle(t *testing.T) {
	var tr Tracker
	tr.Press(GestureMove, "c1", 0, 0, Rect{})
	tr.Release()
	if tr.Dragging() {
		t.Fatalf("release must return to idle")
	}
	if _, ok := tr.Motion(50, 50); ok {
		t.Fatalf("idle tracker must ignore motion")
	}
}

func TestOverlayPressRouting(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 300, Height: 200}
	var events []any
	o := NewOverlay(Compartment{ID: "c1", Rect: rect}, func(ev any) { events = append(events, ev) })

	// Body press selects synchronously, no gesture.
	if !o.Press(150, 100) {
		t.Fatalf("press inside body must hit")
	}
	if len(events) != 1 {
		t.Fatalf("body press emits exactly one event, got %d", len(events))
	}
	if _, ok := events[0].(SelectEvent); !ok {
		t.Fatalf("expected SelectEvent, got %T", events[0])
	}
	if o.Dragging() {
		t.Fatalf("body press must not begin a gesture")
	}

	// Header press selects and begins a move gesture.
	events = nil
	if !o.Press(10, 10) {
		t.Fatalf("press on header must hit")
	}
	if _, ok := events[0].(SelectEvent); !ok || !o.Dragging() {
		t.Fatalf("header press selects and starts dragging")
	}
	o.Release()

	// Close button emits remove.
	events = nil
	o.Press(295, 10)
	if _, ok := events[0].(RemoveEvent); !ok {
		t.Fatalf("expected RemoveEvent, got %T", events[0])
	}

	// Handle press begins resize without selecting.
	events = nil
	o.Press(295, 195)
	if len(events) != 0 || !o.Dragging() {
		t.Fatalf("handle press starts a resize gesture silently")
	}

	// Outside misses.
	o.Release()
	if o.Press(500, 500) {
		t.Fatalf("press outside the rect must miss")
	}
}

func TestOverlayDragUpdatesOwnRect(t *testing.T) {
	var events []any
	o := NewOverlay(Compartment{ID: "c1", Rect: Rect{X: 10, Y: 10, Width: 300, Height: 200}},
		func(ev any) { events = append(events, ev) })

	o.Press(50, 5) // header
	o.Motion(60, 5)
	if o.Compartment.Rect.X != 20 {
		t.Fatalf("overlay rect must follow the drag, got x=%d", o.Compartment.Rect.X)
	}
	o.Release()
	if o.Dragging() {
		t.Fatalf("expected idle after release")
	}
}
