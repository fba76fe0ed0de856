package selection

import (
	"strconv"
	"testing"
)

type row struct{ id int }

func newRows(ids ...int) []row {
	out := make([]row, 0, len(ids))
	for _, id := range ids {
		out = append(out, row{id: id})
	}
	return out
}

func newModel(items *[]row) *Model[row] {
	return New(func() []row { return *items }, func(r row) string { return strconv.Itoa(r.id) })
}

func TestToggleAllSelectsThenClears(t *testing.T) {
	items := newRows(1, 2, 3)
	m := newModel(&items)

	m.ToggleAll()
	if m.Count() != 3 || !m.AllSelected() {
		t.Fatalf("expected all 3 selected, got count=%d all=%v", m.Count(), m.AllSelected())
	}
	m.ToggleAll()
	if m.Count() != 0 {
		t.Fatalf("second ToggleAll should clear, got count=%d", m.Count())
	}
}

func TestToggleSingle(t *testing.T) {
	items := newRows(1, 2, 3)
	m := newModel(&items)

	m.Toggle("2")
	if !m.Selected("2") || m.Count() != 1 {
		t.Fatalf("expected selection {2}, got %v", m.IDs())
	}
	if !m.SomeSelected() {
		t.Fatalf("expected indeterminate state")
	}
	if m.AllSelected() {
		t.Fatalf("one of three must not report AllSelected")
	}
	m.Toggle("2")
	if m.Count() != 0 {
		t.Fatalf("second toggle should deselect")
	}
}

func TestEmptyListNeverAllSelected(t *testing.T) {
	items := newRows()
	m := newModel(&items)
	if m.AllSelected() {
		t.Fatalf("empty list must not report AllSelected")
	}
	m.ToggleAll()
	if m.Count() != 0 {
		t.Fatalf("ToggleAll over empty list selects nothing")
	}
}

func TestToggleAllScopedToVisibleItems(t *testing.T) {
	items := newRows(1, 2)
	m := newModel(&items)
	m.ToggleAll()

	// List shrinks; stale id 2 remains selected until ToggleAll/Clear.
	items = newRows(1)
	if !m.Selected("2") {
		t.Fatalf("stale id should remain selected")
	}
	if !m.AllSelected() {
		t.Fatalf("all visible items are selected")
	}
	m.ToggleAll()
	if m.Count() != 0 {
		t.Fatalf("ToggleAll with all visible selected clears everything, got %v", m.IDs())
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	items := newRows(1)
	m := newModel(&items)
	v0 := m.Version()
	m.Toggle("1")
	if m.Version() == v0 {
		t.Fatalf("Toggle must replace the set and bump the version")
	}
	m.Clear()
	if m.Version() == v0+1 {
		t.Fatalf("Clear must bump the version")
	}
}
