// Package selection tracks checkbox bulk-selection state over a list of rows.
//
// The helper is generic over the row type; callers supply the current item
// slice and an identity function. Membership is kept in a set that is
// replaced wholesale on every mutation, so observers can detect changes by
// comparing Version.
package selection

type Model[T any] struct {
	items   func() []T
	idOf    func(T) string
	set     map[string]struct{}
	version uint64
}

func New[T any](items func() []T, idOf func(T) string) *Model[T] {
	return &Model[T]{items: items, idOf: idOf, set: map[string]struct{}{}}
}

// Toggle flips membership of id in the selected set.
func (m *Model[T]) Toggle(id string) {
	next := cloneSet(m.set)
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	m.replace(next)
}

// ToggleAll clears the set when every visible item is already selected,
// otherwise selects exactly the currently visible items. Selection is always
// scoped to the current item list, never a historical superset.
func (m *Model[T]) ToggleAll() {
	if m.AllSelected() {
		m.replace(map[string]struct{}{})
		return
	}
	next := map[string]struct{}{}
	for _, it := range m.items() {
		next[m.idOf(it)] = struct{}{}
	}
	m.replace(next)
}

func (m *Model[T]) Clear() {
	m.replace(map[string]struct{}{})
}

func (m *Model[T]) Selected(id string) bool {
	_, ok := m.set[id]
	return ok
}

// AllSelected reports whether the list is non-empty and every item's id is in
// the set.
func (m *Model[T]) AllSelected() bool {
	items := m.items()
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if _, ok := m.set[m.idOf(it)]; !ok {
			return false
		}
	}
	return true
}

// SomeSelected reports the indeterminate state: a non-empty selection that
// does not cover every visible item.
func (m *Model[T]) SomeSelected() bool {
	return len(m.set) > 0 && !m.AllSelected()
}

func (m *Model[T]) Count() int { return len(m.set) }

// IDs returns the selected ids in unspecified order. Ids that have vanished
// from the item list are still reported until ToggleAll or Clear runs.
func (m *Model[T]) IDs() []string {
	out := make([]string, 0, len(m.set))
	for id := range m.set {
		out = append(out, id)
	}
	return out
}

// Version increments on every mutation that replaces the set.
func (m *Model[T]) Version() uint64 { return m.version }

func (m *Model[T]) replace(next map[string]struct{}) {
	m.set = next
	m.version++
}

func cloneSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
