package nav

import "slices"

// Builder rebuilds the full breadcrumb trail from scratch on every completed
// navigation, walking the route chain from root to the deepest active leaf
// and accumulating the URL segment by segment.
//
// Callers may register a display label for a dynamic route parameter key via
// SetLabel (substituting an entity's human name for its identifier once it
// loads). Overrides are cleared on the next navigation; SetLabel itself
// triggers an immediate recomputation from the last snapshot.
type Builder struct {
	overrides map[string]string
	order     []string // SetLabel insertion order, for deterministic resolution
	last      *Snapshot
	trail     []Crumb
	subs      []func([]Crumb)
}

func NewBuilder() *Builder {
	return &Builder{overrides: map[string]string{}}
}

// Navigate records a completed navigation: overrides from the previous page
// are dropped and the trail is rebuilt from the new snapshot.
func (b *Builder) Navigate(root *Snapshot) {
	b.overrides = map[string]string{}
	b.order = b.order[:0]
	b.last = root
	b.rebuild()
}

// SetLabel registers a display label for a route parameter key and rebuilds
// immediately with whatever overrides are currently registered.
func (b *Builder) SetLabel(paramKey, label string) {
	if _, ok := b.overrides[paramKey]; !ok {
		b.order = append(b.order, paramKey)
	}
	b.overrides[paramKey] = label
	b.rebuild()
}

// Trail returns the current breadcrumb list. The slice is rebuilt in full on
// every navigation and never mutated in place.
func (b *Builder) Trail() []Crumb {
	return b.trail
}

// Subscribe registers fn to run after every rebuild with the new trail.
func (b *Builder) Subscribe(fn func([]Crumb)) {
	b.subs = append(b.subs, fn)
}

func (b *Builder) rebuild() {
	trail := []Crumb{}
	url := ""
	for node := b.last; node != nil; node = node.Child {
		for _, seg := range node.Segments {
			if seg == "" {
				continue
			}
			url += "/" + seg
		}
		if node.Crumb == nil {
			continue
		}
		override, hasOverride := b.overrideFor(node)
		if node.Crumb.Entries == nil {
			label := node.Crumb.Label
			if hasOverride {
				label = override
			}
			trail = append(trail, Crumb{Label: label, URL: url})
			continue
		}
		for _, e := range node.Crumb.Entries {
			if e.Path != "" {
				trail = append(trail, Crumb{Label: e.Label, URL: e.Path})
				continue
			}
			label := e.Label
			if hasOverride {
				label = override
			}
			trail = append(trail, Crumb{Label: label, URL: url})
		}
	}
	b.trail = trail
	for _, fn := range b.subs {
		fn(slices.Clone(trail))
	}
}

// overrideFor returns the registered override for the node, if any of the
// node's route parameters has one. The override wins over the literal label
// regardless of which parameter matched; when several match, the earliest
// registered key wins.
func (b *Builder) overrideFor(node *Snapshot) (string, bool) {
	for _, key := range b.order {
		if _, ok := node.Params[key]; ok {
			return b.overrides[key], true
		}
	}
	return "", false
}
