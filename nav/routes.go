// Package nav derives the breadcrumb trail from the active route chain.
package nav

// Crumb is one step of the navigation trail.
type Crumb struct {
	Label string
	URL   string
}

// Entry is one element of a list-form breadcrumb descriptor. An empty Path
// means the crumb uses the URL accumulated up to this route level; a non-empty
// Path is used verbatim.
type Entry struct {
	Label string
	Path  string
}

// Descriptor is the breadcrumb contribution of one route level: either a
// single label (crumb at the accumulated URL) or an ordered list of entries.
// A non-nil Entries list takes precedence over Label.
type Descriptor struct {
	Label   string
	Entries []Entry
}

// Snapshot is one node of the active route chain as supplied by the embedding
// navigation layer: the node's resolved path segments, its optional breadcrumb
// descriptor, its route parameters, and the next deeper node.
type Snapshot struct {
	Segments []string
	Crumb    *Descriptor
	Params   map[string]string
	Child    *Snapshot
}
