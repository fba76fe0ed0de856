// Package access gates UI fragments behind capability checks.
package access

// Checker answers capability queries for the current principal.
type Checker interface {
	Allowed(capability string) bool
}

// Guard decides whether a UI fragment is mounted, from a declarative
// capability requirement. Re-evaluate with Recheck whenever the capability
// set changes; subscribers are notified only when the decision flips.
type Guard struct {
	checker     Checker
	requirement string
	mounted     bool
	subs        []func(mounted bool)
}

func NewGuard(checker Checker, requirement string) *Guard {
	g := &Guard{checker: checker, requirement: requirement}
	g.mounted = checker.Allowed(requirement)
	return g
}

func (g *Guard) Mounted() bool { return g.mounted }

// Recheck re-evaluates the requirement and notifies subscribers on a flip.
func (g *Guard) Recheck() {
	next := g.checker.Allowed(g.requirement)
	if next == g.mounted {
		return
	}
	g.mounted = next
	for _, fn := range g.subs {
		fn(next)
	}
}

func (g *Guard) Subscribe(fn func(mounted bool)) {
	g.subs = append(g.subs, fn)
}

// Set is a plain capability set usable as a Checker.
type Set map[string]struct{}

func NewSet(capabilities ...string) Set {
	s := Set{}
	for _, c := range capabilities {
		s[c] = struct{}{}
	}
	return s
}

func (s Set) Allowed(capability string) bool {
	_, ok := s[capability]
	return ok
}

func (s Set) Grant(capability string)  { s[capability] = struct{}{} }
func (s Set) Revoke(capability string) { delete(s, capability) }
