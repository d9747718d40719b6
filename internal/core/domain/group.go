package domain

// Group is a named collection of employees. Membership is a set: adding an
// existing member or removing an absent one is a no-op. Insertion order is
// preserved for stable listings.
type Group struct {
	Name    string
	members []*Employee
}

func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// AddMember inserts e unless it is already a member.
func (g *Group) AddMember(e *Employee) {
	if g.Contains(e) {
		return
	}
	g.members = append(g.members, e)
}

// RemoveMember drops e from the group if present.
func (g *Group) RemoveMember(e *Employee) {
	for i, m := range g.members {
		if m == e {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// Contains reports whether e is a member. Identity comparison: the directory
// owns employee instances, so pointer equality is sufficient.
func (g *Group) Contains(e *Employee) bool {
	for _, m := range g.members {
		if m == e {
			return true
		}
	}
	return false
}

// Members returns the current membership in insertion order.
func (g *Group) Members() []*Employee {
	out := make([]*Employee, len(g.members))
	copy(out, g.members)
	return out
}

func (g *Group) Size() int {
	return len(g.members)
}
