// Package neighborhood generates local moves over a mutable working
// assignment — swap, random move, and preference-guided "smart" move — and
// applies them in place with a rollback descriptor, so the annealer's inner
// loop never copies a whole Project per candidate.
package neighborhood

import "github.com/groupsa/groupsa/model"

// Assignment is the annealer-private mutable working state: a cloned
// Project plus an ordered-vector + membership-index pair kept in sync on
// every mutation.
type Assignment struct {
	Project *model.Project
	Index   *model.Index

	// groupOf maps a student id to its current group index, or -1 if
	// unassigned.
	groupOf map[int]int
	// pinnedSet[gi] is the set of pinned ids in group gi, for O(1) checks.
	pinnedSet []map[int]struct{}
}

// New builds an Assignment wrapping p (p is not cloned here; callers that
// need to preserve an original typically pass a Clone()). Index lookups and
// the group-membership index are built once, up front.
func New(p *model.Project) *Assignment {
	a := &Assignment{
		Project:   p,
		Index:     model.NewIndex(p),
		groupOf:   make(map[int]int, len(p.Students)),
		pinnedSet: make([]map[int]struct{}, len(p.Groups)),
	}
	for gi := range p.Groups {
		g := &p.Groups[gi]
		pinned := make(map[int]struct{}, len(g.PinnedStudentIDs))
		for _, pid := range g.PinnedStudentIDs {
			pinned[pid] = struct{}{}
		}
		a.pinnedSet[gi] = pinned
		for _, sid := range g.StudentIDs {
			a.groupOf[sid] = gi
		}
	}

	return a
}

// GroupOf returns the group index holding id, or -1 if unassigned.
func (a *Assignment) GroupOf(id int) int {
	if gi, ok := a.groupOf[id]; ok {
		return gi
	}

	return -1
}

// IsPinned reports whether id is pinned in its current group.
func (a *Assignment) IsPinned(id int) bool {
	gi := a.GroupOf(id)
	if gi < 0 {
		return false
	}

	return isPinnedIn(a.pinnedSet[gi], id)
}

func isPinnedIn(set map[int]struct{}, id int) bool {
	_, ok := set[id]

	return ok
}

// NonPinnedIDs returns a freshly allocated slice of gi's non-pinned member
// ids, in membership order.
func (a *Assignment) NonPinnedIDs(gi int) []int {
	g := &a.Project.Groups[gi]
	out := make([]int, 0, len(g.StudentIDs))
	for _, sid := range g.StudentIDs {
		if !isPinnedIn(a.pinnedSet[gi], sid) {
			out = append(out, sid)
		}
	}

	return out
}

// MembersExcluding returns gi's member ids with excl removed, without
// mutating the group (used to build the "after removal" membership view the
// delta formulas need).
func (a *Assignment) MembersExcluding(gi, excl int) []int {
	g := &a.Project.Groups[gi]
	out := make([]int, 0, len(g.StudentIDs))
	for _, sid := range g.StudentIDs {
		if sid != excl {
			out = append(out, sid)
		}
	}

	return out
}

// Members returns gi's member ids as-is (read-only view; callers must not
// mutate the returned slice).
func (a *Assignment) Members(gi int) []int {
	return a.Project.Groups[gi].StudentIDs
}

// NumGroups returns the number of groups in the assignment.
func (a *Assignment) NumGroups() int { return len(a.Project.Groups) }

// Group returns a pointer to the gi'th group.
func (a *Assignment) Group(gi int) *model.Group { return &a.Project.Groups[gi] }

// removeAt removes the student at position pos from group gi's StudentIDs,
// preserving the order of the remaining ids, and returns the removed id.
func (a *Assignment) removeAt(gi, pos int) int {
	g := &a.Project.Groups[gi]
	id := g.StudentIDs[pos]
	g.StudentIDs = append(g.StudentIDs[:pos], g.StudentIDs[pos+1:]...)
	delete(a.groupOf, id)

	return id
}

// insertAt inserts id at position pos in group gi's StudentIDs.
func (a *Assignment) insertAt(gi, pos int, id int) {
	g := &a.Project.Groups[gi]
	g.StudentIDs = append(g.StudentIDs, 0)
	copy(g.StudentIDs[pos+1:], g.StudentIDs[pos:])
	g.StudentIDs[pos] = id
	a.groupOf[id] = gi
}

// positionOf returns the index of id within group gi's StudentIDs, or -1.
func (a *Assignment) positionOf(gi, id int) int {
	g := &a.Project.Groups[gi]
	for i, sid := range g.StudentIDs {
		if sid == id {
			return i
		}
	}

	return -1
}
