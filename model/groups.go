package model

// IsPinned reports whether id is present in g.PinnedStudentIDs.
//
// Complexity: O(|PinnedStudentIDs|); groups are small (bounded by MaxSize),
// so a linear scan outperforms a map for typical group sizes.
func (g *Group) IsPinned(id int) bool {
	for _, pid := range g.PinnedStudentIDs {
		if pid == id {
			return true
		}
	}

	return false
}

// Contains reports whether id is present in g.StudentIDs.
func (g *Group) Contains(id int) bool {
	for _, sid := range g.StudentIDs {
		if sid == id {
			return true
		}
	}

	return false
}

// CountTrue returns the number of students in g with Characteristics[c]
// true, optionally excluding pinned students (used by MAX accounting, which
// excludes pinned students; SOME accounting includes them).
func (g *Group) CountTrue(idx *Index, c string, excludePinned bool) int {
	n := 0
	for _, sid := range g.StudentIDs {
		if excludePinned && g.IsPinned(sid) {
			continue
		}
		s, ok := idx.Student(sid)
		if !ok {
			continue
		}
		if s.Characteristics[c].IsTrue() {
			n++
		}
	}

	return n
}

// GroupOf returns the index into p.Groups holding id, or -1 if unassigned.
func GroupOf(p *Project, id int) int {
	for gi := range p.Groups {
		if p.Groups[gi].Contains(id) {
			return gi
		}
	}

	return -1
}
