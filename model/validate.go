package model

// Validate checks the cross-group invariants that must hold before any
// SA run starts: known students, unique assignment (a student in at most one
// group), and pinned ids being a subset of their group's membership.
//
// Complexity: O(n) time and space, where n is the total number of assigned
// student ids across all groups.
func Validate(p *Project) error {
	idx := NewIndex(p)

	seenGroupNames := make(map[string]struct{}, len(p.Groups))
	seenStudent := make(map[int]struct{})

	for gi := range p.Groups {
		g := &p.Groups[gi]

		if _, dup := seenGroupNames[g.Name]; dup {
			return ErrDuplicateGroupName
		}
		seenGroupNames[g.Name] = struct{}{}

		if g.MaxSize <= 0 {
			return ErrNonPositiveMaxSize
		}

		for _, sid := range g.StudentIDs {
			if !idx.Has(sid) {
				return ErrUnknownStudent
			}
			if _, dup := seenStudent[sid]; dup {
				return ErrDuplicateStudentID
			}
			seenStudent[sid] = struct{}{}
		}

		if err := validatePinnedSubset(g); err != nil {
			return err
		}
	}

	return nil
}

// validatePinnedSubset verifies g.PinnedStudentIDs ⊆ g.StudentIDs.
func validatePinnedSubset(g *Group) error {
	member := make(map[int]struct{}, len(g.StudentIDs))
	for _, sid := range g.StudentIDs {
		member[sid] = struct{}{}
	}
	for _, pid := range g.PinnedStudentIDs {
		if _, ok := member[pid]; !ok {
			return ErrPinNotInGroup
		}
	}

	return nil
}
