// Package hardcheck produces a post-hoc feasibility report over a Project:
// hard constraint violations (capacity, ALL, MAX) a caller may want to warn
// about, even though the core itself only ever treats these as soft,
// penalized rules during optimization.
package hardcheck

import (
	"fmt"

	"github.com/groupsa/groupsa/model"
)

// Check reports whether p violates any hard-checked rule and, if not,
// returns ok=true with a nil message list. SOME constraints are
// intentionally not checked here — they remain soft-only.
func Check(p *model.Project) (bool, []string) {
	idx := model.NewIndex(p)
	pinned := projectPinnedIDs(p)
	var violations []string

	for gi := range p.Groups {
		g := &p.Groups[gi]

		if len(g.StudentIDs) > g.MaxSize {
			violations = append(violations, fmt.Sprintf(
				"group %q has %d students, exceeding max size %d",
				g.Name, len(g.StudentIDs), g.MaxSize))
		}

		for _, c := range g.Constraints {
			switch c.Kind {
			case model.All:
				missing := countMissing(p, g, c.Characteristic, pinned)
				if missing > 0 {
					violations = append(violations, fmt.Sprintf(
						"group %q violates ALL(%s): %d student(s) elsewhere with it",
						g.Name, c.Characteristic, missing))
				}
			case model.Max:
				current := g.CountTrue(idx, c.Characteristic, true)
				if current > c.Value {
					violations = append(violations, fmt.Sprintf(
						"group %q violates MAX(%s)<=%d: has %d",
						g.Name, c.Characteristic, c.Value, current))
				}
			}
		}
	}

	return len(violations) == 0, violations
}

// countMissing counts students project-wide with characteristic=true who are
// not members of g, excluding students pinned (into any group) — a pinned
// placement is exempt from ALL accounting regardless of which group it's in.
func countMissing(p *model.Project, g *model.Group, characteristic string, pinned map[int]struct{}) int {
	missing := 0
	for i := range p.Students {
		sid := p.Students[i].ID
		if _, isPinned := pinned[sid]; isPinned {
			continue
		}
		if !p.Students[i].Characteristics[characteristic].IsTrue() {
			continue
		}
		if !g.Contains(sid) {
			missing++
		}
	}

	return missing
}

// projectPinnedIDs collects every student id pinned into any group across
// the whole project.
func projectPinnedIDs(p *model.Project) map[int]struct{} {
	pinned := make(map[int]struct{})
	for gi := range p.Groups {
		for _, sid := range p.Groups[gi].PinnedStudentIDs {
			pinned[sid] = struct{}{}
		}
	}

	return pinned
}
