package scorer

import (
	"fmt"

	"github.com/groupsa/groupsa/model"
)

// PenaltyDetail is one line of the human-readable constraint-penalty report
// (a detailed penalty report); it is never consulted by the SA
// inner loop.
type PenaltyDetail struct {
	Group  string
	Amount float64
	Reason string
}

// Score computes the full objective for p: summed peer preferences (liked
// counted at +LikesWeight, disliked at -DislikesWeight, from both sides of
// the relation) minus the constraint penalty.
//
// This is the full-recompute form, used once at the start of an SA run and
// once per restart to eliminate accumulated float drift; the
// inner loop instead uses MoveDelta/SwapDelta plus ConstraintMoveDelta/
// ConstraintSwapDelta.
//
// Complexity: O(sum of group sizes * average preference-list length).
func Score(p *model.Project) float64 {
	idx := model.NewIndex(p)

	var peer float64
	for gi := range p.Groups {
		g := &p.Groups[gi]
		for _, sid := range g.StudentIDs {
			s, ok := idx.Student(sid)
			if !ok {
				continue
			}
			peer += p.Weights.LikesWeight * float64(countMembers(s.Liked, g.StudentIDs))
			peer -= p.Weights.DislikesWeight * float64(countMembers(s.Disliked, g.StudentIDs))
		}
	}

	return peer - ConstraintPenalty(p)
}

// ConstraintPenalty computes the total soft-constraint penalty for p: 50 per
// missing ALL holder, 50 per excess MAX holder, 25 flat per unsatisfied
// SOME, plus 100 per student beyond a group's MaxSize.
//
// Complexity: O(sum of group sizes + total student count for ALL scans).
func ConstraintPenalty(p *model.Project) float64 {
	total, _ := penalize(p, false)

	return total
}

// PenaltyReport computes the same total as ConstraintPenalty plus a
// human-readable breakdown per violated rule, for presentation to the
// caller. It is not used by the annealer.
func PenaltyReport(p *model.Project) (float64, []PenaltyDetail) {
	return penalize(p, true)
}

func penalize(p *model.Project, withDetail bool) (float64, []PenaltyDetail) {
	idx := model.NewIndex(p)
	pinned := projectPinnedIDs(p)
	var total float64
	var details []PenaltyDetail

	for gi := range p.Groups {
		g := &p.Groups[gi]

		if over := len(g.StudentIDs) - g.MaxSize; over > 0 {
			amt := oversizePenalty * float64(over)
			total += amt
			if withDetail {
				details = append(details, PenaltyDetail{
					Group: g.Name, Amount: amt,
					Reason: fmt.Sprintf("%d student(s) over max_size %d", over, g.MaxSize),
				})
			}
		}

		for _, c := range g.Constraints {
			switch c.Kind {
			case model.All:
				missing := countAllMissing(p, idx, g, c.Characteristic, pinned)
				if missing > 0 {
					amt := allPenalty * float64(missing)
					total += amt
					if withDetail {
						details = append(details, PenaltyDetail{
							Group: g.Name, Amount: amt,
							Reason: fmt.Sprintf("missing %d holder(s) of %q required by ALL", missing, c.Characteristic),
						})
					}
				}
			case model.Max:
				count := g.CountTrue(idx, c.Characteristic, true)
				excess := count - c.Value
				if excess > 0 {
					amt := maxPenalty * float64(excess)
					total += amt
					if withDetail {
						details = append(details, PenaltyDetail{
							Group: g.Name, Amount: amt,
							Reason: fmt.Sprintf("%d student(s) over MAX %s=%d", excess, c.Characteristic, c.Value),
						})
					}
				}
			case model.Some:
				// SOME counts pinned students too.
				if g.CountTrue(idx, c.Characteristic, false) == 0 {
					total += somePenalty
					if withDetail {
						details = append(details, PenaltyDetail{
							Group: g.Name, Amount: somePenalty,
							Reason: fmt.Sprintf("no holder of %q satisfies SOME", c.Characteristic),
						})
					}
				}
			}
		}
	}

	return total, details
}

// countAllMissing counts students with c=true across the whole project who
// are not currently members of g (ALL is violated once per such student),
// excluding any student pinned into a group — pinned placement is where the
// caller explicitly put them, so it is exempt from ALL accounting entirely.
func countAllMissing(p *model.Project, idx *model.Index, g *model.Group, c string, pinned map[int]struct{}) int {
	n := 0
	for i := range p.Students {
		sid := p.Students[i].ID
		if _, isPinned := pinned[sid]; isPinned {
			continue
		}
		if !p.Students[i].Characteristics[c].IsTrue() {
			continue
		}
		if !g.Contains(sid) {
			n++
		}
	}

	return n
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

// countMembers returns |ids ∩ members|, tolerating self-references and
// unknown ids: both are simply counted or skipped as
// any other id would be, with no special-casing.
func countMembers(ids []int, members []int) int {
	if len(ids) == 0 || len(members) == 0 {
		return 0
	}
	set := make(map[int]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	n := 0
	for _, id := range ids {
		if _, ok := set[id]; ok {
			n++
		}
	}

	return n
}
