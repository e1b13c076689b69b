// Package initializer builds a preference- and constraint-aware starting
// assignment for a Project before simulated annealing begins.
//
// The three passes run in the documented order: ALL-constraint greedy fill,
// SOME-constraint greedy fill, then preference-greedy placement of whatever
// remains. The initializer is nondeterministic by design (it shuffles for
// tie-breaking); callers wanting reproducible runs supply an RNG derived
// from a fixed seed (see the rng package) rather than a time-based source.
package initializer

import (
	"math/rand"

	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/rng"
)

// Seed returns a new Project with a feasible-ish starting assignment built
// from p: pinned students are kept in place, non-pinned students are pooled
// and placed by the three passes below. p itself is not mutated.
//
// Complexity: O(P*G) where P is the number of unassigned students and G the
// number of groups (pass C dominates; passes A/B are O(P) each).
func Seed(p *model.Project, r *rand.Rand) *model.Project {
	out := p.Clone()
	idx := model.NewIndex(out)

	pinned := make(map[int]struct{})
	for gi := range out.Groups {
		for _, pid := range out.Groups[gi].PinnedStudentIDs {
			pinned[pid] = struct{}{}
		}
	}

	// Drop all non-pinned ids from each group, keeping only pinned members.
	for gi := range out.Groups {
		g := &out.Groups[gi]
		kept := make([]int, 0, len(g.PinnedStudentIDs))
		for _, sid := range g.StudentIDs {
			if _, ok := pinned[sid]; ok {
				kept = append(kept, sid)
			}
		}
		g.StudentIDs = kept
	}

	pool := make([]int, 0, len(out.Students))
	for i := range out.Students {
		if _, ok := pinned[out.Students[i].ID]; !ok {
			pool = append(pool, out.Students[i].ID)
		}
	}
	rng.ShuffleIntsInPlace(pool, r)

	pool = passAll(out, idx, pool)
	pool = passSome(out, idx, pool)
	passGreedy(out, idx, pool)

	return out
}

// passAll greedily fills every ALL constraint: for each group with an
// ALL c constraint, every pooled student with c=true is added while
// capacity allows.
func passAll(p *model.Project, idx *model.Index, pool []int) []int {
	for gi := range p.Groups {
		g := &p.Groups[gi]
		for _, c := range g.Constraints {
			if c.Kind != model.All {
				continue
			}
			remaining := pool[:0]
			for _, sid := range pool {
				st, _ := idx.Student(sid)
				if st != nil && st.Characteristics[c.Characteristic].IsTrue() && len(g.StudentIDs) < g.MaxSize {
					g.StudentIDs = append(g.StudentIDs, sid)
				} else {
					remaining = append(remaining, sid)
				}
			}
			pool = remaining
		}
	}

	return pool
}

// passSome ensures every SOME constraint with zero current holders gets one,
// if capacity allows.
func passSome(p *model.Project, idx *model.Index, pool []int) []int {
	for gi := range p.Groups {
		g := &p.Groups[gi]
		for _, c := range g.Constraints {
			if c.Kind != model.Some {
				continue
			}
			if g.CountTrue(idx, c.Characteristic, false) > 0 {
				continue
			}
			if len(g.StudentIDs) >= g.MaxSize {
				continue
			}
			for i, sid := range pool {
				st, _ := idx.Student(sid)
				if st != nil && st.Characteristics[c.Characteristic].IsTrue() {
					g.StudentIDs = append(g.StudentIDs, sid)
					pool = append(pool[:i], pool[i+1:]...)
					break
				}
			}
		}
	}

	return pool
}

// passGreedy places each remaining pooled student into the feasible group
// maximizing |liked∩g| - 2*|disliked∩g| - 0.01*|g|, falling back to the
// smallest group (allowing a capacity breach) if no group is feasible.
func passGreedy(p *model.Project, idx *model.Index, pool []int) {
	for _, sid := range pool {
		st, _ := idx.Student(sid)
		bestGI := -1
		bestScore := 0.0
		smallestGI := -1

		for gi := range p.Groups {
			g := &p.Groups[gi]
			if smallestGI == -1 || len(g.StudentIDs) < len(p.Groups[smallestGI].StudentIDs) {
				smallestGI = gi
			}
			if len(g.StudentIDs) >= g.MaxSize || violatesMax(idx, g, st) {
				continue
			}
			score := 0.0
			if st != nil {
				score = float64(countOverlap(st.Liked, g.StudentIDs)) -
					2*float64(countOverlap(st.Disliked, g.StudentIDs)) -
					0.01*float64(len(g.StudentIDs))
			}
			if bestGI == -1 || score > bestScore {
				bestGI, bestScore = gi, score
			}
		}

		if bestGI == -1 {
			bestGI = smallestGI
		}
		if bestGI >= 0 {
			p.Groups[bestGI].StudentIDs = append(p.Groups[bestGI].StudentIDs, sid)
		}
	}
}

// violatesMax reports whether placing st into g would push any MAX
// constraint on g past its cap.
func violatesMax(idx *model.Index, g *model.Group, st *model.Student) bool {
	if st == nil {
		return false
	}
	for _, c := range g.Constraints {
		if c.Kind != model.Max {
			continue
		}
		if !st.Characteristics[c.Characteristic].IsTrue() {
			continue
		}
		if g.CountTrue(idx, c.Characteristic, true)+1 > c.Value {
			return true
		}
	}

	return false
}

func countOverlap(ids, members []int) int {
	n := 0
	for _, id := range ids {
		for _, m := range members {
			if id == m {
				n++
				break
			}
		}
	}

	return n
}

