package neighborhood

import (
	"math/rand"
	"sort"
)

// MoveRollback records enough information to undo a single-student transfer:
// the student, its source group and exact prior position (for an
// order-preserving reinsert), and the destination group.
type MoveRollback struct {
	Student  int
	SrcGroup int
	SrcPos   int
	DstGroup int
}

// SwapRollback records the two students, their groups, and exact positions
// exchanged (2 student ids, their groups, and the 2 positions needed to put
// them back).
type SwapRollback struct {
	S1, S2     int
	G1, G2     int
	Pos1, Pos2 int
}

// MoveCandidate is a proposed (not yet applied) single-student transfer.
type MoveCandidate struct {
	Student  int
	SrcGroup int
	DstGroup int
}

// SwapCandidate is a proposed (not yet applied) exchange of two students.
type SwapCandidate struct {
	S1, S2 int
	G1, G2 int
}

// ApplyMove physically transfers c.Student from c.SrcGroup to c.DstGroup
// (appended at the end of the destination), keeping the membership index in
// sync, and returns a rollback descriptor.
func (a *Assignment) ApplyMove(c MoveCandidate) MoveRollback {
	srcPos := a.positionOf(c.SrcGroup, c.Student)
	a.removeAt(c.SrcGroup, srcPos)
	a.insertAt(c.DstGroup, len(a.Project.Groups[c.DstGroup].StudentIDs), c.Student)

	return MoveRollback{Student: c.Student, SrcGroup: c.SrcGroup, SrcPos: srcPos, DstGroup: c.DstGroup}
}

// UndoMove reverses ApplyMove, reinserting the student at its exact prior
// position in the source group.
func (a *Assignment) UndoMove(r MoveRollback) {
	dstPos := a.positionOf(r.DstGroup, r.Student)
	a.removeAt(r.DstGroup, dstPos)
	a.insertAt(r.SrcGroup, r.SrcPos, r.Student)
}

// ApplySwap physically exchanges c.S1 and c.S2's positions (no insert/delete
// needed — a swap never changes any group's size) and returns a rollback
// descriptor.
func (a *Assignment) ApplySwap(c SwapCandidate) SwapRollback {
	pos1 := a.positionOf(c.G1, c.S1)
	pos2 := a.positionOf(c.G2, c.S2)
	a.Project.Groups[c.G1].StudentIDs[pos1] = c.S2
	a.Project.Groups[c.G2].StudentIDs[pos2] = c.S1
	a.groupOf[c.S1] = c.G2
	a.groupOf[c.S2] = c.G1

	return SwapRollback{S1: c.S1, S2: c.S2, G1: c.G1, G2: c.G2, Pos1: pos1, Pos2: pos2}
}

// UndoSwap reverses ApplySwap.
func (a *Assignment) UndoSwap(r SwapRollback) {
	a.Project.Groups[r.G1].StudentIDs[r.Pos1] = r.S1
	a.Project.Groups[r.G2].StudentIDs[r.Pos2] = r.S2
	a.groupOf[r.S1] = r.G1
	a.groupOf[r.S2] = r.G2
}

// GenerateSwap picks two distinct groups each holding at least one
// non-pinned student, then one non-pinned student from each, uniformly at
// random. Returns false if fewer than two such groups exist.
func GenerateSwap(a *Assignment, r *rand.Rand) (SwapCandidate, bool) {
	movable := movableGroups(a)
	if len(movable) < 2 {
		return SwapCandidate{}, false
	}
	i := r.Intn(len(movable))
	j := r.Intn(len(movable) - 1)
	if j >= i {
		j++
	}
	g1, g2 := movable[i], movable[j]

	np1 := a.NonPinnedIDs(g1)
	np2 := a.NonPinnedIDs(g2)
	if len(np1) == 0 || len(np2) == 0 {
		return SwapCandidate{}, false
	}

	return SwapCandidate{S1: np1[r.Intn(len(np1))], S2: np2[r.Intn(len(np2))], G1: g1, G2: g2}, true
}

// GenerateRandomMove picks any group with a non-pinned student, one such
// student, and any other group uniformly at random; capacity is not
// enforced here (penalties handle it).
func GenerateRandomMove(a *Assignment, r *rand.Rand) (MoveCandidate, bool) {
	if a.NumGroups() < 2 {
		return MoveCandidate{}, false
	}
	movable := movableGroups(a)
	if len(movable) == 0 {
		return MoveCandidate{}, false
	}
	src := movable[r.Intn(len(movable))]
	np := a.NonPinnedIDs(src)
	if len(np) == 0 {
		return MoveCandidate{}, false
	}
	s := np[r.Intn(len(np))]

	dst := src
	for dst == src {
		dst = r.Intn(a.NumGroups())
	}

	return MoveCandidate{Student: s, SrcGroup: src, DstGroup: dst}, true
}

// GenerateSmartMove ranks non-pinned students by unhappiness
// (|disliked∩own_group| + |liked\own_group|), draws uniformly from the top
// third of strictly-positive scores, then ranks candidate target groups by
// |liked∩g| − |disliked∩g| for that student and draws uniformly from the
// top half.
func GenerateSmartMove(a *Assignment, r *rand.Rand) (MoveCandidate, bool) {
	type scored struct {
		id    int
		score float64
	}
	var unhappy []scored
	for gi := range a.Project.Groups {
		own := a.Members(gi)
		for _, sid := range a.NonPinnedIDs(gi) {
			st, ok := a.Index.Student(sid)
			if !ok {
				continue
			}
			score := float64(countIn(st.Disliked, own) + countNotIn(st.Liked, own))
			if score > 0 {
				unhappy = append(unhappy, scored{sid, score})
			}
		}
	}
	if len(unhappy) == 0 {
		return MoveCandidate{}, false
	}
	sort.Slice(unhappy, func(i, j int) bool { return unhappy[i].score > unhappy[j].score })
	topThird := (len(unhappy) + 2) / 3
	chosen := unhappy[r.Intn(topThird)]

	s := chosen.id
	srcGroup := a.GroupOf(s)
	st, _ := a.Index.Student(s)

	type targetScore struct {
		gi    int
		score float64
	}
	var targets []targetScore
	for gi := range a.Project.Groups {
		if gi == srcGroup {
			continue
		}
		members := a.Members(gi)
		targets = append(targets, targetScore{gi, float64(countIn(st.Liked, members) - countIn(st.Disliked, members))})
	}
	if len(targets) == 0 {
		return MoveCandidate{}, false
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].score > targets[j].score })
	topHalf := (len(targets) + 1) / 2
	dst := targets[r.Intn(topHalf)].gi

	return MoveCandidate{Student: s, SrcGroup: srcGroup, DstGroup: dst}, true
}

// movableGroups returns the indices of groups holding at least one
// non-pinned student.
func movableGroups(a *Assignment) []int {
	var out []int
	for gi := range a.Project.Groups {
		if len(a.NonPinnedIDs(gi)) > 0 {
			out = append(out, gi)
		}
	}

	return out
}

func countIn(ids, members []int) int {
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

func countNotIn(ids, members []int) int {
	return len(ids) - countIn(ids, members)
}
