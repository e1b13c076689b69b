package scorer

import "github.com/groupsa/groupsa/model"

// MoveDelta computes the peer-preference score change for a single student
// s leaving a group (whose remaining membership is oldIDs, i.e. the source
// group's ids with s already removed) and entering another group (whose
// membership before the add is newIDs). Both s's own preferences and peers'
// preferences toward s are accounted in one pass.
//
// Complexity: O(|s.Liked|+|s.Disliked|+|oldIDs|+|newIDs|).
func MoveDelta(idx *model.Index, w model.Weights, s int, oldIDs, newIDs []int) float64 {
	st, ok := idx.Student(s)
	if !ok {
		return 0
	}

	delta := w.LikesWeight * float64(countIn(st.Liked, newIDs)-countIn(st.Liked, oldIDs))
	delta -= w.DislikesWeight * float64(countIn(st.Disliked, newIDs)-countIn(st.Disliked, oldIDs))

	for _, o := range oldIDs {
		op, ok := idx.Student(o)
		if !ok {
			continue
		}
		if hasID(op.Liked, s) {
			delta -= w.LikesWeight
		}
		if hasID(op.Disliked, s) {
			delta += w.DislikesWeight
		}
	}
	for _, o := range newIDs {
		op, ok := idx.Student(o)
		if !ok {
			continue
		}
		if hasID(op.Liked, s) {
			delta += w.LikesWeight
		}
		if hasID(op.Disliked, s) {
			delta -= w.DislikesWeight
		}
	}

	return delta
}

// SwapDelta computes the peer-preference score change for exchanging s1
// (whose group, stripped of s1, has membership strippedG1) with s2 (whose
// group, stripped of s2, has membership strippedG2): the sum of the two
// move-deltas computed against each other's stripped membership
// §4.1 "Delta for a swap").
func SwapDelta(idx *model.Index, w model.Weights, s1 int, strippedG1 []int, s2 int, strippedG2 []int) float64 {
	d1 := MoveDelta(idx, w, s1, strippedG1, strippedG2)
	d2 := MoveDelta(idx, w, s2, strippedG2, strippedG1)

	return d1 + d2
}

// ConstraintMoveDelta computes the constraint-penalty change (positive means
// the penalty increases) for moving s from src to dst. src/dst must reflect
// the PRE-move state: s still a member of src, not yet a member of dst
// (the constraint-penalty delta for a single-student move).
//
// ALL constraints are not perturbed by this incremental form; they are
// corrected by the next full rescore.
func ConstraintMoveDelta(idx *model.Index, src, dst *model.Group, s int) float64 {
	st, ok := idx.Student(s)
	if !ok {
		return 0
	}

	var delta float64
	if len(src.StudentIDs) > src.MaxSize {
		delta -= oversizePenalty
	}
	if len(dst.StudentIDs) >= dst.MaxSize {
		delta += oversizePenalty
	}

	for _, c := range dst.Constraints {
		if c.Kind != model.Max || !st.Characteristics[c.Characteristic].IsTrue() {
			continue
		}
		current := dst.CountTrue(idx, c.Characteristic, true)
		delta += maxPenalty * float64(maxInt(0, current+1-c.Value)-maxInt(0, current-c.Value))
	}
	for _, c := range dst.Constraints {
		if c.Kind != model.Some || !st.Characteristics[c.Characteristic].IsTrue() {
			continue
		}
		if dst.CountTrue(idx, c.Characteristic, false) == 0 {
			delta -= somePenalty
		}
	}
	for _, c := range src.Constraints {
		if c.Kind != model.Some || !st.Characteristics[c.Characteristic].IsTrue() {
			continue
		}
		if src.CountTrue(idx, c.Characteristic, false) == 1 {
			delta += somePenalty
		}
	}

	return delta
}

// ConstraintSwapDelta computes the constraint-penalty change for exchanging
// s1 (currently in g1) with s2 (currently in g2). Group sizes are unchanged
// by a swap, so only MAX deltas are computed on both groups; ALL and SOME
// are intentionally skipped as a documented approximation — exact when both
// or neither swapped student carry a characteristic constrained by ALL or
// SOME, and missing the ALL/SOME change when exactly one of them carries it
// "swap approximation").
func ConstraintSwapDelta(idx *model.Index, g1 *model.Group, s1 int, g2 *model.Group, s2 int) float64 {
	st1, ok1 := idx.Student(s1)
	st2, ok2 := idx.Student(s2)
	if !ok1 || !ok2 {
		return 0
	}

	return maxSwapDeltaForGroup(idx, g1, st1, st2) + maxSwapDeltaForGroup(idx, g2, st2, st1)
}

// maxSwapDeltaForGroup computes the MAX-constraint penalty change for g when
// `leaving` departs and `entering` arrives (both events applied together).
func maxSwapDeltaForGroup(idx *model.Index, g *model.Group, leaving, entering *model.Student) float64 {
	var delta float64
	for _, c := range g.Constraints {
		if c.Kind != model.Max {
			continue
		}
		current := g.CountTrue(idx, c.Characteristic, true)
		next := current
		if leaving.Characteristics[c.Characteristic].IsTrue() {
			next--
		}
		if entering.Characteristics[c.Characteristic].IsTrue() {
			next++
		}
		delta += maxPenalty * float64(maxInt(0, next-c.Value)-maxInt(0, current-c.Value))
	}

	return delta
}

func countIn(ids, set []int) int {
	n := 0
	for _, id := range ids {
		if hasID(set, id) {
			n++
		}
	}

	return n
}

func hasID(list []int, id int) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}

	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
