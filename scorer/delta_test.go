package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/scorer"
)

// buildMoveProject returns a project with 5 students, 2 groups, assorted
// preferences, used to cross-check incremental deltas against full rescore.
func buildMoveProject() *model.Project {
	students := []model.Student{
		{ID: 1, Liked: []int{2, 3}, Disliked: []int{4}, Characteristics: map[string]model.CharValue{}},
		{ID: 2, Liked: []int{1}, Characteristics: map[string]model.CharValue{}},
		{ID: 3, Disliked: []int{1}, Characteristics: map[string]model.CharValue{}},
		{ID: 4, Liked: []int{5}, Characteristics: map[string]model.CharValue{}},
		{ID: 5, Disliked: []int{4}, Characteristics: map[string]model.CharValue{}},
	}

	return &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 5, StudentIDs: []int{1, 2, 3}},
			{Name: "B", MaxSize: 5, StudentIDs: []int{4, 5}},
		},
		Weights: model.DefaultWeights(),
	}
}

func TestMoveDeltaMatchesFullRescore(t *testing.T) {
	p := buildMoveProject()
	idx := model.NewIndex(p)

	before := scorer.Score(p)

	src := &p.Groups[0] // A: {1,2,3}
	dst := &p.Groups[1] // B: {4,5}

	oldIDs := stripID(src.StudentIDs, 1) // A minus student 1
	newIDs := append([]int(nil), dst.StudentIDs...)

	peerDelta := scorer.MoveDelta(idx, p.Weights, 1, oldIDs, newIDs)
	constraintDelta := scorer.ConstraintMoveDelta(idx, src, dst, 1)

	// Physically apply the move and rescore from scratch.
	src.StudentIDs = oldIDs
	dst.StudentIDs = append(dst.StudentIDs, 1)
	after := scorer.Score(p)

	require.InDelta(t, after-before, peerDelta-constraintDelta, 1e-9)
}

func TestSwapDeltaMatchesFullRescore(t *testing.T) {
	p := buildMoveProject()
	idx := model.NewIndex(p)

	before := scorer.Score(p)

	g1 := &p.Groups[0] // A: {1,2,3}
	g2 := &p.Groups[1] // B: {4,5}

	strippedG1 := stripID(g1.StudentIDs, 1)
	strippedG2 := stripID(g2.StudentIDs, 4)

	peerDelta := scorer.SwapDelta(idx, p.Weights, 1, strippedG1, 4, strippedG2)
	constraintDelta := scorer.ConstraintSwapDelta(idx, g1, 1, g2, 4)

	// Apply swap physically: 1 <-> 4.
	g1.StudentIDs = append(strippedG1, 4)
	g2.StudentIDs = append(strippedG2, 1)
	after := scorer.Score(p)

	require.InDelta(t, after-before, peerDelta-constraintDelta, 1e-9)
}

func TestConstraintMoveDeltaOversize(t *testing.T) {
	p := &model.Project{
		Students: []model.Student{
			{ID: 1, Characteristics: map[string]model.CharValue{}},
			{ID: 2, Characteristics: map[string]model.CharValue{}},
		},
		Groups: []model.Group{
			{Name: "A", MaxSize: 1, StudentIDs: []int{1, 2}}, // oversize by 1
			{Name: "B", MaxSize: 1, StudentIDs: []int{}},
		},
		Weights: model.DefaultWeights(),
	}
	idx := model.NewIndex(p)
	delta := scorer.ConstraintMoveDelta(idx, &p.Groups[0], &p.Groups[1], 1)
	// Removing from an oversized A relieves 100; B has room (0 < maxSize 1), no hit.
	require.Equal(t, -100.0, delta)
}

func TestConstraintMoveDeltaMax(t *testing.T) {
	x := model.CharValue{Kind: model.CharBool, Bool: true}
	p := &model.Project{
		Students: []model.Student{
			{ID: 1, Characteristics: map[string]model.CharValue{"X": x}},
			{ID: 2, Characteristics: map[string]model.CharValue{"X": x}},
		},
		Groups: []model.Group{
			{Name: "A", MaxSize: 5, StudentIDs: []int{1}},
			{Name: "B", MaxSize: 5, StudentIDs: []int{2}, Constraints: []model.Constraint{{Characteristic: "X", Kind: model.Max, Value: 1}}},
		},
		Weights: model.DefaultWeights(),
	}
	idx := model.NewIndex(p)
	delta := scorer.ConstraintMoveDelta(idx, &p.Groups[0], &p.Groups[1], 1)
	// B already has 1 X-holder at cap 1; adding a 2nd pushes excess from 0 to 1 => +50.
	require.Equal(t, 50.0, delta)
}

func stripID(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
