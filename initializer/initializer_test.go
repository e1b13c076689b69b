package initializer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsa/groupsa/initializer"
	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/rng"
)

func newStudents(n int) []model.Student {
	out := make([]model.Student, n)
	for i := 0; i < n; i++ {
		out[i] = model.Student{ID: i + 1, Characteristics: map[string]model.CharValue{}}
	}

	return out
}

func TestSeedAssignsEveryStudentExactlyOnce(t *testing.T) {
	students := newStudents(10)
	p := &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 5},
			{Name: "B", MaxSize: 5},
		},
		Weights: model.DefaultWeights(),
	}

	out := initializer.Seed(p, rng.FromSeed(7))

	seen := map[int]int{}
	for _, g := range out.Groups {
		for _, sid := range g.StudentIDs {
			seen[sid]++
		}
	}
	require.Len(t, seen, 10)
	for id, count := range seen {
		require.Equalf(t, 1, count, "student %d assigned %d times", id, count)
	}
}

func TestSeedKeepsPinnedStudents(t *testing.T) {
	students := newStudents(4)
	p := &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 4, StudentIDs: []int{1}, PinnedStudentIDs: []int{1}},
			{Name: "B", MaxSize: 4},
		},
		Weights: model.DefaultWeights(),
	}

	out := initializer.Seed(p, rng.FromSeed(1))
	require.Contains(t, out.Groups[0].StudentIDs, 1)
	require.Equal(t, []int{1}, out.Groups[0].PinnedStudentIDs)
}

func TestSeedSatisfiesALLWhenCapacityAllows(t *testing.T) {
	students := newStudents(6)
	students[0].Characteristics["X"] = model.CharValue{Kind: model.CharBool, Bool: true}
	students[1].Characteristics["X"] = model.CharValue{Kind: model.CharBool, Bool: true}
	p := &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 6, Constraints: []model.Constraint{{Characteristic: "X", Kind: model.All}}},
			{Name: "B", MaxSize: 6},
		},
		Weights: model.DefaultWeights(),
	}

	out := initializer.Seed(p, rng.FromSeed(3))
	require.Contains(t, out.Groups[0].StudentIDs, 1)
	require.Contains(t, out.Groups[0].StudentIDs, 2)
}

func TestSeedDeterministicForSameSeed(t *testing.T) {
	students := newStudents(12)
	p := &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 6},
			{Name: "B", MaxSize: 6},
		},
		Weights: model.DefaultWeights(),
	}

	a := initializer.Seed(p, rng.FromSeed(42))
	b := initializer.Seed(p, rng.FromSeed(42))
	require.Equal(t, a.Groups[0].StudentIDs, b.Groups[0].StudentIDs)
	require.Equal(t, a.Groups[1].StudentIDs, b.Groups[1].StudentIDs)
}
