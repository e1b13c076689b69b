package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsa/groupsa/driver"
	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/progress"
	"github.com/groupsa/groupsa/scorer"
)

func buildProject() *model.Project {
	students := make([]model.Student, 9)
	for i := range students {
		students[i] = model.Student{ID: i + 1, Characteristics: map[string]model.CharValue{}}
	}
	students[0].Liked = []int{2, 3}
	students[3].Disliked = []int{4, 5}

	return &model.Project{
		Students: students,
		Groups: []model.Group{
			{Name: "A", MaxSize: 3, StudentIDs: []int{1, 2, 3}},
			{Name: "B", MaxSize: 3, StudentIDs: []int{4, 5, 6}},
			{Name: "C", MaxSize: 3, StudentIDs: []int{7, 8, 9}},
		},
		Weights: model.DefaultWeights(),
	}
}

func TestRunReturnsImprovedOrEqualScore(t *testing.T) {
	p := buildProject()
	start := scorer.Score(p)

	params := driver.DefaultParams()
	params.NumRestarts = 3
	params.Anneal.MaxIterations = 500

	out := driver.Run(p, params, nil, nil)
	require.GreaterOrEqual(t, out.BestScore, start)
	require.InDelta(t, out.BestScore, scorer.Score(out.Best), 1e-9)
}

func TestRunDoesNotMutateCallerProject(t *testing.T) {
	p := buildProject()
	before := p.Clone()

	params := driver.DefaultParams()
	params.NumRestarts = 2
	params.Anneal.MaxIterations = 200
	driver.Run(p, params, nil, nil)

	require.Equal(t, before.Groups, p.Groups)
}

func TestRunReturnAllResultsSortedDescendingWithEarliestTieBreak(t *testing.T) {
	p := buildProject()

	params := driver.DefaultParams()
	params.NumRestarts = 4
	params.ReturnAllResults = true
	params.Anneal.MaxIterations = 200

	out := driver.Run(p, params, nil, nil)
	require.Len(t, out.All, 4)
	for i := 1; i < len(out.All); i++ {
		prev, cur := out.All[i-1], out.All[i]
		if prev.Score == cur.Score {
			require.Less(t, prev.RestartIndex, cur.RestartIndex)
		} else {
			require.Greater(t, prev.Score, cur.Score)
		}
	}
}

func TestRunIsDeterministicForSameSeed(t *testing.T) {
	p := buildProject()

	params := driver.DefaultParams()
	params.NumRestarts = 3
	params.Anneal.MaxIterations = 300
	params.Seed = 77

	out1 := driver.Run(p, params, nil, nil)
	out2 := driver.Run(p, params, nil, nil)

	require.Equal(t, out1.BestScore, out2.BestScore)
	require.Equal(t, out1.Best.Groups, out2.Best.Groups)
}

func TestRunRespectsCancellationBeforeFirstRestart(t *testing.T) {
	p := buildProject()

	var cancel progress.Flag
	cancel.Cancel()

	params := driver.DefaultParams()
	params.NumRestarts = 5

	out := driver.Run(p, params, nil, &cancel)
	require.True(t, out.Cancelled)
	require.Equal(t, 0, out.RestartsRun)
}

func TestRunWithEmptyProjectReturnsInputUnchanged(t *testing.T) {
	p := &model.Project{Weights: model.DefaultWeights()}
	out := driver.Run(p, driver.DefaultParams(), nil, nil)
	require.Equal(t, 0.0, out.BestScore)
	require.Empty(t, out.Best.Students)
}
