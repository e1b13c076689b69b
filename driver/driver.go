// Package driver implements the multi-restart wrapper around a single
// anneal.Run: it seeds or reuses starting assignments, rescales progress
// reporting across restarts, rebases on the best result at the halfway
// point, and aggregates results either as a single best Project or a
// score-sorted list.
package driver

import (
	"math/rand"
	"sort"

	"github.com/groupsa/groupsa/anneal"
	"github.com/groupsa/groupsa/initializer"
	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/progress"
	"github.com/groupsa/groupsa/rng"
	"github.com/groupsa/groupsa/scorer"
)

// Params configures a driver run.
type Params struct {
	Anneal               anneal.Params
	NumRestarts          int
	UseCurrentAssignment bool
	ReturnAllResults     bool
	Seed                 int64
}

// DefaultParams returns the reference multi-restart configuration.
func DefaultParams() Params {
	return Params{
		Anneal:               anneal.Default(),
		NumRestarts:          10,
		UseCurrentAssignment: true,
		ReturnAllResults:     false,
		Seed:                 1,
	}
}

// RestartResult pairs a restart's final score with its resulting Project.
type RestartResult struct {
	RestartIndex int
	Score        float64
	Project      *model.Project
}

// Outcome is the result of a full multi-restart run.
type Outcome struct {
	Best        *model.Project
	BestScore   float64
	All         []RestartResult // populated only when Params.ReturnAllResults is set
	RestartsRun int
	Cancelled   bool
}

// Run executes Params.NumRestarts restarts of anneal.Run over p, applying
// the restart-0-uses-caller's-assignment rule, mid-run rebasing at restart
// ⌊N/2⌋, and earliest-restart-wins tie-breaking on the final sort. p is
// never mutated. report and cancel may be nil/zero-valued.
func Run(p *model.Project, params Params, report progress.Reporter, cancel *progress.Flag) Outcome {
	if len(p.Students) == 0 || len(p.Groups) == 0 {
		score := scorer.Score(p)
		if report != nil {
			report(progress.Event{BestScore: score})
		}
		return Outcome{Best: p.Clone(), BestScore: score}
	}

	base := p.Clone()
	rebaseAt := params.NumRestarts / 2

	var results []RestartResult
	var bestSoFar *RestartResult
	offset := 0

	for i := 0; i < params.NumRestarts; i++ {
		if cancel.Cancelled() {
			return finish(results, bestSoFar, p, true, params.ReturnAllResults)
		}

		seed := rng.DeriveSeed(params.Seed, uint64(i))
		r := rng.FromSeed(seed)

		start := startingProject(base, i, params.UseCurrentAssignment, r)
		startScore := scorer.Score(start)

		restartReport := report
		if report != nil {
			shift := offset
			restartReport = func(e progress.Event) {
				e.Iteration += shift
				report(e)
			}
		}
		res := anneal.Run(start, startScore, params.Anneal, r, i, restartReport, cancel)
		offset += res.Iterations

		rr := RestartResult{RestartIndex: i, Score: scorer.Score(res.Best), Project: res.Best}
		results = append(results, rr)
		if bestSoFar == nil || rr.Score > bestSoFar.Score {
			bestSoFar = &rr
		}

		if i == rebaseAt && bestSoFar != nil {
			base = bestSoFar.Project.Clone()
		}
	}

	return finish(results, bestSoFar, p, cancel.Cancelled(), params.ReturnAllResults)
}

func startingProject(base *model.Project, restartIdx int, useCurrent bool, r *rand.Rand) *model.Project {
	if restartIdx == 0 && useCurrent {
		return base.Clone()
	}

	return initializer.Seed(base, r)
}

func finish(results []RestartResult, best *RestartResult, fallback *model.Project, cancelled, returnAll bool) Outcome {
	if best == nil {
		return Outcome{Best: fallback.Clone(), BestScore: scorer.Score(fallback), Cancelled: cancelled}
	}

	var sorted []RestartResult
	if returnAll {
		sorted = append(sorted, results...)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].RestartIndex < sorted[j].RestartIndex
	})

	return Outcome{
		Best:        best.Project,
		BestScore:   best.Score,
		All:         sorted,
		RestartsRun: len(results),
		Cancelled:   cancelled,
	}
}
