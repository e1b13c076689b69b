// Package anneal implements the single-restart simulated-annealing control
// loop: cooling, Metropolis acceptance, reheating on stagnation, and
// best-snapshot tracking over a neighborhood.Assignment.
package anneal

import (
	"math"
	"math/rand"

	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/neighborhood"
	"github.com/groupsa/groupsa/progress"
	"github.com/groupsa/groupsa/scorer"
)

// Params configures a single run of Run. The zero value is not usable;
// callers should start from Default() and override fields as needed.
type Params struct {
	InitialTemp    float64
	CoolingRate    float64
	MinTemp        float64
	MaxIterations  int
	StagnationCap  int
	ProgressStride int

	MoveSwapProb   float64
	MoveRandomProb float64
	// MoveSmartProb is implicit: 1 - MoveSwapProb - MoveRandomProb.
}

// Default returns the reference parameter set.
func Default() Params {
	return Params{
		InitialTemp:    150.0,
		CoolingRate:    0.9997,
		MinTemp:        0.01,
		MaxIterations:  30000,
		StagnationCap:  500,
		ProgressStride: 100,
		MoveSwapProb:   0.45,
		MoveRandomProb: 0.30,
	}
}

// Result is the outcome of a single run: the best assignment found and its
// score, plus the number of iterations actually executed.
type Result struct {
	Best       *model.Project
	BestScore  float64
	Iterations int
}

// Run anneals p (p is cloned; the caller's Project is never mutated),
// starting from currentScore, polling cancel every iteration and emitting
// progress every params.ProgressStride iterations. restartIdx is carried
// through only for progress labeling and has no effect on the algorithm.
// report may be nil.
func Run(p *model.Project, currentScore float64, params Params, r *rand.Rand, restartIdx int, report progress.Reporter, cancel *progress.Flag) Result {
	working := p.Clone()
	a := neighborhood.New(working)

	bestState := working.Clone()
	bestScore := currentScore
	current := currentScore

	t := params.InitialTemp
	stagnation := 0
	iter := 0

	for t >= params.MinTemp && iter < params.MaxIterations {
		if cancel.Cancelled() {
			break
		}

		if delta, ok := step(a, params, r, t); ok {
			current += delta
			if current > bestScore {
				bestScore = current
				bestState = working.Clone()
				stagnation = 0
			} else {
				stagnation++
			}
		} else {
			stagnation++
		}

		t *= params.CoolingRate
		if stagnation > params.StagnationCap {
			t = math.Min(4*t, 0.6*params.InitialTemp)
			stagnation = 0
		}

		iter++
		if report != nil && iter%params.ProgressStride == 0 {
			report(progress.Event{Restart: restartIdx, Iteration: iter, Temperature: t, BestScore: bestScore})
		}
	}

	return Result{Best: bestState, BestScore: bestScore, Iterations: iter}
}

// step samples one move kind, proposes a candidate, computes its delta
// against the pre-move state, applies it, and runs the Metropolis test at
// temperature t. On rejection the mutation is rolled back before step
// returns, so the caller only ever observes the net effect: (delta, true)
// if accepted, or (0, false) if no candidate was generated or the move was
// rejected.
func step(a *neighborhood.Assignment, params Params, r *rand.Rand, t float64) (float64, bool) {
	roll := r.Float64()
	switch {
	case roll < params.MoveSwapProb:
		return stepSwap(a, r, t)
	case roll < params.MoveSwapProb+params.MoveRandomProb:
		c, ok := neighborhood.GenerateRandomMove(a, r)
		if !ok {
			return 0, false
		}
		return stepMove(a, c, r, t)
	default:
		c, ok := neighborhood.GenerateSmartMove(a, r)
		if !ok {
			return 0, false
		}
		return stepMove(a, c, r, t)
	}
}

func stepSwap(a *neighborhood.Assignment, r *rand.Rand, t float64) (float64, bool) {
	c, ok := neighborhood.GenerateSwap(a, r)
	if !ok {
		return 0, false
	}

	g1, g2 := a.Group(c.G1), a.Group(c.G2)
	strippedG1 := a.MembersExcluding(c.G1, c.S1)
	strippedG2 := a.MembersExcluding(c.G2, c.S2)
	peerDelta := scorer.SwapDelta(a.Index, a.Project.Weights, c.S1, strippedG1, c.S2, strippedG2)
	constraintDelta := scorer.ConstraintSwapDelta(a.Index, g1, c.S1, g2, c.S2)
	delta := peerDelta - constraintDelta

	rec := a.ApplySwap(c)
	if accept(delta, t, r) {
		return delta, true
	}
	a.UndoSwap(rec)
	return 0, false
}

func stepMove(a *neighborhood.Assignment, c neighborhood.MoveCandidate, r *rand.Rand, t float64) (float64, bool) {
	src, dst := a.Group(c.SrcGroup), a.Group(c.DstGroup)
	oldIDs := a.MembersExcluding(c.SrcGroup, c.Student)
	newIDs := a.Members(c.DstGroup)
	peerDelta := scorer.MoveDelta(a.Index, a.Project.Weights, c.Student, oldIDs, newIDs)
	constraintDelta := scorer.ConstraintMoveDelta(a.Index, src, dst, c.Student)
	delta := peerDelta - constraintDelta

	rec := a.ApplyMove(c)
	if accept(delta, t, r) {
		return delta, true
	}
	a.UndoMove(rec)
	return 0, false
}

// accept implements the Metropolis criterion: improving moves are always
// accepted; worsening moves are accepted with probability exp(delta/t).
func accept(delta, t float64, r *rand.Rand) bool {
	if delta > 0 {
		return true
	}
	return r.Float64() < math.Exp(delta/t)
}
