// Package scorer computes the compound objective the annealer maximizes:
// a peer-preference score (likes rewarded, dislikes penalized, counted from
// both sides of the relation) minus a constraint penalty (ALL/SOME/MAX soft
// rules). It also exposes incremental delta forms so the annealer's inner
// loop never pays for a full rescore per candidate move.
//
// Design principles:
//   - Deterministic, side-effect free functions; no RNG, no logging.
//   - No hidden allocations in the delta hot path; full-recompute forms are
//     reserved for run boundaries (start-of-run, per-restart final rescore).
//   - Fixed formulas: every constant (50, 25, 100) and every comparison is
//     applied consistently between the full and incremental forms; see
//     delta.go for the per-rule derivations.
package scorer

// Penalty constants.
const (
	// allPenalty is charged per missing ALL-constraint holder.
	allPenalty = 50.0
	// maxPenalty is charged per excess MAX-constraint holder.
	maxPenalty = 50.0
	// somePenalty is the flat charge for an unsatisfied SOME constraint.
	somePenalty = 25.0
	// oversizePenalty is charged per student beyond a group's MaxSize.
	oversizePenalty = 100.0
)
