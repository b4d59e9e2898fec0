package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/wellforge/hatetris-core/pkg/heuristic"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// ScoredState pairs a successor State with its heuristic value.
type ScoredState struct {
	State     well.State
	Heuristic float64
}

type frontierKey struct {
	state well.State
	depth int
}

// NetworkHeuristic generates legal successors of s via SingleMove and scores
// each with the network's forward pass. If conf.Quiescent is set, it then
// runs up to conf.MaxPlay rounds of quiescence expansion: at each round, the
// frontier of states reached so far is extended by single-line-clearing
// continuations only (a successor survives iff its cumulative score delta
// from its depth-0 ancestor equals the round number), and every original
// successor from which a newly discovered state was reached has its heuristic raised
// to the max of its current value and the new state's non-quiescent
// evaluation.
func NetworkHeuristic(ctx context.Context, tbs Tableset, net heuristic.Network, s well.State, weight *heuristic.Weight, conf Conf, rng *rand.Rand) []ScoredState {
	successors := SingleMove(ctx, tbs, s, conf, rng)

	out := make([]ScoredState, len(successors))
	for i, succ := range successors {
		out[i] = ScoredState{State: succ, Heuristic: net.ForwardPass(net.DecomposeWell(succ.Well), weight)}
	}

	if !conf.Quiescent || conf.MaxPlay == 0 {
		return out
	}
	if contextx.IsCancelled(ctx) {
		return out
	}

	logw.Debugf(ctx, "expanding quiescence for %v successors, max_play=%v", len(successors), conf.MaxPlay)
	return expandQuiescence(ctx, tbs, net, successors, out, weight, conf, rng)
}

func isSingleClearContinuation(ns well.State, indices []int, successors []well.State, depth int) bool {
	for _, i := range indices {
		if int(ns.Score)-int(successors[i].Score) == depth+1 {
			return true
		}
	}
	return false
}

func mergeIndices(existing, add []int) []int {
	seen := make(map[int]bool, len(existing))
	for _, i := range existing {
		seen[i] = true
	}
	for _, i := range add {
		if !seen[i] {
			existing = append(existing, i)
			seen[i] = true
		}
	}
	return existing
}

// NetworkHeuristicIndividual evaluates s itself directly with the network's
// forward pass — it never expands s into successors. It is the scalar
// variant used to score newly-discovered quiescence frontier states.
func NetworkHeuristicIndividual(ctx context.Context, tbs Tableset, net heuristic.Network, s well.State, weight *heuristic.Weight, conf Conf, rng *rand.Rand) float64 {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	return net.ForwardPass(net.DecomposeWell(s.Well), weight)
}
