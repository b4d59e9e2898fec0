package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/logw"
	"github.com/wellforge/hatetris-core/pkg/heuristic"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// NetworkHeuristicLoop scores the successors of s reachable from the single
// piece with the smallest max attainable height (the adversarial choice),
// then checks the ancestor chain starting at parents[startIdx] for a cycle:
// it walks upward via ParentIndex, stopping at the depth-0 root or at the
// first ancestor whose heuristic or MinPrevHeuristic exceeds this round's max
// heuristic; an ancestor passed on the way whose state and heuristic match
// one of this round's successors exactly indicates the search has
// returned to a previously visited position. The generator stops after the
// first piece considered; see SPEC_FULL.md §9.
func NetworkHeuristicLoop(ctx context.Context, tbs Tableset, net heuristic.Network, s well.State, startIdx int, parents []well.Ancestor, weight *heuristic.Weight, conf Conf, rng *rand.Rand) ([]ScoredState, [][]well.State) {
	order := piecesByAscendingHeight(tbs, s.Well)
	if len(order) == 0 {
		return nil, nil
	}
	chosen := order[0]

	successors := materializeAll(tbs[chosen.p], chosen.p, chosen, s)
	heuristics := make([]ScoredState, len(successors))
	for i, succ := range successors {
		heuristics[i] = ScoredState{State: succ, Heuristic: net.ForwardPass(net.DecomposeWell(succ.Well), weight)}
	}

	if conf.Quiescent && conf.MaxPlay > 0 {
		heuristics = expandQuiescence(ctx, tbs, net, successors, heuristics, weight, conf, rng)
	}

	var maxH float64 = negInf
	for _, sc := range heuristics {
		if sc.Heuristic > maxH {
			maxH = sc.Heuristic
		}
	}

	if len(parents) == 0 || startIdx < 0 || startIdx >= len(parents) {
		return heuristics, nil
	}

	idx := startIdx
	for {
		a := parents[idx]
		if a.Depth <= 0 {
			break
		}
		if a.MinPrevHeuristic > maxH || a.Heuristic > maxH {
			break
		}

		matched := false
		for _, sc := range heuristics {
			if sc.Heuristic == a.Heuristic && sc.State == a.State() {
				matched = true
				break
			}
		}
		if matched {
			logw.Debugf(ctx, "loop detected at ancestor depth=%v", a.Depth)
			return heuristics, [][]well.State{collectChain(parents, idx)}
		}

		idx = a.ParentIndex
	}
	return heuristics, nil
}

func collectChain(parents []well.Ancestor, fromIdx int) []well.State {
	var chain []well.State
	idx := fromIdx
	for {
		a := parents[idx]
		chain = append(chain, a.State())
		if a.Depth <= 0 {
			break
		}
		idx = a.ParentIndex
	}
	return chain
}

// expandQuiescence factors out NetworkHeuristic's frontier-expansion loop so
// NetworkHeuristicLoop can run it against a single already-chosen piece's
// successors instead of SingleMove's output.
func expandQuiescence(ctx context.Context, tbs Tableset, net heuristic.Network, successors []well.State, out []ScoredState, weight *heuristic.Weight, conf Conf, rng *rand.Rand) []ScoredState {
	frontier := map[frontierKey][]int{}
	for i, succ := range successors {
		frontier[frontierKey{state: succ, depth: 0}] = []int{i}
	}

	limit := conf.QuiescencePieceLimit
	if limit <= 0 {
		limit = 1
	}

	for depth := 0; depth < conf.MaxPlay && len(frontier) > 0; depth++ {
		next := map[frontierKey][]int{}
		for key, indices := range frontier {
			for pc := 0; pc < limit && pc < piece.PieceCount; pc++ {
				p := piece.Index(pc)
				passes := RestingWaveforms(tbs[p], p, key.state.Well)
				for _, pass := range passes {
					for _, ns := range WaveformToWells(tbs[p], pass.Wave, pass.Height, p, key.state) {
						if !isSingleClearContinuation(ns, indices, successors, depth) {
							continue
						}
						nk := frontierKey{state: ns, depth: depth + 1}
						next[nk] = mergeIndices(next[nk], indices)
					}
				}
			}
		}

		inner := conf
		inner.Quiescent = false
		for nk, indices := range next {
			h := NetworkHeuristicIndividual(ctx, tbs, net, nk.state, weight, inner, rng)
			for _, i := range indices {
				if h > out[i].Heuristic {
					out[i].Heuristic = h
				}
			}
		}
		frontier = next
	}
	return out
}

const negInf = -1 << 62
