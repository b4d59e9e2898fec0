package search

import (
	"context"
	"math/rand"
	"sort"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// Tableset is the per-piece Tables frozen at initialization, indexed by
// piece.Index.
type Tableset [piece.PieceCount]*piece.Tables

// SingleMove computes resting waveforms for every piece, chooses one piece
// according to conf.Policy, and returns all materialized successors for that
// piece. rng is consulted only under Policy == Random; pass a *rand.Rand
// seeded from conf.Seed for reproducibility.
func SingleMove(ctx context.Context, tbs Tableset, s well.State, conf Conf, rng *rand.Rand) []well.State {
	if contextx.IsCancelled(ctx) {
		return nil
	}

	waves := make([]restingSet, piece.PieceCount)
	for p := 0; p < piece.PieceCount; p++ {
		waves[p] = restingSet{p: piece.Index(p), passes: RestingWaveforms(tbs[p], piece.Index(p), s.Well)}
	}

	var chosen piece.Index
	switch conf.Policy {
	case Random:
		chosen = piece.Index(rng.Intn(piece.PieceCount))
	default:
		chosen = adversarialChoice(tbs, waves, s.Well)
	}

	return materializeAll(tbs[chosen], chosen, waves[chosen], s)
}

type restingSet struct {
	p      piece.Index
	passes []WaveAtHeight
}

func (r restingSet) maxHeight(tb *piece.Tables, w well.Well) int {
	best := -well.WellLine
	for _, pass := range r.passes {
		if h := WaveHeight(tb, r.p, pass.Wave, pass.Height, w); h > best {
			best = h
		}
	}
	return best
}

// adversarialChoice selects the piece minimizing the player's best
// attainable height across its resting waves, i.e. the worst piece the
// player could be dealt.
func adversarialChoice(tbs Tableset, waves []restingSet, w well.Well) piece.Index {
	best := piece.Index(0)
	bestHeight := well.WellLine + 1
	for p := 0; p < piece.PieceCount; p++ {
		h := waves[p].maxHeight(tbs[p], w)
		if h < bestHeight {
			bestHeight = h
			best = piece.Index(p)
		}
	}
	return best
}

// piecesByAscendingHeight orders all pieces by their max attainable height in
// w, smallest (worst-for-the-player) first. The first entry is the
// Adversarial choice adversarialChoice would make.
func piecesByAscendingHeight(tbs Tableset, w well.Well) []restingSet {
	sets := make([]restingSet, piece.PieceCount)
	for p := 0; p < piece.PieceCount; p++ {
		sets[p] = restingSet{p: piece.Index(p), passes: RestingWaveforms(tbs[p], piece.Index(p), w)}
	}

	order := make([]restingSet, piece.PieceCount)
	copy(order, sets)
	sort.Slice(order, func(i, j int) bool {
		return order[i].maxHeight(tbs[order[i].p], w) < order[j].maxHeight(tbs[order[j].p], w)
	})
	return order
}

func materializeAll(tb *piece.Tables, p piece.Index, r restingSet, s well.State) []well.State {
	var out []well.State
	for _, pass := range r.passes {
		out = append(out, WaveformToWells(tb, pass.Wave, pass.Height, p, s)...)
	}
	return out
}
