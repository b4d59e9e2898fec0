package search

import (
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// ScoreSlice returns, for each window offset r in 0..4, the subset of wave's
// poses that completely fill well row r of the 4-row window at height.
func ScoreSlice(tb *piece.Tables, p piece.Index, wave well.Wave, height int, w well.Well) [4]well.Wave {
	slice := w.Slice(height)

	var out [4]well.Wave
	for r := 0; r < 4; r++ {
		out[r] = tb.ScoreMask[p][slice[r]][r] & wave
	}
	return out
}

// Scores partitions the bits of wave into five buckets by line-clear count
// (0 through 4), given the per-row completion masks from ScoreSlice. Each
// pose occupies at most four window rows, so its count never exceeds 4; the
// buckets are derived via a bit-sliced adder over the four slices so that
// the classification is exact and partitions wave exactly.
func Scores(tb *piece.Tables, p piece.Index, wave well.Wave, height int, w well.Well) [5]well.Wave {
	slice := ScoreSlice(tb, p, wave, height, w)

	sum1, carry1 := slice[0]^slice[1], slice[0]&slice[1]
	sum2, carry2 := slice[2]^slice[3], slice[2]&slice[3]

	bit0 := sum1 ^ sum2
	carry3 := sum1 & sum2

	t1 := carry1 ^ carry2
	t2 := carry1 & carry2
	bit1 := t1 ^ carry3
	bit2 := t2 | (t1 & carry3)

	var out [5]well.Wave
	out[0] = ^bit2 & ^bit1 & ^bit0 & wave
	out[1] = ^bit2 & ^bit1 & bit0 & wave
	out[2] = ^bit2 & bit1 & ^bit0 & wave
	out[3] = ^bit2 & bit1 & bit0 & wave
	out[4] = bit2 & wave
	return out
}
