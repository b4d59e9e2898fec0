package search

import (
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// WaveHeight returns the maximum attainable column-top row index over the
// poses in wave after placement (lower row index means a taller stack). It
// returns -well.WellLine, a sentinel no real height can reach, when wave is
// empty — "no legal placement for this piece".
func WaveHeight(tb *piece.Tables, p piece.Index, wave well.Wave, height int, w well.Well) int {
	if wave == 0 {
		return -well.WellLine
	}

	wellHeight := w.Height()
	classes := Scores(tb, p, wave, height, w)

	best := -well.WellLine
	var classified well.Wave
	for s := 0; s < 5; s++ {
		for r := 0; r < 4; r++ {
			if tb.HeightMask[p][r]&classes[s] == 0 {
				continue
			}
			candidate := min(wellHeight, height+r-4) + s
			if candidate > best {
				best = candidate
			}
		}

		classified |= classes[s]
		if classified == wave {
			break
		}
	}
	return best
}
