package search

import (
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// WaveformToWells materializes every set pose in wave into a successor
// State: each bit stamps the piece's 4-row occupancy into well, rows that
// become completely filled are cleared and the stack above them compacts
// downward, and the clear count k adds k*k to the resulting score. Two
// distinct bits may produce equal states; deduplication, if wanted, is the
// caller's responsibility.
func WaveformToWells(tb *piece.Tables, wave well.Wave, height int, p piece.Index, s well.State) []well.State {
	var out []well.State
	for i := 0; i < well.WaveSize; i++ {
		if wave&(well.Wave(1)<<uint(i)) == 0 {
			continue
		}
		out = append(out, materializeOne(tb, i, height, p, s))
	}
	return out
}

func materializeOne(tb *piece.Tables, pose int, height int, p piece.Index, s well.State) well.State {
	nw := s.Well
	stamp := tb.PieceSlice[p][pose]
	for j := 0; j < 4; j++ {
		row := height - 4 + j
		if row < 0 || row >= well.EffHeight {
			continue
		}
		nw[row] |= stamp[j]
	}

	var compacted well.Well
	write := well.EffHeight - 1
	var cleared int
	for row := well.EffHeight - 1; row >= 0; row-- {
		if nw[row] == well.FullRow {
			cleared++
			continue
		}
		compacted[write] = nw[row]
		write--
	}

	return well.State{
		Well:  compacted,
		Score: s.Score + well.Score(cleared*cleared),
	}
}
