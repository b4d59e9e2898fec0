package search

import (
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// WaveAtHeight pairs a wave with the height it was computed at.
type WaveAtHeight struct {
	Wave   well.Wave
	Height int
}

// RestingWaveforms enumerates all resting placements of piece p in w: poses
// the piece can occupy and from which it cannot slide or rotate into a
// strictly lower position. It propagates reachability across every height
// from the well's surface down to the floor, then subtracts each pass's
// deeper wave from the one above it, since a pose that survives propagation
// at two consecutive heights is only resting at the lower one.
func RestingWaveforms(tb *piece.Tables, p piece.Index, w well.Well) []WaveAtHeight {
	height := w.Height()
	wave := tb.EmptyMask[p]

	var passes []WaveAtHeight
	for wave != 0 && height+1 < well.WellHeight {
		wave = Step(tb, p, wave, height, w)

		var hMask well.Wave
		if height < 4 {
			k := 3 - min(height, 3)
			hMask = tb.HeightMask[p][k]
		}

		passes = append(passes, WaveAtHeight{Wave: wave &^ hMask, Height: height})
		height++
	}

	for i := 0; i < len(passes)-1; i++ {
		passes[i].Wave &^= passes[i+1].Wave
	}
	return passes
}
