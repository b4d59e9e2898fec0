package search

import (
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// Step expands reachability by one BFS layer over the pose lattice: starting
// from wOld, it repeatedly applies the two horizontal shifts (single-column
// moves) and the two rotate masks (the two rotation directions), masking out
// collisions after every round, until no new pose is discovered.
//
// height is the index of the row immediately below the 4-row window the
// piece's stamp is tested against, per well.Well.Slice.
func Step(tb *piece.Tables, p piece.Index, wOld well.Wave, height int, w well.Well) well.Wave {
	slice := w.Slice(height)

	mask := tb.EmptyMask[p]
	for r := 0; r < 4; r++ {
		mask &= tb.RowMask[p][slice[r]][r]
	}

	wave := wOld & mask
	seen := wave
	for {
		expanded := (wave << well.ColumnShift) | (wave >> well.ColumnShift) |
			((wave & well.RotateLeftMask) << uint(well.Rotations/2)) |
			((wave & well.RotateRightMask) >> uint(well.Rotations/2)) |
			wave
		wave = expanded & mask

		next := wave &^ seen
		seen |= wave
		if next == 0 {
			break
		}
	}
	return wave
}
