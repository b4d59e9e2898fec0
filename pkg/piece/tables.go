// Package piece holds the frozen per-piece lookup tables the reachability
// engine in package search treats as precomputed inputs (spec.md §3): the
// 4-row occupancy stamp of every pose, the spawn-frontier mask, and the
// per-row-value collision/height/score masks. geometry.go builds a concrete
// set of these tables for the seven standard tetrominoes; package search
// never depends on how a Tables value was produced.
package piece

import (
	"fmt"

	"github.com/wellforge/hatetris-core/pkg/well"
)

// Index identifies one of the PieceCount pieces.
type Index int

// PieceCount is the number of distinct pieces a Tables value describes.
const PieceCount = 7

const (
	I Index = iota
	O
	T
	S
	Z
	L
	J
)

func (p Index) String() string {
	switch p {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case L:
		return "L"
	case J:
		return "J"
	default:
		return fmt.Sprintf("Piece(%d)", int(p))
	}
}

// maxRow is the number of distinct row bit patterns (one entry per possible
// 10-bit row value).
const maxRow = int(well.FullRow) + 1

// Tables is the frozen-at-initialization lookup data for every piece:
//
//   - PieceSlice[p][i]: the 4-row occupancy stamp of pose i, anchored at the
//     bottom of the window (stamp row 3 is the row tested against the floor
//     boundary in well.Slice/search.Step; rows above the piece's own
//     bounding-box height are zero).
//   - EmptyMask[p]: poses legal on an all-empty 4-row window, i.e. poses
//     whose column range fits the board (the spawn frontier).
//   - RowMask[p][rowValue][r]: poses whose stamp row r does not collide with
//     an existing well row equal to rowValue.
//   - HeightMask[p][r]: poses whose top-most occupied stamp row is r (varies
//     with the piece's own bounding-box height, since every pose shares the
//     same bottom-most occupied row, 3).
//   - ScoreMask[p][rowValue][r]: poses that completely fill window row r
//     when placed against an existing row equal to rowValue.
type Tables struct {
	PieceSlice [PieceCount][well.WaveSize][4]well.Row
	EmptyMask  [PieceCount]well.Wave
	RowMask    [PieceCount][maxRow][4]well.Wave
	HeightMask [PieceCount][4]well.Wave
	ScoreMask  [PieceCount][maxRow][4]well.Wave
}

const fullWave = well.Wave(1)<<uint(well.WaveSize) - 1

// Validate fails fast on invariant violations (spec.md §7): any mask bit set
// outside the WaveSize lattice, or any stamp row using columns outside the
// board. It is meant to be called once after a Tables value is constructed
// or loaded, not on the search hot path.
func (t *Tables) Validate() error {
	for p := 0; p < PieceCount; p++ {
		if t.EmptyMask[p]&^fullWave != 0 {
			return fmt.Errorf("piece %v: EmptyMask has bits outside WaveSize", Index(p))
		}
		for r := 0; r < 4; r++ {
			if t.HeightMask[p][r]&^fullWave != 0 {
				return fmt.Errorf("piece %v: HeightMask[%d] has bits outside WaveSize", Index(p), r)
			}
			for i := 0; i < well.WaveSize; i++ {
				if t.PieceSlice[p][i][r]&^well.FullRow != 0 {
					return fmt.Errorf("piece %v pose %d: stamp row %d uses columns outside the board", Index(p), i, r)
				}
			}
		}
		for rv := 0; rv < maxRow; rv++ {
			for r := 0; r < 4; r++ {
				if t.RowMask[p][rv][r]&^fullWave != 0 {
					return fmt.Errorf("piece %v: RowMask[%d][%d] has bits outside WaveSize", Index(p), rv, r)
				}
				if t.ScoreMask[p][rv][r]&^fullWave != 0 {
					return fmt.Errorf("piece %v: ScoreMask[%d][%d] has bits outside WaveSize", Index(p), rv, r)
				}
			}
		}
	}
	return nil
}
