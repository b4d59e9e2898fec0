package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/search"
	"github.com/wellforge/hatetris-core/pkg/well"
)

func TestStandardTablesValidate(t *testing.T) {
	tb := piece.StandardTables()
	require.NoError(t, tb.Validate())
}

func TestStandardTablesEmptyMaskNonEmpty(t *testing.T) {
	tb := piece.StandardTables()
	for p := 0; p < piece.PieceCount; p++ {
		assert.NotZerof(t, tb.EmptyMask[p], "piece %v has no legal spawn pose", piece.Index(p))
	}
}

func TestOPieceHasSingleRotationShape(t *testing.T) {
	tb := piece.StandardTables()
	for column := 0; column < well.Columns-1; column++ {
		p0 := well.Pose(column, 0)
		for r := 1; r < well.Rotations; r++ {
			pr := well.Pose(column, r)
			assert.Equal(t, tb.PieceSlice[piece.O][p0], tb.PieceSlice[piece.O][pr])
		}
	}
}

func TestIPieceHorizontalSpawnStampsBottomRow(t *testing.T) {
	tb := piece.StandardTables()
	pose := well.Pose(0, 0)
	stamp := tb.PieceSlice[piece.I][pose]
	assert.Zero(t, stamp[0])
	assert.Zero(t, stamp[1])
	assert.Zero(t, stamp[2])
	assert.Equal(t, well.Row(0b1111), stamp[3])
}

// TestIPieceHorizontalRestsFlushAgainstFloor exercises a full
// RestingWaveforms/WaveformToWells round trip on an empty well instead of
// inspecting the raw stamp, so a regression in how a pose's stamp is
// anchored within its 4-row window is actually caught: a piece shorter than
// the window must still end up flush against row EffHeight-1, not stranded
// with an empty row beneath it.
func TestIPieceHorizontalRestsFlushAgainstFloor(t *testing.T) {
	tb := piece.StandardTables()

	var w well.Well
	passes := search.RestingWaveforms(tb, piece.I, w)
	require.NotEmpty(t, passes)

	// The final pass is the empty wave that ends propagation; take the
	// lowest pass that still holds resting poses.
	var last search.WaveAtHeight
	for i := len(passes) - 1; i >= 0; i-- {
		if passes[i].Wave != 0 {
			last = passes[i]
			break
		}
	}
	require.NotZero(t, last.Wave)

	var horizontal well.Wave
	for column := 0; column < well.Columns; column++ {
		horizontal |= well.Wave(1)<<uint(well.Pose(column, 0)) | well.Wave(1)<<uint(well.Pose(column, 2))
	}

	states := search.WaveformToWells(tb, last.Wave&horizontal, last.Height, piece.I, well.State{Well: w})
	require.NotEmpty(t, states)

	for _, s := range states {
		assert.NotZero(t, s.Well[well.EffHeight-1], "piece must rest on the bottom row")
		assert.Zero(t, s.Well[well.EffHeight-2], "nothing should be resting above an otherwise empty well")
	}
}

func TestIPieceHorizontalOutOfBoundsColumnHasNoPose(t *testing.T) {
	tb := piece.StandardTables()
	pose := well.Pose(well.Columns-1, 0)
	assert.Zero(t, tb.EmptyMask[piece.I]&(well.Wave(1)<<uint(pose)))
}

func TestScoreMaskMatchesCompleteRow(t *testing.T) {
	tb := piece.StandardTables()
	pose := well.Pose(0, 0)

	full := tb.PieceSlice[piece.I][pose][3]
	rowValue := int(well.FullRow &^ full)

	bit := well.Wave(1) << uint(pose)
	assert.NotZero(t, tb.ScoreMask[piece.I][rowValue][3]&bit)
}

func TestHeightMaskPartitionsPoses(t *testing.T) {
	tb := piece.StandardTables()
	for p := 0; p < piece.PieceCount; p++ {
		var union well.Wave
		for r := 0; r < 4; r++ {
			assert.Zero(t, union&tb.HeightMask[p][r], "overlapping HeightMask buckets for piece %v", piece.Index(p))
			union |= tb.HeightMask[p][r]
		}
		assert.Equal(t, tb.EmptyMask[p], union)
	}
}
