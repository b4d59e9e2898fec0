package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/search"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// TestWaveformToWellsVerticalIInEmptyWell is grounded on scenario S1: placing
// the vertical I piece at column 0 in an empty well produces a successor
// with four occupied cells in column 0 of the bottom four rows and an
// unchanged score.
func TestWaveformToWellsVerticalIInEmptyWell(t *testing.T) {
	tb := piece.StandardTables()
	pose := well.Pose(0, 1) // vertical rotation, column 0
	wave := well.Wave(1) << uint(pose)

	successors := search.WaveformToWells(tb, wave, well.EffHeight, piece.I, well.State{})
	assert.Len(t, successors, 1)

	s := successors[0]
	assert.Equal(t, well.Score(0), s.Score)
	for row := well.EffHeight - 4; row < well.EffHeight; row++ {
		assert.Equal(t, well.Row(1), s.Well[row], "expected column 0 occupied at row %v", row)
	}
}

// TestWaveformToWellsSingleLineClear is grounded on scenario S2: the bottom
// row is full except column 0; placing a vertical I at column 0 clears it,
// and the I's other three cells drop to the bottom three rows of column 0.
func TestWaveformToWellsSingleLineClear(t *testing.T) {
	tb := piece.StandardTables()

	var start well.Well
	start[well.EffHeight-1] = well.FullRow &^ 1

	pose := well.Pose(0, 1)
	wave := well.Wave(1) << uint(pose)

	successors := search.WaveformToWells(tb, wave, well.EffHeight, piece.I, well.State{Well: start, Score: 10})
	assert.Len(t, successors, 1)

	s := successors[0]
	assert.Equal(t, well.Score(11), s.Score)

	var want well.Well
	for row := well.EffHeight - 3; row < well.EffHeight; row++ {
		want[row] = 1
	}
	assert.Equal(t, want, s.Well)
}

// TestWaveformToWellsTetrisClear is grounded on scenario S3: the bottom four
// rows are full except column 9; placing a vertical I at column 9 clears
// all four, adding 16 to score.
func TestWaveformToWellsTetrisClear(t *testing.T) {
	tb := piece.StandardTables()

	var start well.Well
	for row := well.EffHeight - 4; row < well.EffHeight; row++ {
		start[row] = well.FullRow &^ (1 << 9)
	}

	pose := well.Pose(9, 1)
	wave := well.Wave(1) << uint(pose)

	successors := search.WaveformToWells(tb, wave, well.EffHeight, piece.I, well.State{Well: start, Score: 0})
	assert.Len(t, successors, 1)

	s := successors[0]
	assert.Equal(t, well.Score(16), s.Score)
	assert.Equal(t, well.Well{}, s.Well)
}
