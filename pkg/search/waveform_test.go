package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/search"
	"github.com/wellforge/hatetris-core/pkg/well"
)

func TestStepIsSubsetOfEmptyMask(t *testing.T) {
	tb := piece.StandardTables()
	var w well.Well

	out := search.Step(tb, piece.I, tb.EmptyMask[piece.I], well.EffHeight, w)
	assert.Zero(t, out&^tb.EmptyMask[piece.I])
}

// TestStepFixpointIsIdempotent checks invariant 4: reapplying Step to its own
// output yields the same set.
func TestStepFixpointIsIdempotent(t *testing.T) {
	tb := piece.StandardTables()
	var w well.Well

	once := search.Step(tb, piece.T, tb.EmptyMask[piece.T], well.EffHeight, w)
	twice := search.Step(tb, piece.T, once, well.EffHeight, w)
	assert.Equal(t, once, twice)
}

func TestStepLegalityAgainstFullWell(t *testing.T) {
	tb := piece.StandardTables()
	var w well.Well
	for i := range w {
		w[i] = well.FullRow
	}

	out := search.Step(tb, piece.O, tb.EmptyMask[piece.O], well.EffHeight, w)
	assert.Zero(t, out, "no pose should be reachable against an entirely full well")
}
