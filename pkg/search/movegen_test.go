package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/search"
	"github.com/wellforge/hatetris-core/pkg/well"
)

func standardTableset() search.Tableset {
	tb := piece.StandardTables()
	var out search.Tableset
	for p := 0; p < piece.PieceCount; p++ {
		out[p] = tb
	}
	return out
}

func TestSingleMoveEmptyWellReturnsSuccessors(t *testing.T) {
	tbs := standardTableset()
	ctx := context.Background()

	successors := search.SingleMove(ctx, tbs, well.State{}, search.Testing(), nil)
	assert.NotEmpty(t, successors)
}

func TestSingleMoveRandomPolicyUsesRNG(t *testing.T) {
	tbs := standardTableset()
	ctx := context.Background()

	conf := search.Testing()
	conf.Policy = search.Random
	rng := rand.New(rand.NewSource(1))

	successors := search.SingleMove(ctx, tbs, well.State{}, conf, rng)
	assert.NotEmpty(t, successors)
}
