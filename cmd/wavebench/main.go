// wavebench is a reachability-engine debugging tool: it counts the size of
// the successor tree SingleMove generates to a given depth, the way a chess
// engine's perft counts legal-move trees.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/wellforge/hatetris-core/pkg/piece"
	"github.com/wellforge/hatetris-core/pkg/search"
	"github.com/wellforge/hatetris-core/pkg/well"
)

var (
	depth  = flag.Int("depth", 4, "Successor tree depth")
	policy = flag.String("policy", "adversarial", "Piece-choice policy: adversarial or random")
	seed   = flag.Int64("seed", 1, "RNG seed, used only under -policy=random")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	conf := search.Testing()
	switch *policy {
	case "adversarial":
		conf.Policy = search.Adversarial
	case "random":
		conf.Policy = search.Random
		conf.Seed = lang.Some(*seed)
	default:
		logw.Exitf(ctx, "Unknown policy %q", *policy)
	}
	rng := rand.New(rand.NewSource(*seed))

	tb := piece.StandardTables()
	if err := tb.Validate(); err != nil {
		logw.Exitf(ctx, "Invalid piece tables: %v", err)
	}

	var tbs search.Tableset
	for p := 0; p < piece.PieceCount; p++ {
		tbs[p] = tb
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := countTree(ctx, tbs, well.State{}, conf, rng, d)
		duration := time.Since(start)

		fmt.Printf("wavebench,%v,%v,%v,%v\n", *policy, d, nodes, duration.Microseconds())
	}
}

func countTree(ctx context.Context, tbs search.Tableset, s well.State, conf search.Conf, rng *rand.Rand, depth int) int64 {
	if depth == 0 {
		return 1
	}

	successors := search.SingleMove(ctx, tbs, s, conf, rng)

	var nodes int64
	for _, succ := range successors {
		nodes += countTree(ctx, tbs, succ, conf, rng, depth-1)
	}
	return nodes
}
