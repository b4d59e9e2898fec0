// Package search implements the bit-parallel reachability engine: waveform
// propagation over the pose lattice, resting-placement extraction, placement
// materialization, line-clear classification, the heuristic-guided move
// generator, and its quiescence/loop-detecting variants.
package search

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Policy selects how single_move chooses the piece to play when a caller
// does not force one. The original source computed the adversarial
// "worst-for-the-player" piece but then unconditionally overrode it with a
// uniformly random index; this module exposes both as configuration rather
// than guessing which was intended.
type Policy int

const (
	// Adversarial selects the piece minimizing the player's best attainable
	// height across its resting waves.
	Adversarial Policy = iota
	// Random selects a uniformly random piece index from the *rand.Rand the
	// caller passes to SingleMove, whether or not that piece has a placement.
	// SingleMove does not read Conf.Seed; the caller builds the rand from it.
	Random
)

func (p Policy) String() string {
	switch p {
	case Adversarial:
		return "adversarial"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Conf is the search configuration surface (SPEC_FULL.md/spec.md §6).
type Conf struct {
	// BeamWidth bounds the number of successors retained per ply, 0 = no
	// limit.
	BeamWidth int
	// BeamDepth bounds the number of plies a beam search descends, 0 = no
	// limit.
	BeamDepth int
	// Generation labels a population/run for persistence; opaque to search.
	Generation int
	// MaxPlay bounds the number of quiescence expansion rounds. 0 disables
	// quiescence loops entirely.
	MaxPlay int
	// Quiescent enables quiescence expansion in NetworkHeuristic.
	Quiescent bool
	// Parent enables ancestor-path tracking for loop detection.
	Parent bool
	// Save enables persistence of visited states, if a Store is configured.
	Save bool
	// Print enables verbose per-move diagnostic logging.
	Print bool

	// Policy selects the piece-choice function used by SingleMove.
	Policy Policy
	// Seed is required when Policy == Random, for reproducibility.
	Seed lang.Optional[int64]

	// QuiescencePieceLimit bounds how many distinct pieces the quiescence
	// expansion loop considers per frontier entry. The source this module is
	// grounded on always broke out of its piece loop after the first
	// candidate ("break 'piece"); this preserves that behavior as the
	// default (QuiescencePieceLimit == 1) while letting a caller widen it.
	// See SPEC_FULL.md §9.
	QuiescencePieceLimit int
}

// Master returns a configuration favoring playing strength: full beam, deep
// quiescence, adversarial piece choice, no diagnostics.
func Master() Conf {
	return Conf{
		BeamWidth:            0,
		BeamDepth:            0,
		MaxPlay:              8,
		Quiescent:            true,
		Parent:               true,
		Save:                 true,
		Policy:               Adversarial,
		QuiescencePieceLimit: 1,
	}
}

// Training returns a configuration for self-play data generation: randomized
// piece choice with an explicit seed, state persistence enabled.
func Training(seed int64) Conf {
	return Conf{
		BeamWidth:            0,
		BeamDepth:            0,
		MaxPlay:              4,
		Quiescent:            true,
		Parent:               true,
		Save:                 true,
		Policy:               Random,
		Seed:                 lang.Some(seed),
		QuiescencePieceLimit: 1,
	}
}

// Testing returns a small, fast, deterministic configuration suited to unit
// tests: no quiescence, no persistence, no diagnostics.
func Testing() Conf {
	return Conf{
		BeamWidth:            0,
		BeamDepth:            0,
		MaxPlay:              0,
		Quiescent:            false,
		Parent:               false,
		Save:                 false,
		Policy:               Adversarial,
		QuiescencePieceLimit: 1,
	}
}
