package well

import (
	"fmt"
)

// Score is the monotone-non-decreasing line-clear accumulator: materializing
// a placement that clears k lines adds k*k to Score.
type Score uint16

// State is (well, score). It is value-like: two States are equal iff every
// row and the score coincide, and it is directly usable as a map key.
type State struct {
	Well  Well
	Score Score
}

// Compare orders States first by Score, then by row-wise lexicographic order
// on Well (lower row index first).
func (s State) Compare(o State) int {
	if s.Score != o.Score {
		if s.Score < o.Score {
			return -1
		}
		return 1
	}
	for i := 0; i < EffHeight; i++ {
		if s.Well[i] != o.Well[i] {
			if s.Well[i] < o.Well[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether s orders strictly before o under Compare.
func (s State) Less(o State) bool {
	return s.Compare(o) < 0
}

func (s State) String() string {
	return fmt.Sprintf("State{score=%v}\n%v", s.Score, s.Well)
}

// StateH carries a heuristic value alongside a State's well and score.
// NetworkHeuristic/NetworkHeuristicLoop return search.ScoredState, not StateH.
type StateH struct {
	Well      Well
	Score     Score
	Heuristic float64
}

// Equal is structural equality over Well and Score only — Heuristic is a
// derived value that may legitimately differ between two StateH values that
// describe the same well/score reached along different search branches. The
// source this module is grounded on compared self.score != self.score (a
// bug: always false), which made Equal effectively only check Well; this is
// the corrected, intended semantics. See SPEC_FULL.md §9.
func (s StateH) Equal(o StateH) bool {
	if s.Score != o.Score {
		return false
	}
	return s.Well == o.Well
}

// Compare orders StateH first by Heuristic, then Score, then row-wise
// lexicographic order on Well.
func (s StateH) Compare(o StateH) int {
	switch {
	case s.Heuristic < o.Heuristic:
		return -1
	case s.Heuristic > o.Heuristic:
		return 1
	}
	if s.Score != o.Score {
		if s.Score < o.Score {
			return -1
		}
		return 1
	}
	for i := 0; i < EffHeight; i++ {
		if s.Well[i] != o.Well[i] {
			if s.Well[i] < o.Well[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (s StateH) State() State {
	return State{Well: s.Well, Score: s.Score}
}

// Ancestor is one node along the search path, retained for loop detection.
// MinPrevHeuristic is the minimum heuristic seen along the path up to and
// including this node.
type Ancestor struct {
	Well             Well
	Score            Score
	Heuristic        float64
	MinPrevHeuristic float64
	Depth            int
	ParentIndex      int
}

// NewRootAncestor returns the depth-0 ancestor for a fresh search root.
func NewRootAncestor(s State, heuristic float64) Ancestor {
	return Ancestor{
		Well:             s.Well,
		Score:            s.Score,
		Heuristic:        heuristic,
		MinPrevHeuristic: heuristic,
		Depth:            0,
		ParentIndex:      0,
	}
}

// NewAncestor returns the ancestor that extends parent with a newly visited
// state and heuristic.
func NewAncestor(parent Ancestor, parentIndex int, s State, heuristic float64) Ancestor {
	min := parent.MinPrevHeuristic
	if heuristic < min {
		min = heuristic
	}
	return Ancestor{
		Well:             s.Well,
		Score:            s.Score,
		Heuristic:        heuristic,
		MinPrevHeuristic: min,
		Depth:            parent.Depth + 1,
		ParentIndex:      parentIndex,
	}
}

func (a Ancestor) State() State {
	return State{Well: a.Well, Score: a.Score}
}

func (a Ancestor) String() string {
	return fmt.Sprintf("Ancestor{depth=%v, score=%v, heuristic=%v, parent=%v}", a.Depth, a.Score, a.Heuristic, a.ParentIndex)
}
