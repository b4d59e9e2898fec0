package persist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellforge/hatetris-core/pkg/heuristic"
	"github.com/wellforge/hatetris-core/pkg/persist"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// TestStateRoundTrip checks the round-trip testable property: serializing
// then deserializing a State yields a value equal under the total ordering.
func TestStateRoundTrip(t *testing.T) {
	s := well.State{Score: 42}
	s.Well[3] = 0b1010101010
	s.Well[19] = well.FullRow

	decoded, err := persist.DecodeState(persist.EncodeState(s))
	require.NoError(t, err)
	assert.Zero(t, s.Compare(decoded))
	assert.Equal(t, s, decoded)
}

func TestWeightRoundTrip(t *testing.T) {
	w := heuristic.ZeroWeight(3)
	w.Conv[0][0] = 0.5
	w.Conv[2][31] = -1.25
	w.Hidden[15] = 2.0

	decoded, err := persist.DecodeWeight(persist.EncodeWeight(w))
	require.NoError(t, err)
	assert.Equal(t, w, decoded)
}

func TestWeightDiscreteRoundTrip(t *testing.T) {
	w := heuristic.ZeroWeight(2)
	w.Conv[1][4] = 1.0
	discrete := w.ToDiscrete()

	decoded, err := persist.DecodeWeightDiscrete(persist.EncodeWeightDiscrete(discrete))
	require.NoError(t, err)
	assert.Equal(t, discrete, decoded)
}

func TestDecodeStateRejectsWrongLength(t *testing.T) {
	_, err := persist.DecodeState([]byte{1, 2, 3})
	assert.Error(t, err)
}
