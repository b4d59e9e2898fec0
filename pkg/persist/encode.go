// Package persist provides the defined binary encoding for State and Weight
// and a badger-backed Store for saving and loading them by key.
package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/wellforge/hatetris-core/pkg/heuristic"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// EncodeState returns the binary representation of s: EffHeight u16 rows
// followed by a u16 score, all big-endian.
func EncodeState(s well.State) []byte {
	buf := make([]byte, well.EffHeight*2+2)
	for i := 0; i < well.EffHeight; i++ {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(s.Well[i]))
	}
	binary.BigEndian.PutUint16(buf[well.EffHeight*2:], uint16(s.Score))
	return buf
}

// DecodeState parses the encoding EncodeState produces.
func DecodeState(data []byte) (well.State, error) {
	want := well.EffHeight*2 + 2
	if len(data) != want {
		return well.State{}, fmt.Errorf("persist: state encoding has %v bytes, want %v", len(data), want)
	}

	var s well.State
	for i := 0; i < well.EffHeight; i++ {
		s.Well[i] = well.Row(binary.BigEndian.Uint16(data[i*2:]))
	}
	s.Score = well.Score(binary.BigEndian.Uint16(data[well.EffHeight*2:]))
	return s, nil
}

// EncodeWeight returns the binary representation of w: a u32 conv-row count,
// then that many [Hidden]f64 conv rows, then the [Hidden]f64 hidden row, all
// big-endian.
func EncodeWeight(w *heuristic.Weight) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(w.Conv)))
	for _, row := range w.Conv {
		_ = binary.Write(&buf, binary.BigEndian, row)
	}
	_ = binary.Write(&buf, binary.BigEndian, w.Hidden)
	return buf.Bytes()
}

// DecodeWeight parses the encoding EncodeWeight produces.
func DecodeWeight(data []byte) (*heuristic.Weight, error) {
	r := bytes.NewReader(data)

	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("persist: reading conv count: %w", err)
	}

	w := &heuristic.Weight{Conv: make([][heuristic.Hidden]float64, n)}
	for i := range w.Conv {
		if err := binary.Read(r, binary.BigEndian, &w.Conv[i]); err != nil {
			return nil, fmt.Errorf("persist: reading conv row %v: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.BigEndian, &w.Hidden); err != nil {
		return nil, fmt.Errorf("persist: reading hidden row: %w", err)
	}
	return w, nil
}

// EncodeWeightDiscrete returns the binary representation of the quantized
// weight encoding: a u32 conv-row count, then that many [Hidden]i16 conv
// rows, then the [Hidden]i16 hidden row, all big-endian.
func EncodeWeightDiscrete(w *heuristic.WeightDiscrete) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(w.Conv)))
	for _, row := range w.Conv {
		_ = binary.Write(&buf, binary.BigEndian, row)
	}
	_ = binary.Write(&buf, binary.BigEndian, w.Hidden)
	return buf.Bytes()
}

// DecodeWeightDiscrete parses the encoding EncodeWeightDiscrete produces.
func DecodeWeightDiscrete(data []byte) (*heuristic.WeightDiscrete, error) {
	r := bytes.NewReader(data)

	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("persist: reading conv count: %w", err)
	}

	w := &heuristic.WeightDiscrete{Conv: make([][heuristic.Hidden]int16, n)}
	for i := range w.Conv {
		if err := binary.Read(r, binary.BigEndian, &w.Conv[i]); err != nil {
			return nil, fmt.Errorf("persist: reading conv row %v: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.BigEndian, &w.Hidden); err != nil {
		return nil, fmt.Errorf("persist: reading hidden row: %w", err)
	}
	return w, nil
}
