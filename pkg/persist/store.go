package persist

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/wellforge/hatetris-core/pkg/heuristic"
	"github.com/wellforge/hatetris-core/pkg/well"
)

// Store wraps an embedded key-value database for saving and loading States
// and Weights under caller-chosen keys (a generation tag, a run id, a visited
// state's hash — Store has no opinion on key structure).
type Store struct {
	db *badger.DB
}

// Open opens or creates a Store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("persist: opening %v: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveState persists s under key.
func (s *Store) SaveState(key string, st well.State) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), EncodeState(st))
	})
}

// LoadState loads the State saved under key.
func (s *Store) LoadState(key string) (well.State, error) {
	var st well.State
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := DecodeState(val)
			if err != nil {
				return err
			}
			st = decoded
			return nil
		})
	})
	return st, err
}

// SaveWeight persists w under key.
func (s *Store) SaveWeight(key string, w *heuristic.Weight) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), EncodeWeight(w))
	})
}

// LoadWeight loads the Weight saved under key.
func (s *Store) LoadWeight(key string) (*heuristic.Weight, error) {
	var w *heuristic.Weight
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := DecodeWeight(val)
			if err != nil {
				return err
			}
			w = decoded
			return nil
		})
	})
	return w, err
}

// SaveWeightDiscrete persists the quantized weight encoding under key.
func (s *Store) SaveWeightDiscrete(key string, w *heuristic.WeightDiscrete) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), EncodeWeightDiscrete(w))
	})
}

// LoadWeightDiscrete loads the quantized weight encoding saved under key.
func (s *Store) LoadWeightDiscrete(key string) (*heuristic.WeightDiscrete, error) {
	var w *heuristic.WeightDiscrete
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := DecodeWeightDiscrete(val)
			if err != nil {
				return err
			}
			w = decoded
			return nil
		})
	})
	return w, err
}
