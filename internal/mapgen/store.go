package mapgen

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"mapgen/internal/terrain"
)

// ErrNoMap is returned when a Store has nothing to regenerate from.
var ErrNoMap = errors.New("mapgen: store holds no map")

// Store publishes the current map to concurrent readers. Writers build the
// next map off to the side and swap it in whole.
type Store struct {
	cur atomic.Pointer[Map]
}

// NewStore returns a store holding m, which may be nil.
func NewStore(m *Map) *Store {
	s := &Store{}
	if m != nil {
		s.cur.Store(m)
	}
	return s
}

// Current returns the published map or nil.
func (s *Store) Current() *Map { return s.cur.Load() }

// Swap publishes m and returns the previous map.
func (s *Store) Swap(m *Map) *Map { return s.cur.Swap(m) }

// Update derives a new map from the current one and publishes it. On error
// the current map stays in place. When another writer publishes first, fn
// runs again on the newer map.
func (s *Store) Update(fn func(cur *Map) (*Map, error)) (*Map, error) {
	for {
		cur := s.Current()
		if cur == nil {
			return nil, ErrNoMap
		}
		next, err := fn(cur)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, errors.New("mapgen: update produced no map")
		}
		if s.cur.CompareAndSwap(cur, next) {
			return next, nil
		}
	}
}

// Regenerate replaces the current map with a freshly generated one.
func (s *Store) Regenerate(seed uint64, df terrain.DistanceFn, rf terrain.ReshapingFn) (*Map, error) {
	return s.Update(func(cur *Map) (*Map, error) {
		return cur.Regenerate(seed, df, rf)
	})
}
