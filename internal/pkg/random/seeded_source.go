package random

import (
	"math/big"
	"math/rand"
	"sync"
)

// seededSource is a deterministic Source. *rand.Rand is not safe for concurrent
// use, so every draw holds mu.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a deterministic Source for the given seed.
// It must not be used to generate keys that protect anything.
func NewSeededSource(seed int64) Source {
	return &seededSource{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic for tests
	}
}

// Int returns a uniform random integer in [lo, hi).
func (s *seededSource) Int(lo, hi *big.Int) (*big.Int, error) {
	width, err := span(lo, hi)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	offset := new(big.Int).Rand(s.rng, width)
	s.mu.Unlock()

	return offset.Add(offset, lo), nil
}
