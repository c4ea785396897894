package testutil

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
	"github.com/stretchr/testify/mock"
)

// TestSeed is the seed used by deterministic tests.
const TestSeed int64 = 20241018

// NewTestSource returns a deterministic random.Source.
func NewTestSource() random.Source {
	return random.NewSeededSource(TestSeed)
}

// MockSource is a mock implementation of random.Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Int(lo, hi *big.Int) (*big.Int, error) {
	args := m.Called(lo, hi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return new(big.Int).Set(args.Get(0).(*big.Int)), args.Error(1)
}
