//go:build unit
// +build unit

package cryptography

import (
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockPrimeGenerator is a mock implementation of PrimeGenerator
type MockPrimeGenerator struct {
	mock.Mock
}

func (m *MockPrimeGenerator) GeneratePrime(digits int) (*big.Int, error) {
	args := m.Called(digits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return new(big.Int).Set(args.Get(0).(*big.Int)), args.Error(1)
}
