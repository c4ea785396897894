package random

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrEmptyRange is returned when a Source is asked for a value in [lo, hi) with hi <= lo.
var ErrEmptyRange = errors.New("empty range")

// Source yields uniformly distributed integers.
// Implementations must be safe for concurrent use.
type Source interface {
	// Int returns a uniform random integer in [lo, hi).
	Int(lo, hi *big.Int) (*big.Int, error)
}

// span returns hi - lo or ErrEmptyRange.
func span(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil {
		return nil, fmt.Errorf("range bounds cannot be nil: %w", ErrEmptyRange)
	}
	width := new(big.Int).Sub(hi, lo)
	if width.Sign() <= 0 {
		return nil, fmt.Errorf("[%s, %s): %w", lo, hi, ErrEmptyRange)
	}
	return width, nil
}
