package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// cryptoSource draws from a cryptographically secure reader.
type cryptoSource struct {
	reader io.Reader
}

// NewCryptoSource creates a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return &cryptoSource{reader: rand.Reader}
}

// Int returns a uniform random integer in [lo, hi).
func (s *cryptoSource) Int(lo, hi *big.Int) (*big.Int, error) {
	width, err := span(lo, hi)
	if err != nil {
		return nil, err
	}

	offset, err := rand.Int(s.reader, width)
	if err != nil {
		return nil, fmt.Errorf("failed to read random integer: %w", err)
	}

	return offset.Add(offset, lo), nil
}
