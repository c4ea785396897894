package cryptoalg

import "errors"

var (
	// ErrNoPrivateKey indicates Encrypt was called on a system that only holds a public key.
	ErrNoPrivateKey = errors.New("no private key present")

	// ErrKeyGenerationExhausted indicates Generate used up its retry budget without
	// finding the two primes it needs.
	ErrKeyGenerationExhausted = errors.New("key generation retries exhausted")

	// ErrInvalidKey indicates a key that fails validation.
	ErrInvalidKey = errors.New("invalid key")
)
