package cryptoalg

import "math/big"

// PrimeGenerator searches for probable primes of a given decimal length.
type PrimeGenerator interface {
	// GeneratePrime returns a probable prime with exactly digits decimal digits.
	// Running out of attempts is reported as numtheory.ErrPrimeSearchExhausted.
	GeneratePrime(digits int) (*big.Int, error)
}

// RSAKeyGenerator derives textbook RSA systems.
type RSAKeyGenerator interface {
	// Generate derives a system whose modulus is the product of two random primes
	// with digits decimal digits between them.
	Generate(digits int) (*RSA, error)

	// FromPrimes derives a system from two distinct primes p and q with a random
	// public exponent coprime to (p-1)(q-1).
	FromPrimes(p, q *big.Int) (*RSA, error)
}
