package numtheory

import "errors"

var (
	// ErrNotInvertible indicates gcd(a, n) != 1, so a has no inverse modulo n.
	ErrNotInvertible = errors.New("no modular inverse exists")

	// ErrPrimeSearchExhausted indicates GeneratePrime drew its whole attempt budget
	// without finding a probable prime.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")

	// ErrDomain indicates an argument outside the domain of the operation.
	ErrDomain = errors.New("argument outside operation domain")
)
