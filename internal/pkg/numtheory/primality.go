package numtheory

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

const (
	// DefaultRounds keeps the false-positive probability of IsPrime below (1/4)^20 < 1e-10.
	DefaultRounds = 20

	// DefaultAttemptsPerDigit is the number of candidates GeneratePrime draws per requested digit.
	DefaultAttemptsPerDigit = 10
)

// PrimeTester runs randomized primality tests and prime searches.
// It is safe for concurrent use if its Source is.
type PrimeTester struct {
	source           random.Source
	rounds           int
	attemptsPerDigit int
}

// NewPrimeTester creates a PrimeTester drawing Miller-Rabin bases and prime candidates
// from source. IsPrime runs rounds Miller-Rabin rounds; GeneratePrime draws at most
// digits*attemptsPerDigit candidates.
func NewPrimeTester(source random.Source, rounds, attemptsPerDigit int) (*PrimeTester, error) {
	if source == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got %d: %w", rounds, ErrDomain)
	}
	if attemptsPerDigit < 1 {
		return nil, fmt.Errorf("attempts per digit must be at least 1, got %d: %w", attemptsPerDigit, ErrDomain)
	}

	return &PrimeTester{
		source:           source,
		rounds:           rounds,
		attemptsPerDigit: attemptsPerDigit,
	}, nil
}

// Rounds returns the number of Miller-Rabin rounds run by IsPrime.
func (t *PrimeTester) Rounds() int {
	return t.rounds
}

// MillerRabin runs a single Miller-Rabin round with a uniform random base in [1, n).
// A prime n always passes. A composite n fails with probability at least 3/4 for all
// but the smallest composites, whose few bases make 1 and n-1 relatively likely draws.
func (t *PrimeTester) MillerRabin(n *big.Int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, fmt.Errorf("miller-rabin needs n >= 2, got %s: %w", n, ErrDomain)
	}

	a, err := t.source.Int(one, n)
	if err != nil {
		return false, fmt.Errorf("failed to draw witness: %w", err)
	}

	return strongProbablePrime(n, a), nil
}

// strongProbablePrime reports whether n passes the strong probable prime test to base a.
func strongProbablePrime(n, a *big.Int) bool {
	nMinusOne := new(big.Int).Sub(n, one)

	// n - 1 = 2^k * d with d odd
	d := new(big.Int).Set(nMinusOne)
	k := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		k++
	}

	x := modExp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}

	for i := 0; i < k; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(one) == 0 {
			return false
		}
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}

// IsPrime runs Rounds independent Miller-Rabin rounds and reports true only if all pass.
func (t *PrimeTester) IsPrime(n *big.Int) (bool, error) {
	for i := 0; i < t.rounds; i++ {
		ok, err := t.MillerRabin(n)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// GeneratePrime searches for a probable prime with exactly digits decimal digits by
// drawing uniform candidates in [10^(digits-1), 10^digits). It gives up after
// digits*attemptsPerDigit candidates and returns ErrPrimeSearchExhausted, which is an
// expected outcome, most often for small digit counts.
func (t *PrimeTester) GeneratePrime(digits int) (*big.Int, error) {
	if digits < 1 {
		return nil, fmt.Errorf("digits must be at least 1, got %d: %w", digits, ErrDomain)
	}

	lo := new(big.Int).Exp(ten, big.NewInt(int64(digits-1)), nil)
	hi := new(big.Int).Mul(lo, ten)
	attempts := digits * t.attemptsPerDigit

	for i := 0; i < attempts; i++ {
		candidate, err := t.source.Int(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
		}
		// only reachable for digits == 1
		if candidate.Cmp(two) < 0 {
			continue
		}

		prime, err := t.IsPrime(candidate)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("no %d-digit prime after %d attempts: %w", digits, attempts, ErrPrimeSearchExhausted)
}
