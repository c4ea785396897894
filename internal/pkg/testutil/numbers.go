package testutil

import "math/big"

// Composites are odd composites that fool weak primality checks: Carmichael numbers,
// strong pseudoprimes to small bases and products of nearby primes.
var Composites = []int64{
	561, 1105, 1729, 2465, 2821, 6601, 8911, // Carmichael numbers
	2047, 3277, 4033, 4681, 8321, // strong pseudoprimes to base 2
	221, 3233, 10403, 999983 * 3, 1000003 * 1000033,
}

// FirstPrimes returns the first count primes, computed with a sieve.
func FirstPrimes(count int) []*big.Int {
	limit := 16
	for {
		primes := sieve(limit)
		if len(primes) >= count {
			out := make([]*big.Int, count)
			for i := range out {
				out[i] = big.NewInt(int64(primes[i]))
			}
			return out
		}
		limit *= 2
	}
}

// IsPrimeTrialDivision is a slow deterministic reference check for small n.
func IsPrimeTrialDivision(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func sieve(limit int) []int {
	composite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}
