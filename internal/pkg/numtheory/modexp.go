package numtheory

import (
	"fmt"
	"math/big"
)

// ModularExponent returns a^d mod n in [0, n) using square-and-multiply.
// Every intermediate product is reduced modulo n, so operands never grow past n².
//
// d == 0 yields 1 mod n and n == 1 yields 0. A negative a is reduced modulo n first.
// It returns ErrDomain when n <= 0 or d < 0.
func ModularExponent(a, d, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("modulus %s must be positive: %w", n, ErrDomain)
	}
	if d.Sign() < 0 {
		return nil, fmt.Errorf("exponent %s must not be negative: %w", d, ErrDomain)
	}
	return modExp(a, d, n), nil
}

// modExp assumes n > 0 and d >= 0.
func modExp(a, d, n *big.Int) *big.Int {
	result := new(big.Int).Mod(one, n)
	base := new(big.Int).Mod(a, n)

	for i := 0; i < d.BitLen(); i++ {
		if d.Bit(i) == 1 {
			result.Mul(result, base)
			result.Mod(result, n)
		}
		base.Mul(base, base)
		base.Mod(base, n)
	}
	return result
}
