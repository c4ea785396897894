package numtheory

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// ExtendedGCD returns d = gcd(a, b) together with Bézout coefficients x and y such
// that a*x + b*y == d.
//
// The coefficients are those of the recursive definition
//
//	E(0, b) = (b, 0, 1)
//	E(a, b) = (d, t - (b div a)*s, s)  where (d, s, t) = E(b mod a, a)
//
// evaluated with an explicit quotient stack instead of recursion. When the
// recursion would end on a negative d, all three results are negated so that d is
// always gcd(|a|, |b|).
func ExtendedGCD(a, b *big.Int) (d, x, y *big.Int) {
	ra := new(big.Int).Set(a)
	rb := new(big.Int).Set(b)

	var quotients []*big.Int
	for ra.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(rb, ra, r)
		quotients = append(quotients, q)
		ra, rb = r, ra
	}

	d = rb
	s, t := big.NewInt(0), big.NewInt(1)
	for i := len(quotients) - 1; i >= 0; i-- {
		next := new(big.Int).Mul(quotients[i], s)
		next.Sub(t, next)
		s, t = next, s
	}
	x, y = s, t

	if d.Sign() < 0 {
		d.Neg(d)
		x.Neg(x)
		y.Neg(y)
	}
	return d, x, y
}

// ModularInverse returns x in [0, n) with a*x ≡ 1 (mod n).
// It returns ErrNotInvertible when gcd(a, n) != 1 and ErrDomain when n <= 0.
func ModularInverse(a, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("modulus %s must be positive: %w", n, ErrDomain)
	}

	d, x, _ := ExtendedGCD(a, n)
	if d.Cmp(one) != 0 {
		return nil, fmt.Errorf("gcd(%s, %s) = %s: %w", a, n, d, ErrNotInvertible)
	}
	return x.Mod(x, n), nil
}
