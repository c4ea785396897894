// Package numtheory implements the arbitrary-precision number theory that textbook RSA
// is built on: the extended Euclidean algorithm, modular inverses, square-and-multiply
// modular exponentiation, the Miller-Rabin probabilistic primality test and random
// prime search by decimal digit length.
//
// All integers are *big.Int. big.Int's Div and Mod implement Euclidean division, so
// remainders are never negative and b == (b div a)*a + (b mod a) holds for every sign
// combination.
//
// None of the routines here are constant time. They must not be used where timing
// side channels matter.
//
// # Absent values
//
// Outcomes that are expected and not programming errors are reported as sentinel
// errors so callers have to handle them:
//
//   - ErrNotInvertible: ModularInverse found gcd(a, n) != 1.
//   - ErrPrimeSearchExhausted: GeneratePrime used up its attempt budget.
//
// Degenerate input (a non-positive modulus, n < 2 for primality, digits <= 0) is a
// precondition violation and is reported as ErrDomain.
package numtheory
