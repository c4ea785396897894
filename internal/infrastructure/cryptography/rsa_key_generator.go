package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

// maxExponentDraws bounds the search for a public exponent coprime to (p-1)(q-1).
// A uniform source finds one within a handful of draws.
const maxExponentDraws = 10000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// rsaKeyGenerator struct that implements the RSAKeyGenerator interface
type rsaKeyGenerator struct {
	primes   cryptoalg.PrimeGenerator
	source   random.Source
	settings config.RSASettings
	logger   logger.Logger
}

// NewRSAKeyGenerator creates and returns a new instance of rsaKeyGenerator
func NewRSAKeyGenerator(primes cryptoalg.PrimeGenerator, source random.Source, settings config.RSASettings, logger logger.Logger) (cryptoalg.RSAKeyGenerator, error) {
	if primes == nil {
		return nil, errors.New("prime generator cannot be nil")
	}
	if source == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rsa settings: %w", err)
	}

	return &rsaKeyGenerator{
		primes:   primes,
		source:   source,
		settings: settings,
		logger:   logger.With("component", "rsa_key_generator"),
	}, nil
}

// Generate picks a split of digits into two prime lengths, searches for one prime of
// each length and derives the system from them. Each prime gets MaxPrimeRetries
// searches; a second prime equal to the first is drawn again under the same budget.
func (g *rsaKeyGenerator) Generate(digits int) (*cryptoalg.RSA, error) {
	if digits < 2 {
		return nil, fmt.Errorf("digits must be at least 2, got %d: %w", digits, numtheory.ErrDomain)
	}

	split, err := g.source.Int(one, big.NewInt(int64(digits)))
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime length: %w", err)
	}
	pDigits := int(split.Int64())
	qDigits := digits - pDigits

	p, err := g.findPrime(pDigits, nil)
	if err != nil {
		return nil, err
	}
	q, err := g.findPrime(qDigits, p)
	if err != nil {
		return nil, err
	}

	rsa, err := g.FromPrimes(p, q)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generated RSA key pair", "id", rsa.ID().String(), "digits", digits)
	return rsa, nil
}

// findPrime runs the prime search up to MaxPrimeRetries times. A prime equal to
// exclude counts as a failed search.
func (g *rsaKeyGenerator) findPrime(digits int, exclude *big.Int) (*big.Int, error) {
	for attempt := 1; attempt <= g.settings.MaxPrimeRetries; attempt++ {
		prime, err := g.primes.GeneratePrime(digits)
		if errors.Is(err, numtheory.ErrPrimeSearchExhausted) {
			g.logger.Debug("Prime search exhausted, retrying", "digits", digits, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to generate %d-digit prime: %w", digits, err)
		}
		if exclude != nil && prime.Cmp(exclude) == 0 {
			g.logger.Debug("Drew the same prime twice, retrying", "digits", digits, "attempt", attempt)
			continue
		}
		return prime, nil
	}

	g.logger.Warn("Giving up on prime search", "digits", digits, "retries", g.settings.MaxPrimeRetries)
	return nil, fmt.Errorf("no %d-digit prime after %d searches: %w", digits, g.settings.MaxPrimeRetries, cryptoalg.ErrKeyGenerationExhausted)
}

// FromPrimes derives N = p*q and a public exponent e drawn uniformly from [2, K) until
// it is coprime to K = (p-1)(q-1). When K <= 2 the only choice is e = 1. The private
// exponent is the inverse of e modulo K.
func (g *rsaKeyGenerator) FromPrimes(p, q *big.Int) (*cryptoalg.RSA, error) {
	if p == nil || q == nil {
		return nil, fmt.Errorf("primes cannot be nil: %w", numtheory.ErrDomain)
	}
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, fmt.Errorf("primes must be at least 2: %w", numtheory.ErrDomain)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("primes must be distinct: %w", numtheory.ErrDomain)
	}

	n := new(big.Int).Mul(p, q)
	k := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e, d, err := g.drawExponents(k)
	if err != nil {
		return nil, err
	}

	rsa, err := cryptoalg.NewRSA(cryptoalg.PublicKey{N: n, E: e}, &cryptoalg.PrivateKey{N: n, D: d})
	if err != nil {
		return nil, fmt.Errorf("failed to build RSA system: %w", err)
	}

	g.logger.Debug("Derived RSA key pair from primes", "id", rsa.ID().String(), "modulus_digits", len(n.String()))
	return rsa, nil
}

func (g *rsaKeyGenerator) drawExponents(k *big.Int) (e, d *big.Int, err error) {
	if k.Cmp(two) <= 0 {
		return big.NewInt(1), big.NewInt(1), nil
	}

	for i := 0; i < maxExponentDraws; i++ {
		e, err = g.source.Int(two, k)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to draw public exponent: %w", err)
		}

		d, err = numtheory.ModularInverse(e, k)
		if errors.Is(err, numtheory.ErrNotInvertible) {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to invert public exponent: %w", err)
		}
		return e, d, nil
	}

	return nil, nil, fmt.Errorf("no public exponent coprime to %s after %d draws: %w", k, maxExponentDraws, cryptoalg.ErrKeyGenerationExhausted)
}
