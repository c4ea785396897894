package app

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

// RSAServices bundles the randomness source, the prime tester and the key generator
// built from one configuration. All three share the same source.
type RSAServices struct {
	source       random.Source
	primeTester  *numtheory.PrimeTester
	keyGenerator cryptoalg.RSAKeyGenerator
	settings     config.RSASettings
	logger       logger.Logger
}

// NewRandomSource returns the source selected by settings.
func NewRandomSource(settings *config.RandomSettings) (random.Source, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid random settings: %w", err)
	}

	switch settings.Source {
	case config.RandomSourceCrypto:
		return random.NewCryptoSource(), nil
	case config.RandomSourceSeeded:
		return random.NewSeededSource(settings.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported random source: %s", settings.Source)
	}
}

// NewRSAServices creates a new RSAServices instance
func NewRSAServices(cfg *config.Config, logger logger.Logger) (*RSAServices, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := NewRandomSource(&cfg.Random)
	if err != nil {
		return nil, err
	}

	primeTester, err := numtheory.NewPrimeTester(source, cfg.Primality.Rounds, cfg.Primality.AttemptsPerDigit)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime tester: %w", err)
	}

	keyGenerator, err := cryptography.NewRSAKeyGenerator(primeTester, source, cfg.RSA, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key generator: %w", err)
	}

	logger.Debug("Initialized RSA services", "random_source", cfg.Random.Source, "rounds", cfg.Primality.Rounds)

	return &RSAServices{
		source:       source,
		primeTester:  primeTester,
		keyGenerator: keyGenerator,
		settings:     cfg.RSA,
		logger:       logger,
	}, nil
}

// Source returns the shared randomness source.
func (s *RSAServices) Source() random.Source {
	return s.source
}

// PrimeTester returns the configured prime tester.
func (s *RSAServices) PrimeTester() *numtheory.PrimeTester {
	return s.primeTester
}

// KeyGenerator returns the configured key generator.
func (s *RSAServices) KeyGenerator() cryptoalg.RSAKeyGenerator {
	return s.keyGenerator
}

// Generate derives a system with a modulus assembled from digits decimal digits.
func (s *RSAServices) Generate(digits int) (*cryptoalg.RSA, error) {
	return s.keyGenerator.Generate(digits)
}

// GenerateDefault derives a system using the configured default digit length.
func (s *RSAServices) GenerateDefault() (*cryptoalg.RSA, error) {
	return s.keyGenerator.Generate(s.settings.DefaultDigits)
}

// FromPrimes derives a system from two distinct primes.
func (s *RSAServices) FromPrimes(p, q *big.Int) (*cryptoalg.RSA, error) {
	return s.keyGenerator.FromPrimes(p, q)
}

// IsPrime runs the configured number of Miller-Rabin rounds on n.
func (s *RSAServices) IsPrime(n *big.Int) (bool, error) {
	return s.primeTester.IsPrime(n)
}

// GeneratePrime searches for a probable prime with exactly digits decimal digits.
func (s *RSAServices) GeneratePrime(digits int) (*big.Int, error) {
	return s.primeTester.GeneratePrime(digits)
}
