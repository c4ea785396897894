// Package textbookrsa implements unpadded "textbook" RSA over arbitrary-precision
// integers: extended GCD, modular inverse, modular exponentiation, Miller-Rabin
// primality testing, random prime search and RSA key derivation.
//
// Textbook RSA is deterministic and malleable. It is meant for teaching and
// experimentation, not for protecting data.
package textbookrsa

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

type (
	// RSA is a textbook RSA system with a public key and an optional private key.
	RSA = cryptoalg.RSA
	// PublicKey is the pair (N, e).
	PublicKey = cryptoalg.PublicKey
	// PrivateKey is the pair (N, d).
	PrivateKey = cryptoalg.PrivateKey
	// Config is the module configuration.
	Config = config.Config
)

// Sentinel errors, checked with errors.Is.
var (
	ErrNotInvertible          = numtheory.ErrNotInvertible
	ErrPrimeSearchExhausted   = numtheory.ErrPrimeSearchExhausted
	ErrDomain                 = numtheory.ErrDomain
	ErrNoPrivateKey           = cryptoalg.ErrNoPrivateKey
	ErrKeyGenerationExhausted = cryptoalg.ErrKeyGenerationExhausted
	ErrInvalidKey             = cryptoalg.ErrInvalidKey
)

// ExtendedGCD returns d, x, y with a*x + b*y = d = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (d, x, y *big.Int) {
	return numtheory.ExtendedGCD(a, b)
}

// ModularInverse returns x in [0, n) with a*x = 1 mod n, or ErrNotInvertible.
func ModularInverse(a, n *big.Int) (*big.Int, error) {
	return numtheory.ModularInverse(a, n)
}

// ModularExponent returns a^d mod n.
func ModularExponent(a, d, n *big.Int) (*big.Int, error) {
	return numtheory.ModularExponent(a, d, n)
}

// NewRSA builds a system from existing keys. privateKey may be nil.
func NewRSA(publicKey PublicKey, privateKey *PrivateKey) (*RSA, error) {
	return cryptoalg.NewRSA(publicKey, privateKey)
}

// Client derives RSA systems according to one configuration.
type Client struct {
	services *app.RSAServices
}

// New loads the configuration at configPath and builds a client. An empty path uses
// the defaults plus any TEXTBOOK_RSA_* environment overrides.
func New(configPath string) (*Client, error) {
	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a client from an already loaded configuration.
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return newClient(cfg, log)
}

func newClient(cfg *Config, log logger.Logger) (*Client, error) {
	services, err := app.NewRSAServices(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	return &Client{services: services}, nil
}

// Generate derives a system whose modulus is built from digits decimal digits.
// digits below 2 fail with ErrDomain.
func (c *Client) Generate(digits int) (*RSA, error) {
	return c.services.Generate(digits)
}

// GenerateDefault derives a system using the configured rsa.default_digits.
func (c *Client) GenerateDefault() (*RSA, error) {
	return c.services.GenerateDefault()
}

// FromPrimes derives a system from two distinct primes.
func (c *Client) FromPrimes(p, q *big.Int) (*RSA, error) {
	return c.services.FromPrimes(p, q)
}

// IsPrime reports whether n is a probable prime.
func (c *Client) IsPrime(n *big.Int) (bool, error) {
	return c.services.IsPrime(n)
}

// GeneratePrime searches for a probable prime with exactly digits decimal digits.
func (c *Client) GeneratePrime(digits int) (*big.Int, error) {
	return c.services.GeneratePrime(digits)
}

var (
	defaultClient    *Client
	defaultClientErr error
	defaultOnce      sync.Once
)

// Default returns a client built from the default configuration and the environment.
// It logs through the process-wide logger from logger.InitLogger.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultClientErr = newDefaultClient()
	})
	return defaultClient, defaultClientErr
}

func newDefaultClient() (*Client, error) {
	cfg, err := config.InitializeConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger: %w", err)
	}

	return newClient(cfg, log)
}

// Generate derives a system using the default client.
func Generate(digits int) (*RSA, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Generate(digits)
}

// GenerateDefault derives a system of the configured default length using the
// default client.
func GenerateDefault() (*RSA, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.GenerateDefault()
}

// FromPrimes derives a system from p and q using the default client.
func FromPrimes(p, q *big.Int) (*RSA, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.FromPrimes(p, q)
}

// IsPrime tests n using the default client.
func IsPrime(n *big.Int) (bool, error) {
	c, err := Default()
	if err != nil {
		return false, err
	}
	return c.IsPrime(n)
}

// GeneratePrime searches for a prime using the default client.
func GeneratePrime(digits int) (*big.Int, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.GeneratePrime(digits)
}
