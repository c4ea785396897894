package cryptoalg

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var one = big.NewInt(1)

// PublicKey is the public half (N, e) of a textbook RSA key pair.
type PublicKey struct {
	N *big.Int `validate:"required"`
	E *big.Int `validate:"required"`
}

// Validate checks that both components are set, N > 1 and e > 0.
func (k *PublicKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.N.Cmp(one) <= 0 {
		return fmt.Errorf("modulus must be greater than 1: %w", ErrInvalidKey)
	}
	if k.E.Sign() <= 0 {
		return fmt.Errorf("public exponent must be positive: %w", ErrInvalidKey)
	}
	return nil
}

// PrivateKey is the private half (N, d) of a textbook RSA key pair.
type PrivateKey struct {
	N *big.Int `validate:"required"`
	D *big.Int `validate:"required"`
}

// Validate checks that both components are set, N > 1 and d > 0.
func (k *PrivateKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.N.Cmp(one) <= 0 {
		return fmt.Errorf("modulus must be greater than 1: %w", ErrInvalidKey)
	}
	if k.D.Sign() <= 0 {
		return fmt.Errorf("private exponent must be positive: %w", ErrInvalidKey)
	}
	return nil
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v: %w", messages, ErrInvalidKey)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// RSA is an immutable textbook RSA system. The private key is optional; without it
// the system can only Decrypt.
type RSA struct {
	id         uuid.UUID
	publicKey  PublicKey
	privateKey *PrivateKey
}

// NewRSA builds a system from existing keys. privateKey may be nil. Both keys are
// copied, so later changes to the arguments do not affect the system.
func NewRSA(publicKey PublicKey, privateKey *PrivateKey) (*RSA, error) {
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	r := &RSA{
		id:        uuid.New(),
		publicKey: copyPublicKey(publicKey),
	}

	if privateKey != nil {
		if err := privateKey.Validate(); err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		if privateKey.N.Cmp(publicKey.N) != 0 {
			return nil, fmt.Errorf("public and private key moduli differ: %w", ErrInvalidKey)
		}
		priv := copyPrivateKey(*privateKey)
		r.privateKey = &priv
	}

	return r, nil
}

// ID identifies the key pair in logs.
func (r *RSA) ID() uuid.UUID {
	return r.id
}

// PublicKey returns a copy of the public key.
func (r *RSA) PublicKey() PublicKey {
	return copyPublicKey(r.publicKey)
}

// PrivateKey returns a copy of the private key and whether one is present.
func (r *RSA) PrivateKey() (PrivateKey, bool) {
	if r.privateKey == nil {
		return PrivateKey{}, false
	}
	return copyPrivateKey(*r.privateKey), true
}

// HasPrivateKey reports whether the system can Encrypt.
func (r *RSA) HasPrivateKey() bool {
	return r.privateKey != nil
}

// PublicOnly returns the verify-only system for the same key pair.
func (r *RSA) PublicOnly() *RSA {
	return &RSA{
		id:        r.id,
		publicKey: copyPublicKey(r.publicKey),
	}
}

// Encrypt returns m^d mod N using the private exponent.
// It returns ErrNoPrivateKey when the system only holds a public key.
func (r *RSA) Encrypt(m *big.Int) (*big.Int, error) {
	if r.privateKey == nil {
		return nil, ErrNoPrivateKey
	}
	if m == nil {
		return nil, fmt.Errorf("message cannot be nil")
	}

	c, err := numtheory.ModularExponent(m, r.privateKey.D, r.privateKey.N)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}
	return c, nil
}

// Decrypt returns c^e mod N using the public exponent. c must not be nil.
func (r *RSA) Decrypt(c *big.Int) *big.Int {
	if c == nil {
		panic("textbook rsa: decrypt of nil ciphertext")
	}
	m, err := numtheory.ModularExponent(c, r.publicKey.E, r.publicKey.N)
	if err != nil {
		// NewRSA guarantees N > 1 and e > 0
		panic(fmt.Sprintf("textbook rsa: decrypt with invalid public key: %v", err))
	}
	return m
}

func copyPublicKey(k PublicKey) PublicKey {
	return PublicKey{N: new(big.Int).Set(k.N), E: new(big.Int).Set(k.E)}
}

func copyPrivateKey(k PrivateKey) PrivateKey {
	return PrivateKey{N: new(big.Int).Set(k.N), D: new(big.Int).Set(k.D)}
}
