//go:build unit
// +build unit

package textbookrsa

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextbookExample(t *testing.T) {
	d, x, y := ExtendedGCD(big.NewInt(17), big.NewInt(3120))
	assert.Equal(t, int64(1), d.Int64())
	assert.Equal(t, int64(1), new(big.Int).Add(new(big.Int).Mul(big.NewInt(17), x), new(big.Int).Mul(big.NewInt(3120), y)).Int64())

	inv, err := ModularInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), inv.Int64())

	_, err = ModularInverse(big.NewInt(6), big.NewInt(3120))
	assert.ErrorIs(t, err, ErrNotInvertible)

	c, err := ModularExponent(big.NewInt(65), big.NewInt(17), big.NewInt(3233))
	require.NoError(t, err)
	assert.Equal(t, int64(2790), c.Int64())

	rsa, err := NewRSA(
		PublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
		&PrivateKey{N: big.NewInt(3233), D: big.NewInt(2753)},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(65), rsa.Decrypt(mustEncrypt(t, rsa, 65)).Int64())

	_, err = rsa.PublicOnly().Encrypt(big.NewInt(65))
	assert.ErrorIs(t, err, ErrNoPrivateKey)
}

func mustEncrypt(t *testing.T, rsa *RSA, m int64) *big.Int {
	t.Helper()
	c, err := rsa.Encrypt(big.NewInt(m))
	require.NoError(t, err)
	return c
}

func TestNew_FromConfigFile(t *testing.T) {
	path := testutil.WriteConfigFile(t, `
logger:
  log_level: error
rsa:
  default_digits: 12
random:
  source: seeded
  seed: 5
`)

	client, err := New(path)
	require.NoError(t, err)

	rsa, err := client.GenerateDefault()
	require.NoError(t, err)
	digits := len(rsa.PublicKey().N.String())
	assert.True(t, digits == 11 || digits == 12, "modulus has %d digits", digits)

	rsa, err = client.FromPrimes(big.NewInt(101), big.NewInt(103))
	require.NoError(t, err)
	assert.Equal(t, int64(101*103), rsa.PublicKey().N.Int64())

	ok, err := client.IsPrime(big.NewInt(7919))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(testutil.WriteConfigFile(t, "rsa:\n  default_digits: 1\n"))
	assert.Error(t, err)

	_, err = NewWithConfig(nil)
	assert.Error(t, err)

	cfg := config.DefaultConfig()
	cfg.Logger.LogType = config.LogTypeFile
	_, err = NewWithConfig(cfg)
	assert.Error(t, err)
}

func TestClient_DomainErrors(t *testing.T) {
	client, err := NewWithConfig(config.DefaultConfig())
	require.NoError(t, err)

	for _, digits := range []int{-1, 0, 1} {
		_, err = client.Generate(digits)
		assert.ErrorIs(t, err, ErrDomain, "digits=%d", digits)
	}

	_, err = client.FromPrimes(big.NewInt(13), big.NewInt(13))
	assert.ErrorIs(t, err, ErrDomain)

	_, err = client.GeneratePrime(0)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = client.IsPrime(big.NewInt(1))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPackageLevelFunctions(t *testing.T) {
	rsa, err := Generate(10)
	require.NoError(t, err)
	assert.True(t, rsa.HasPrivateKey())

	rsa, err = GenerateDefault()
	require.NoError(t, err)
	digits := len(rsa.PublicKey().N.String())
	assert.True(t, digits == 9 || digits == 10, "modulus has %d digits", digits)

	_, err = Generate(0)
	assert.ErrorIs(t, err, ErrDomain)

	// the default client logs through the shared logger
	log, err := logger.GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	rsa, err = FromPrimes(big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)
	assert.Equal(t, int64(3233), rsa.PublicKey().N.Int64())

	ok, err := IsPrime(big.NewInt(561))
	require.NoError(t, err)
	assert.False(t, ok)
}
