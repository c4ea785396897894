package config

// Random source constants
const (
	RandomSourceCrypto = "crypto"
	RandomSourceSeeded = "seeded"
)

// RandomSettings selects the randomness behind witnesses, prime candidates and exponents.
// Seed is only read by the seeded source.
type RandomSettings struct {
	Source string `mapstructure:"source" validate:"required,oneof=crypto seeded"`
	Seed   int64  `mapstructure:"seed"`
}

// DefaultRandomSettings uses crypto/rand.
func DefaultRandomSettings() RandomSettings {
	return RandomSettings{
		Source: RandomSourceCrypto,
	}
}

// Validate checks that all fields in RandomSettings are valid
func (s *RandomSettings) Validate() error {
	return validateStruct("RandomSettings", s)
}
