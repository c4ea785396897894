package config

// RSASettings holds key generation parameters.
type RSASettings struct {
	// DefaultDigits is the decimal length used when no explicit length is requested.
	DefaultDigits int `mapstructure:"default_digits" validate:"rsadigits"`
	// MaxPrimeRetries bounds the prime searches Generate runs for each of its two primes.
	MaxPrimeRetries int `mapstructure:"max_prime_retries" validate:"min=1,max=100000"`
}

// DefaultRSASettings returns 10 digit keys and 100 retries per prime.
func DefaultRSASettings() RSASettings {
	return RSASettings{
		DefaultDigits:   10,
		MaxPrimeRetries: 100,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	return validateStruct("RSASettings", s)
}
