package config

// PrimalitySettings tunes the Miller-Rabin test and the random prime search.
//
// IsPrime accepts a composite with probability at most (1/4)^Rounds. The search
// draws at most digits*AttemptsPerDigit candidates before giving up.
type PrimalitySettings struct {
	Rounds           int `mapstructure:"rounds" validate:"min=1,max=128"`
	AttemptsPerDigit int `mapstructure:"attempts_per_digit" validate:"min=1,max=1000"`
}

// DefaultPrimalitySettings returns 20 rounds and 10 attempts per digit.
func DefaultPrimalitySettings() PrimalitySettings {
	return PrimalitySettings{
		Rounds:           20,
		AttemptsPerDigit: 10,
	}
}

// Validate checks that all fields in PrimalitySettings are valid
func (s *PrimalitySettings) Validate() error {
	return validateStruct("PrimalitySettings", s)
}
