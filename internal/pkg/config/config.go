package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TEXTBOOK_RSA_PRIMALITY_ROUNDS.
const EnvPrefix = "TEXTBOOK_RSA"

// Config is the complete module configuration.
type Config struct {
	Logger    LoggerSettings    `mapstructure:"logger"`
	Primality PrimalitySettings `mapstructure:"primality"`
	RSA       RSASettings       `mapstructure:"rsa"`
	Random    RandomSettings    `mapstructure:"random"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Logger:    DefaultLoggerSettings(),
		Primality: DefaultPrimalitySettings(),
		RSA:       DefaultRSASettings(),
		Random:    DefaultRandomSettings(),
	}
}

// Validate validates every settings group.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := c.Primality.Validate(); err != nil {
		return fmt.Errorf("invalid primality settings: %w", err)
	}
	if err := c.RSA.Validate(); err != nil {
		return fmt.Errorf("invalid rsa settings: %w", err)
	}
	if err := c.Random.Validate(); err != nil {
		return fmt.Errorf("invalid random settings: %w", err)
	}
	return nil
}

// InitializeConfig loads the configuration. path may be empty, in which case only
// defaults and environment overrides apply.
func InitializeConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so environment overrides are picked up by Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("logger.log_level", d.Logger.LogLevel)
	v.SetDefault("logger.log_type", d.Logger.LogType)
	v.SetDefault("logger.file_path", d.Logger.FilePath)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)

	v.SetDefault("primality.rounds", d.Primality.Rounds)
	v.SetDefault("primality.attempts_per_digit", d.Primality.AttemptsPerDigit)

	v.SetDefault("rsa.default_digits", d.RSA.DefaultDigits)
	v.SetDefault("rsa.max_prime_retries", d.RSA.MaxPrimeRetries)

	v.SetDefault("random.source", d.Random.Source)
	v.SetDefault("random.seed", d.Random.Seed)
}
