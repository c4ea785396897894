// Package config provides functionality for loading and validating the configuration
// of the textbook RSA module.
//
// Settings are grouped per concern (logger, primality, rsa, random). Each group has
// defaults, mapstructure tags for loading and a Validate method. InitializeConfig
// reads an optional YAML file, applies TEXTBOOK_RSA_* environment overrides and
// validates the result.
package config
