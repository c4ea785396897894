package config

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(validators.RSADigitsTag, validators.RSADigitsValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", validators.RSADigitsTag, err)
	}
	return validate, nil
}

func validateStruct(name string, s interface{}) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}
