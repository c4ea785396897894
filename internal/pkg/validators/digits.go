package validators

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// RSADigitsTag is the struct tag registered for RSADigitsValidation.
const RSADigitsTag = "rsadigits"

// Bounds on the decimal length of an RSA modulus. Two digits is the smallest length
// that can be split into two primes of at least one digit each.
const (
	MinRSADigits = 2
	MaxRSADigits = 4096
)

// RSADigitsValidation validates the decimal length requested for an RSA modulus.
func RSADigitsValidation(fl validator.FieldLevel) bool {
	var digits int64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		digits = fl.Field().Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		digits = int64(fl.Field().Uint())
	default:
		return false
	}
	return digits >= MinRSADigits && digits <= MaxRSADigits
}
