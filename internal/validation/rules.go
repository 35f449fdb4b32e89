// Package validation provides custom validation rules for the application.
package validation

import (
	"math/big"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/toyrsa/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// asBigInt unwraps the value under validation. A nil pointer reports ok with a nil
// result so Required can own the empty case.
func asBigInt(value interface{}) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, true
	case big.Int:
		return &v, true
	default:
		return nil, false
	}
}

// GreaterThan validates that a big integer is strictly greater than Min.
type GreaterThan struct {
	Min int64
}

// Validate checks the lower bound.
func (r GreaterThan) Validate(value interface{}) error {
	x, ok := asBigInt(value)
	if !ok {
		return validation.NewError("validation_big_int_type", "must be an integer")
	}
	if x == nil {
		return nil
	}
	if x.Cmp(big.NewInt(r.Min)) <= 0 {
		return validation.NewError("validation_big_int_greater_than", "must be greater than "+big.NewInt(r.Min).String())
	}
	return nil
}

// DecimalStream validates a whitespace-separated list of non-negative decimal integers.
// The empty string is a valid, empty list.
var DecimalStream = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, field := range strings.Fields(s) {
			x, ok := new(big.Int).SetString(field, 10)
			if !ok || x.Sign() < 0 {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_decimal_stream", "must be space-separated non-negative integers"),
)
