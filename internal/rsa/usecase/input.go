package usecase

import (
	"math/big"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
	rsaService "github.com/allisson/toyrsa/internal/rsa/service"
	customValidation "github.com/allisson/toyrsa/internal/validation"
)

const (
	// MaxListLimit caps the page size accepted by List.
	MaxListLimit = 1000
)

// GenerateKeyPairInput contains the primes a key pair is generated from.
type GenerateKeyPairInput struct {
	P *big.Int
	Q *big.Int
}

// Validate checks that both primes are present, prime and distinct.
func (i *GenerateKeyPairInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.P,
			validation.Required,
			customValidation.GreaterThan{Min: 1},
			validation.By(validatePrime),
		),
		validation.Field(&i.Q,
			validation.Required,
			customValidation.GreaterThan{Min: 1},
			validation.By(validatePrime),
		),
	)
	if err != nil {
		return apperrors.Wrap(rsaDomain.ErrInvalidPrimePair, err.Error())
	}

	if i.P.Cmp(i.Q) == 0 {
		return apperrors.Wrap(rsaDomain.ErrInvalidPrimePair, "p and q must be distinct")
	}
	return nil
}

func validatePrime(value interface{}) error {
	x, _ := value.(*big.Int)
	if x == nil {
		return nil
	}
	if !rsaService.IsPrime(x) {
		return validation.NewError("validation_prime", "must be a prime number")
	}
	return nil
}

// ListInput contains pagination parameters.
type ListInput struct {
	Offset int
	Limit  int
}

// Validate checks pagination bounds.
func (i *ListInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Offset, validation.Min(0)),
		validation.Field(&i.Limit, validation.Required, validation.Min(1), validation.Max(MaxListLimit)),
	)
	return customValidation.WrapValidationError(err)
}

// EncodedStreamInput contains a space-separated decimal symbol stream.
type EncodedStreamInput struct {
	Stream string
}

// Validate checks that every token is a non-negative decimal integer.
func (i *EncodedStreamInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Stream, customValidation.DecimalStream),
	)
	if err != nil {
		return apperrors.Wrap(rsaDomain.ErrMalformedSymbolStream, err.Error())
	}
	return nil
}
