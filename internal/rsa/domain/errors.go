package domain

import (
	"github.com/allisson/toyrsa/internal/errors"
)

// RSA operation error definitions.
//
// Input errors wrap errors.ErrInvalidInput and lookup misses wrap errors.ErrNotFound,
// so callers can classify a failure without knowing which layer produced it.
var (
	// ErrInvalidModulus indicates a modulus that is nil or not strictly positive.
	ErrInvalidModulus = errors.Wrap(errors.ErrInvalidInput, "invalid modulus")

	// ErrNegativeExponent indicates a nil or negative exponent passed to modular
	// exponentiation. Negative exponents have no defined meaning here.
	ErrNegativeExponent = errors.Wrap(errors.ErrInvalidInput, "negative exponent")

	// ErrNoInverseExists indicates gcd(a, m) != 1, so a has no inverse modulo m.
	//
	// Key generation treats it as a signal to draw another exponent.
	ErrNoInverseExists = errors.Wrap(errors.ErrInvalidInput, "no modular inverse exists")

	// ErrMalformedSymbolStream indicates a symbol that is nil, negative or not an integer.
	// The whole stream operation fails so output length always matches input length.
	ErrMalformedSymbolStream = errors.Wrap(errors.ErrInvalidInput, "malformed symbol stream")

	// ErrSymbolOutOfRange indicates a symbol >= the key modulus. Such a symbol cannot
	// survive an encrypt/decrypt round trip.
	ErrSymbolOutOfRange = errors.Wrap(errors.ErrInvalidInput, "symbol out of range")

	// ErrInvalidPrimePair indicates p or q are unusable for key generation: not greater
	// than one, equal, not prime, or yielding a totient with no candidate exponent.
	ErrInvalidPrimePair = errors.Wrap(errors.ErrInvalidInput, "invalid prime pair")

	// ErrKeyGenerationExhausted indicates the configured attempt cap was reached
	// before a usable exponent was drawn.
	ErrKeyGenerationExhausted = errors.New("key generation attempts exhausted")

	// ErrKeyVerificationFailed indicates a generated pair failed the e*d = 1 (mod phi) check.
	ErrKeyVerificationFailed = errors.New("key pair verification failed")

	// ErrKeyPairNotFound indicates the key pair does not exist in storage.
	ErrKeyPairNotFound = errors.Wrap(errors.ErrNotFound, "key pair not found")
)
