package domain

import (
	"math/big"

	"github.com/allisson/toyrsa/internal/errors"
)

// SymbolStream is an ordered sequence of non-negative integers, one per encoded
// character. Plaintext and ciphertext share this shape.
type SymbolStream []*big.Int

// NewSymbolStream builds a stream from int64 values.
func NewSymbolStream(values ...int64) SymbolStream {
	stream := make(SymbolStream, len(values))
	for i, v := range values {
		stream[i] = big.NewInt(v)
	}
	return stream
}

// Validate checks that every symbol is present and non-negative.
func (s SymbolStream) Validate() error {
	for i, symbol := range s {
		if symbol == nil {
			return errors.Wrapf(ErrMalformedSymbolStream, "symbol %d is missing", i)
		}
		if symbol.Sign() < 0 {
			return errors.Wrapf(ErrMalformedSymbolStream, "symbol %d is negative", i)
		}
	}
	return nil
}

// Int64s returns the stream as int64 values. Symbols that do not fit are truncated,
// so this is meant for small test and display streams only.
func (s SymbolStream) Int64s() []int64 {
	values := make([]int64, len(s))
	for i, symbol := range s {
		values[i] = symbol.Int64()
	}
	return values
}
