package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/toyrsa/internal/errors"
)

func TestNewKeyPair(t *testing.T) {
	e, d, n := big.NewInt(17), big.NewInt(2753), big.NewInt(3233)

	kp := NewKeyPair(e, d, n)

	assert.Equal(t, int64(17), kp.Public.E.Int64())
	assert.Equal(t, int64(2753), kp.Private.D.Int64())
	assert.Equal(t, int64(3233), kp.Public.N.Int64())
	assert.Equal(t, int64(3233), kp.Private.N.Int64())

	// mutating the inputs must not change the pair
	n.SetInt64(1)
	e.SetInt64(1)
	assert.Equal(t, int64(3233), kp.Modulus().Int64())
	assert.Equal(t, int64(17), kp.Public.E.Int64())

	// the returned modulus is a copy
	kp.Modulus().SetInt64(5)
	assert.Equal(t, int64(3233), kp.Public.N.Int64())
}

func TestEuclidTrace_LastNonZero(t *testing.T) {
	t.Run("Success_RowBeforeZeroRow", func(t *testing.T) {
		trace := EuclidTrace{
			{R: big.NewInt(17), S: big.NewInt(1), T: big.NewInt(0)},
			{R: big.NewInt(3120), S: big.NewInt(0), T: big.NewInt(1)},
			{Q: big.NewInt(0), R: big.NewInt(1), S: big.NewInt(-367), T: big.NewInt(2)},
			{Q: big.NewInt(3120), R: big.NewInt(0), S: big.NewInt(1), T: big.NewInt(0)},
		}

		row, ok := trace.LastNonZero()
		require.True(t, ok)
		assert.Equal(t, int64(1), row.R.Int64())
		assert.Equal(t, int64(-367), row.S.Int64())
	})

	t.Run("Error_EmptyTrace", func(t *testing.T) {
		_, ok := EuclidTrace{}.LastNonZero()
		assert.False(t, ok)
	})
}

func TestSymbolStream_Validate(t *testing.T) {
	t.Run("Success_ValidStream", func(t *testing.T) {
		assert.NoError(t, NewSymbolStream(0, 1, 65).Validate())
	})

	t.Run("Success_EmptyStream", func(t *testing.T) {
		assert.NoError(t, SymbolStream{}.Validate())
	})

	t.Run("Error_NegativeSymbol", func(t *testing.T) {
		err := NewSymbolStream(1, -2).Validate()
		assert.ErrorIs(t, err, ErrMalformedSymbolStream)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "symbol 1")
	})

	t.Run("Error_MissingSymbol", func(t *testing.T) {
		err := SymbolStream{big.NewInt(1), nil}.Validate()
		assert.ErrorIs(t, err, ErrMalformedSymbolStream)
	})
}

func TestSymbolStream_Int64s(t *testing.T) {
	assert.Equal(t, []int64{7, 0, 13}, NewSymbolStream(7, 0, 13).Int64s())
}

func TestErrorClassification(t *testing.T) {
	assert.ErrorIs(t, ErrKeyPairNotFound, apperrors.ErrNotFound)
	for _, err := range []error{
		ErrInvalidModulus, ErrNegativeExponent, ErrNoInverseExists,
		ErrMalformedSymbolStream, ErrSymbolOutOfRange, ErrInvalidPrimePair,
	} {
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, err.Error())
	}
	assert.NotErrorIs(t, ErrKeyGenerationExhausted, apperrors.ErrInvalidInput)
}
