package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexedError struct {
	Index int
}

func (e indexedError) Error() string { return "bad symbol" }

func TestWrap(t *testing.T) {
	t.Run("Success_PreservesChain", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "invalid modulus")
		require.Error(t, err)
		assert.Equal(t, "invalid modulus: invalid input", err.Error())
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})
}

func TestWrapf(t *testing.T) {
	t.Run("Success_FormatsContext", func(t *testing.T) {
		err := Wrapf(ErrInvalidInput, "symbol %d", 7)
		require.Error(t, err)
		assert.Equal(t, "symbol 7: invalid input", err.Error())
		assert.True(t, Is(err, ErrInvalidInput))
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "symbol %d", 7))
	})
}

func TestIsAndAs(t *testing.T) {
	wrapped := Wrap(Wrap(ErrNotFound, "key pair not found"), "lookup")
	assert.True(t, Is(wrapped, ErrNotFound))
	assert.False(t, Is(wrapped, ErrConflict))

	var target indexedError
	require.True(t, As(Wrap(indexedError{Index: 3}, "decode"), &target))
	assert.Equal(t, 3, target.Index)
}

func TestStandardErrors(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.Equal(t, "conflict", ErrConflict.Error())
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.Equal(t, "boom", New("boom").Error())
}
