package service

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 53, 61, 101, 7919}
	for _, p := range primes {
		assert.True(t, IsPrime(big.NewInt(p)), "%d is prime", p)
	}

	composites := []int64{-7, 0, 1, 4, 9, 15, 25, 49, 3233, 7917}
	for _, c := range composites {
		assert.False(t, IsPrime(big.NewInt(c)), "%d is not prime", c)
	}

	assert.False(t, IsPrime(nil))
}

func TestEncodeDecodeStream(t *testing.T) {
	t.Run("Success_RoundTrip", func(t *testing.T) {
		stream := rsaDomain.NewSymbolStream(72, 0, 2790, 3232)

		encoded, err := EncodeStream(stream)
		require.NoError(t, err)
		assert.Equal(t, "72 0 2790 3232", encoded)

		decoded, err := DecodeStream(encoded)
		require.NoError(t, err)
		assert.Equal(t, stream.Int64s(), decoded.Int64s())
	})

	t.Run("Success_ToleratesWhitespaceRuns", func(t *testing.T) {
		decoded, err := DecodeStream("  1\t2 \n 3  ")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, decoded.Int64s())
	})

	t.Run("Success_EmptyInput", func(t *testing.T) {
		decoded, err := DecodeStream("")
		require.NoError(t, err)
		assert.Empty(t, decoded)

		encoded, err := EncodeStream(rsaDomain.SymbolStream{})
		require.NoError(t, err)
		assert.Equal(t, "", encoded)
	})

	t.Run("Error_NotAnInteger", func(t *testing.T) {
		_, err := DecodeStream("1 2.5 3")
		assert.ErrorIs(t, err, rsaDomain.ErrMalformedSymbolStream)
		assert.Contains(t, err.Error(), "symbol 1")
	})

	t.Run("Error_Negative", func(t *testing.T) {
		_, err := DecodeStream("1 -2")
		assert.ErrorIs(t, err, rsaDomain.ErrMalformedSymbolStream)
	})

	t.Run("Error_EncodeNegative", func(t *testing.T) {
		_, err := EncodeStream(rsaDomain.NewSymbolStream(-1))
		assert.ErrorIs(t, err, rsaDomain.ErrMalformedSymbolStream)
	})
}

func TestTextSymbols(t *testing.T) {
	t.Run("Success_EncryptDecryptText", func(t *testing.T) {
		kp := textbookKeyPair(t)
		c := NewCipher(2)

		stream := TextToSymbols("Olá, RSA!")
		assert.Len(t, stream, 9)
		assert.Equal(t, int64('á'), stream[2].Int64())

		ciphertext, err := c.EncryptStream(context.Background(), stream, kp.Public)
		require.NoError(t, err)
		plaintext, err := c.DecryptStream(context.Background(), ciphertext, kp.Private)
		require.NoError(t, err)

		text, err := SymbolsToText(plaintext)
		require.NoError(t, err)
		assert.Equal(t, "Olá, RSA!", text)
	})

	t.Run("Error_InvalidCodePoint", func(t *testing.T) {
		_, err := SymbolsToText(rsaDomain.NewSymbolStream(0xD800))
		assert.ErrorIs(t, err, rsaDomain.ErrMalformedSymbolStream)

		_, err = SymbolsToText(rsaDomain.NewSymbolStream(0x110000))
		assert.ErrorIs(t, err, rsaDomain.ErrMalformedSymbolStream)
	})
}

func TestLegacyParity(t *testing.T) {
	t.Run("Success_GCDMatchesExtendedEuclid", func(t *testing.T) {
		for a := int64(0); a <= 60; a++ {
			for b := int64(1); b <= 60; b++ {
				x, y := big.NewInt(a), big.NewInt(b)
				expected, _, err := ExtendedEuclid(x, y)
				require.NoError(t, err)
				assert.Zero(t, GCD(x, y).Cmp(expected), "gcd(%d, %d)", a, b)
			}
		}
		assert.Equal(t, int64(2), GCD(big.NewInt(240), big.NewInt(46)).Int64())
	})

	t.Run("Success_BruteForceInverseMatchesModInverse", func(t *testing.T) {
		phi := big.NewInt(3120)
		for e := int64(2); e < 200; e++ {
			x := big.NewInt(e)
			brute, ok := BruteForceInverse(x, phi)
			inverse, err := ModInverse(x, phi)
			if err != nil {
				assert.ErrorIs(t, err, rsaDomain.ErrNoInverseExists)
				assert.False(t, ok, "e = %d", e)
				continue
			}
			require.True(t, ok, "e = %d", e)
			assert.Zero(t, brute.Cmp(inverse), "e = %d", e)
		}
	})

	t.Run("Success_RightToLeftMatchesModExp", func(t *testing.T) {
		for m := int64(1); m <= 25; m++ {
			for a := int64(0); a <= 25; a++ {
				for k := int64(0); k <= 33; k++ {
					x, y, z := big.NewInt(a), big.NewInt(k), big.NewInt(m)
					expected, err := ModExp(x, y, z)
					require.NoError(t, err)
					actual, err := ModExpRightToLeft(x, y, z)
					require.NoError(t, err)
					assert.Zero(t, actual.Cmp(expected), "%d^%d mod %d", a, k, m)
				}
			}
		}
	})

	t.Run("Error_RightToLeftRejectsBadInput", func(t *testing.T) {
		_, err := ModExpRightToLeft(big.NewInt(2), big.NewInt(3), big.NewInt(0))
		assert.ErrorIs(t, err, rsaDomain.ErrInvalidModulus)
		_, err = ModExpRightToLeft(big.NewInt(2), big.NewInt(-3), big.NewInt(5))
		assert.ErrorIs(t, err, rsaDomain.ErrNegativeExponent)
	})

	t.Run("Success_FastPowMatchesExp", func(t *testing.T) {
		for b := int64(-5); b <= 12; b++ {
			for e := 0; e <= 30; e++ {
				actual, err := FastPow(big.NewInt(b), e)
				require.NoError(t, err)
				expected := new(big.Int).Exp(big.NewInt(b), big.NewInt(int64(e)), nil)
				assert.Zero(t, actual.Cmp(expected), "%d^%d", b, e)
			}
		}
	})

	t.Run("Error_FastPowNegativeExponent", func(t *testing.T) {
		_, err := FastPow(big.NewInt(2), -1)
		assert.ErrorIs(t, err, rsaDomain.ErrNegativeExponent)
	})

	t.Run("Error_BruteForceInverseDegenerateModulus", func(t *testing.T) {
		_, ok := BruteForceInverse(big.NewInt(3), big.NewInt(1))
		assert.False(t, ok)
	})
}
