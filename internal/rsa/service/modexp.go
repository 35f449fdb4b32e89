package service

import (
	"math/big"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// ModExp computes a^k mod m by binary square-and-multiply, returning a value in [0, m).
//
// The bits of k are scanned from the most significant down. For every set bit of
// weight p the accumulator is multiplied by a^(2^p) mod m, and each a^(2^p) comes
// from repeated squaring of the one before it. a^k itself is never materialized.
//
// k = 0 yields 1 mod m and m = 1 yields 0. A modulus <= 0 returns ErrInvalidModulus
// and a negative exponent returns ErrNegativeExponent.
func ModExp(a, k, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, rsaDomain.ErrInvalidModulus
	}
	if k == nil || k.Sign() < 0 {
		return nil, rsaDomain.ErrNegativeExponent
	}
	if a == nil {
		a = new(big.Int)
	}

	base := new(big.Int).Mod(a, m)
	bitCount := k.BitLen()
	squares := powersOfTwo(base, bitCount, m)

	acc := big.NewInt(1)
	for i := 0; i < bitCount; i++ {
		p := bitCount - 1 - i
		if k.Bit(p) == 1 {
			acc.Mul(acc, squares[p])
			acc.Mod(acc, m)
		}
	}

	return acc.Mod(acc, m), nil
}

// powersOfTwo returns a^(2^p) mod m for p in [0, count).
func powersOfTwo(a *big.Int, count int, m *big.Int) []*big.Int {
	squares := make([]*big.Int, count)
	if count == 0 {
		return squares
	}
	squares[0] = new(big.Int).Mod(a, m)
	for p := 1; p < count; p++ {
		sq := new(big.Int).Mul(squares[p-1], squares[p-1])
		squares[p] = sq.Mod(sq, m)
	}
	return squares
}
