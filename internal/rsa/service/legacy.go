package service

import (
	"math/big"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// The routines below are alternate formulations kept for comparison with the core
// algorithms. Key generation and the cipher never call them.

// GCD computes gcd(a, b) with the plain Euclidean algorithm, without coefficients.
// Operands are taken by absolute value.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// BruteForceInverse searches d in [1, phi) with e*d mod phi = 1. It reports false when
// no such d exists. The search is linear in phi.
func BruteForceInverse(e, phi *big.Int) (*big.Int, bool) {
	if phi == nil || phi.Cmp(one) <= 0 || e == nil {
		return nil, false
	}

	product := new(big.Int)
	for d := big.NewInt(1); d.Cmp(phi) < 0; d.Add(d, one) {
		product.Mul(e, d)
		if product.Mod(product, phi).Cmp(one) == 0 {
			return new(big.Int).Set(d), true
		}
	}
	return nil, false
}

// ModExpRightToLeft computes a^k mod m scanning the bits of k from the least
// significant up, squaring the base at each step and folding it into the result
// on set bits.
func ModExpRightToLeft(a, k, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, rsaDomain.ErrInvalidModulus
	}
	if k == nil || k.Sign() < 0 {
		return nil, rsaDomain.ErrNegativeExponent
	}

	result := new(big.Int).Mod(one, m)
	base := new(big.Int).Mod(a, m)
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result.Mul(result, base)
			result.Mod(result, m)
		}
		base.Mul(base, base)
		base.Mod(base, m)
	}
	return result, nil
}

// FastPow computes b^e without a modulus by recursive squaring:
// b^e = (b*b)^(e/2) for even e and b*(b*b)^((e-1)/2) for odd e.
func FastPow(b *big.Int, e int) (*big.Int, error) {
	if e < 0 {
		return nil, apperrors.Wrap(rsaDomain.ErrNegativeExponent, "fast pow")
	}
	if e == 0 {
		return big.NewInt(1), nil
	}
	if e == 1 {
		return new(big.Int).Set(b), nil
	}

	squared := new(big.Int).Mul(b, b)
	half, err := FastPow(squared, e/2)
	if err != nil {
		return nil, err
	}
	if e%2 == 0 {
		return half, nil
	}
	return half.Mul(half, b), nil
}
