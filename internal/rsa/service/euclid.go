package service

import (
	"math/big"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ExtendedEuclid computes gcd(a, b) together with the full Bezout table.
//
// The table starts with the seed rows (r=a, s=1, t=0) and (r=b, s=0, t=1). Each
// following row takes the two rows before it:
//
//	q = r[i-2] div r[i-1]
//	r = r[i-2] mod r[i-1]
//	s = s[i-2] - q*s[i-1]
//	t = t[i-2] - q*t[i-1]
//
// and the table stops once a remainder reaches zero. The gcd is the last non-zero
// remainder; every row satisfies r = s*a + t*b.
//
// a and b must be non-negative and not both zero. With b = 0 the gcd is a and the
// coefficients are (1, 0).
func ExtendedEuclid(a, b *big.Int) (*big.Int, rsaDomain.EuclidTrace, error) {
	if a == nil || b == nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "euclid operands must be set")
	}
	if a.Sign() < 0 || b.Sign() < 0 {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "euclid operands must be non-negative")
	}
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "euclid operands must not both be zero")
	}

	trace := rsaDomain.EuclidTrace{
		{R: new(big.Int).Set(a), S: big.NewInt(1), T: big.NewInt(0)},
		{R: new(big.Int).Set(b), S: big.NewInt(0), T: big.NewInt(1)},
	}

	for trace[len(trace)-1].R.Sign() != 0 {
		prev2 := trace[len(trace)-2]
		prev1 := trace[len(trace)-1]

		q, r := new(big.Int).DivMod(prev2.R, prev1.R, new(big.Int))
		s := new(big.Int).Sub(prev2.S, new(big.Int).Mul(q, prev1.S))
		t := new(big.Int).Sub(prev2.T, new(big.Int).Mul(q, prev1.T))

		trace = append(trace, rsaDomain.EuclidRow{Q: q, R: r, S: s, T: t})
	}

	last, _ := trace.LastNonZero()
	return new(big.Int).Set(last.R), trace, nil
}

// ModInverse returns the inverse of a modulo m, normalized into [0, m).
//
// The inverse is the s coefficient paired with the last non-zero remainder of the
// Euclid table for (a, m). It exists only when gcd(a, m) = 1; otherwise
// ErrNoInverseExists is returned.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, rsaDomain.ErrInvalidModulus
	}
	if a == nil || a.Sign() < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "inverse operand must be non-negative")
	}

	gcd, trace, err := ExtendedEuclid(a, m)
	if err != nil {
		return nil, err
	}
	if gcd.Cmp(one) != 0 {
		return nil, rsaDomain.ErrNoInverseExists
	}

	row, _ := trace.LastNonZero()

	// big.Int.Mod is Euclidean, so a negative coefficient lands in [0, m)
	return new(big.Int).Mod(row.S, m), nil
}
