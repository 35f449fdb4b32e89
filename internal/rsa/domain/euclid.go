package domain

import "math/big"

// EuclidRow is one line of the extended Euclidean table.
//
// Every row satisfies R = S*a + T*b for the (a, b) the table was built from.
// Q is nil on the two seed rows.
type EuclidRow struct {
	Q *big.Int // Quotient of the two previous remainders
	R *big.Int // Remainder
	S *big.Int // Bezout coefficient for a
	T *big.Int // Bezout coefficient for b
}

// EuclidTrace is the ordered table produced by the extended Euclidean algorithm.
// It always ends with the row whose remainder is zero.
type EuclidTrace []EuclidRow

// LastNonZero returns the row holding the last non-zero remainder, i.e. the row
// right before the terminating zero row. Its R is the gcd and, when the gcd is 1,
// its S is the inverse of a modulo b (before sign normalization).
func (t EuclidTrace) LastNonZero() (EuclidRow, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].R.Sign() != 0 {
			return t[i], true
		}
	}
	return EuclidRow{}, false
}
