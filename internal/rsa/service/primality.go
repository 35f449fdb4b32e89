package service

import "math/big"

// IsPrime reports whether x is prime by trial division up to the integer square
// root of x. It is exact but linear in sqrt(x), which suits the small primes this
// toolkit is meant for.
func IsPrime(x *big.Int) bool {
	if x == nil || x.Cmp(two) < 0 {
		return false
	}

	limit := new(big.Int).Sqrt(x)
	rem := new(big.Int)
	for divisor := big.NewInt(2); divisor.Cmp(limit) <= 0; divisor.Add(divisor, one) {
		if rem.Mod(x, divisor).Sign() == 0 {
			return false
		}
	}
	return true
}
