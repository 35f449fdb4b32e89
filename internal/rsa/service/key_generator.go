package service

import (
	"context"
	"math/big"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// KeyGenerator derives RSA key pairs from two primes.
//
// The public exponent e is drawn uniformly from [2, phi) until gcd(e, phi) = 1, and
// the private exponent d is the inverse of e modulo phi taken from the Euclid table.
// KeyGenerator does not test p and q for primality: non-primes give a structurally
// valid but meaningless pair. Callers validate the primes first (see IsPrime).
//
// maxAttempts caps the number of draws; zero leaves the loop unbounded, in which case
// termination is probabilistic but certain for any phi > 2.
type KeyGenerator struct {
	random      RandomSource
	maxAttempts int
}

// NewKeyGenerator creates a KeyGenerator sampling exponents from random.
func NewKeyGenerator(random RandomSource, maxAttempts int) *KeyGenerator {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &KeyGenerator{
		random:      random,
		maxAttempts: maxAttempts,
	}
}

// Generate samples a public exponent and returns ((e, n), (d, n)).
//
// Candidates sharing a factor with phi are discarded and redrawn. The context is
// checked between draws. ErrKeyGenerationExhausted is returned once maxAttempts
// draws failed.
func (g *KeyGenerator) Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyPair, error) {
	n, phi, err := modulusAndTotient(p, q)
	if err != nil {
		return nil, err
	}

	// e is drawn from [2, phi): Int yields [0, phi-2), shifted up by two
	span := new(big.Int).Sub(phi, two)

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		offset, err := g.random.Int(span)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to sample public exponent")
		}
		e := offset.Add(offset, two)

		d, err := ModInverse(e, phi)
		if err != nil {
			if apperrors.Is(err, rsaDomain.ErrNoInverseExists) {
				continue
			}
			return nil, err
		}
		if d.Sign() <= 0 {
			continue
		}

		if err := verifyExponents(e, d, phi); err != nil {
			return nil, err
		}
		return rsaDomain.NewKeyPair(e, d, n), nil
	}

	return nil, apperrors.Wrapf(rsaDomain.ErrKeyGenerationExhausted, "after %d attempts", g.maxAttempts)
}

// Derive returns the key pair for a fixed public exponent e, bypassing sampling.
// e must satisfy 1 < e < phi and be coprime with phi.
func (g *KeyGenerator) Derive(p, q, e *big.Int) (*rsaDomain.KeyPair, error) {
	n, phi, err := modulusAndTotient(p, q)
	if err != nil {
		return nil, err
	}
	if e == nil || e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "public exponent must satisfy 1 < e < phi")
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}
	if err := verifyExponents(e, d, phi); err != nil {
		return nil, err
	}
	return rsaDomain.NewKeyPair(e, d, n), nil
}

// modulusAndTotient returns n = p*q and phi = (p-1)(q-1).
func modulusAndTotient(p, q *big.Int) (*big.Int, *big.Int, error) {
	if p == nil || q == nil {
		return nil, nil, apperrors.Wrap(rsaDomain.ErrInvalidPrimePair, "p and q must be set")
	}
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 {
		return nil, nil, apperrors.Wrap(rsaDomain.ErrInvalidPrimePair, "p and q must be greater than one")
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	if phi.Cmp(two) <= 0 {
		return nil, nil, apperrors.Wrap(rsaDomain.ErrInvalidPrimePair, "totient leaves no candidate exponent")
	}
	return n, phi, nil
}

// verifyExponents checks that 0 < d < phi and e*d mod phi = 1.
func verifyExponents(e, d, phi *big.Int) error {
	if d.Sign() <= 0 || d.Cmp(phi) >= 0 {
		return rsaDomain.ErrKeyVerificationFailed
	}
	product := new(big.Int).Mul(e, d)
	if product.Mod(product, phi).Cmp(one) != 0 {
		return rsaDomain.ErrKeyVerificationFailed
	}
	return nil
}
