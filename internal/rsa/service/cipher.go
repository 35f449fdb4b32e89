package service

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// Cipher applies textbook RSA to symbols: c = m^e mod n and m = c^d mod n.
//
// Stream operations are element-wise with no state carried between symbols, so
// with workers > 1 they fan out over an errgroup and each result is written back
// at its original index. Any invalid symbol fails the whole call.
//
// Without padding a corrupted ciphertext or a wrong key decrypts silently to an
// unrelated value. That is inherent to textbook RSA and is not detected here.
type Cipher struct {
	workers int
}

// NewCipher creates a Cipher. workers <= 1 processes streams sequentially.
func NewCipher(workers int) *Cipher {
	if workers < 1 {
		workers = 1
	}
	return &Cipher{workers: workers}
}

// EncryptSymbol computes m^e mod n.
func (c *Cipher) EncryptSymbol(m *big.Int, pub rsaDomain.PublicKey) (*big.Int, error) {
	return transformSymbol(m, pub.E, pub.N)
}

// DecryptSymbol computes c^d mod n.
func (c *Cipher) DecryptSymbol(ciphertext *big.Int, priv rsaDomain.PrivateKey) (*big.Int, error) {
	return transformSymbol(ciphertext, priv.D, priv.N)
}

// EncryptStream encrypts every symbol of plaintext with the public key.
func (c *Cipher) EncryptStream(
	ctx context.Context,
	plaintext rsaDomain.SymbolStream,
	pub rsaDomain.PublicKey,
) (rsaDomain.SymbolStream, error) {
	return c.transformStream(ctx, plaintext, pub.E, pub.N)
}

// DecryptStream decrypts every symbol of ciphertext with the private key.
func (c *Cipher) DecryptStream(
	ctx context.Context,
	ciphertext rsaDomain.SymbolStream,
	priv rsaDomain.PrivateKey,
) (rsaDomain.SymbolStream, error) {
	return c.transformStream(ctx, ciphertext, priv.D, priv.N)
}

func (c *Cipher) transformStream(
	ctx context.Context,
	stream rsaDomain.SymbolStream,
	exponent, modulus *big.Int,
) (rsaDomain.SymbolStream, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, rsaDomain.ErrInvalidModulus
	}
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	out := make(rsaDomain.SymbolStream, len(stream))

	if c.workers == 1 || len(stream) < 2 {
		for i, symbol := range stream {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result, err := transformSymbol(symbol, exponent, modulus)
			if err != nil {
				return nil, apperrors.Wrapf(err, "symbol %d", i)
			}
			out[i] = result
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, symbol := range stream {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := transformSymbol(symbol, exponent, modulus)
			if err != nil {
				return apperrors.Wrapf(err, "symbol %d", i)
			}
			out[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// transformSymbol validates the symbol against the modulus and computes
// symbol^exponent mod modulus.
func transformSymbol(symbol, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, rsaDomain.ErrInvalidModulus
	}
	if symbol == nil || symbol.Sign() < 0 {
		return nil, rsaDomain.ErrMalformedSymbolStream
	}
	if symbol.Cmp(modulus) >= 0 {
		return nil, rsaDomain.ErrSymbolOutOfRange
	}
	return ModExp(symbol, exponent, modulus)
}
