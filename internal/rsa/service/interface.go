// Package service implements the arithmetic core of the textbook RSA toolkit:
// the extended Euclidean algorithm, square-and-multiply modular exponentiation,
// key generation, and symbol-wise encryption and decryption.
//
// Everything here is pure given its inputs. The only non-deterministic step,
// exponent sampling, draws from an injected RandomSource.
//
// The keys produced are textbook RSA: no padding, no key-size policy and no
// constant-time arithmetic. They are for teaching, never for protecting data.
package service

import (
	"context"
	"math/big"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// RandomSource provides uniformly distributed big integers.
type RandomSource interface {
	// Int returns a uniform random value in [0, max). max must be positive.
	Int(max *big.Int) (*big.Int, error)
}

// KeyPairGenerator produces RSA key pairs from two primes.
type KeyPairGenerator interface {
	// Generate samples a public exponent and derives the matching private exponent.
	Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyPair, error)

	// Derive builds the key pair for a caller-chosen public exponent.
	Derive(p, q, e *big.Int) (*rsaDomain.KeyPair, error)
}

// SymbolCipher encrypts and decrypts symbols and symbol streams.
type SymbolCipher interface {
	// EncryptSymbol computes m^e mod n.
	EncryptSymbol(m *big.Int, pub rsaDomain.PublicKey) (*big.Int, error)

	// DecryptSymbol computes c^d mod n.
	DecryptSymbol(c *big.Int, priv rsaDomain.PrivateKey) (*big.Int, error)

	// EncryptStream encrypts every symbol, preserving order and length.
	EncryptStream(
		ctx context.Context,
		plaintext rsaDomain.SymbolStream,
		pub rsaDomain.PublicKey,
	) (rsaDomain.SymbolStream, error)

	// DecryptStream decrypts every symbol, preserving order and length.
	DecryptStream(
		ctx context.Context,
		ciphertext rsaDomain.SymbolStream,
		priv rsaDomain.PrivateKey,
	) (rsaDomain.SymbolStream, error)
}
