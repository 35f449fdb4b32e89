// Package domain defines the core models of the textbook RSA toolkit.
//
// A key pair is two (exponent, modulus) tuples sharing the modulus n = p*q:
// (e, n) is public and (d, n) is private, with e*d = 1 (mod (p-1)(q-1)).
// Keys are immutable value objects. The primes and the totient are never kept.
package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// PublicKey is the (e, n) half of a key pair.
type PublicKey struct {
	E *big.Int // Public exponent
	N *big.Int // Modulus p*q
}

// PrivateKey is the (d, n) half of a key pair.
type PrivateKey struct {
	D *big.Int // Private exponent, the inverse of E modulo the totient
	N *big.Int // Modulus p*q
}

// KeyPair bundles the public and private halves produced by key generation.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// NewKeyPair builds a key pair from e, d and n. The values are copied so later
// mutation of the arguments cannot leak into the pair.
func NewKeyPair(e, d, n *big.Int) *KeyPair {
	return &KeyPair{
		Public: PublicKey{
			E: new(big.Int).Set(e),
			N: new(big.Int).Set(n),
		},
		Private: PrivateKey{
			D: new(big.Int).Set(d),
			N: new(big.Int).Set(n),
		},
	}
}

// Modulus returns a copy of n.
func (k *KeyPair) Modulus() *big.Int {
	return new(big.Int).Set(k.Public.N)
}

// KeyRecord is a key pair as persisted by the repositories.
type KeyRecord struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	KeyPair   KeyPair
	CreatedAt time.Time
}
