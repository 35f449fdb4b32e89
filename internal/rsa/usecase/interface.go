// Package usecase orchestrates key pair lifecycle and cipher operations on top of the
// pure rsa service layer. Key pairs are generated by the service, persisted through a
// repository and looked up by id when encrypting or decrypting symbol streams.
package usecase

import (
	"context"
	"math/big"

	"github.com/google/uuid"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// KeyPairRepository defines persistence operations for key records.
type KeyPairRepository interface {
	Create(ctx context.Context, record *rsaDomain.KeyRecord) error
	Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error)
	List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// KeyPairUseCase defines key pair lifecycle business logic.
type KeyPairUseCase interface {
	// Generate derives a fresh key pair from the primes p and q and persists it.
	// The primes themselves are never stored.
	Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error)
	List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CipherUseCase defines encryption and decryption with stored key pairs.
type CipherUseCase interface {
	Encrypt(ctx context.Context, keyID uuid.UUID, stream rsaDomain.SymbolStream) (rsaDomain.SymbolStream, error)
	Decrypt(ctx context.Context, keyID uuid.UUID, stream rsaDomain.SymbolStream) (rsaDomain.SymbolStream, error)
	// EncryptEncoded accepts and returns space-separated decimal symbols.
	EncryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error)
	// DecryptEncoded accepts and returns space-separated decimal symbols.
	DecryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error)
}
