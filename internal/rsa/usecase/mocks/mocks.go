// Package mocks provides mock implementations of the rsa use case collaborators for testing.
package mocks

import (
	"context"
	"math/big"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// MockKeyPairRepository is a mock implementation of KeyPairRepository for testing.
type MockKeyPairRepository struct {
	mock.Mock
}

// Create mocks the Create method of KeyPairRepository.
func (m *MockKeyPairRepository) Create(ctx context.Context, record *rsaDomain.KeyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Get mocks the Get method of KeyPairRepository.
func (m *MockKeyPairRepository) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyRecord), args.Error(1)
}

// List mocks the List method of KeyPairRepository.
func (m *MockKeyPairRepository) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rsaDomain.KeyRecord), args.Error(1)
}

// Delete mocks the Delete method of KeyPairRepository.
func (m *MockKeyPairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockKeyPairGenerator is a mock implementation of KeyPairGenerator for testing.
type MockKeyPairGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of KeyPairGenerator.
func (m *MockKeyPairGenerator) Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyPair, error) {
	args := m.Called(ctx, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyPair), args.Error(1)
}

// Derive mocks the Derive method of KeyPairGenerator.
func (m *MockKeyPairGenerator) Derive(p, q, e *big.Int) (*rsaDomain.KeyPair, error) {
	args := m.Called(p, q, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyPair), args.Error(1)
}

// MockSymbolCipher is a mock implementation of SymbolCipher for testing.
type MockSymbolCipher struct {
	mock.Mock
}

// EncryptSymbol mocks the EncryptSymbol method of SymbolCipher.
func (m *MockSymbolCipher) EncryptSymbol(symbol *big.Int, pub rsaDomain.PublicKey) (*big.Int, error) {
	args := m.Called(symbol, pub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// DecryptSymbol mocks the DecryptSymbol method of SymbolCipher.
func (m *MockSymbolCipher) DecryptSymbol(symbol *big.Int, priv rsaDomain.PrivateKey) (*big.Int, error) {
	args := m.Called(symbol, priv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// EncryptStream mocks the EncryptStream method of SymbolCipher.
func (m *MockSymbolCipher) EncryptStream(
	ctx context.Context,
	plaintext rsaDomain.SymbolStream,
	pub rsaDomain.PublicKey,
) (rsaDomain.SymbolStream, error) {
	args := m.Called(ctx, plaintext, pub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rsaDomain.SymbolStream), args.Error(1)
}

// DecryptStream mocks the DecryptStream method of SymbolCipher.
func (m *MockSymbolCipher) DecryptStream(
	ctx context.Context,
	ciphertext rsaDomain.SymbolStream,
	priv rsaDomain.PrivateKey,
) (rsaDomain.SymbolStream, error) {
	args := m.Called(ctx, ciphertext, priv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rsaDomain.SymbolStream), args.Error(1)
}

// MockKeyPairUseCase is a mock implementation of KeyPairUseCase for testing.
type MockKeyPairUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of KeyPairUseCase.
func (m *MockKeyPairUseCase) Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyRecord, error) {
	args := m.Called(ctx, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyRecord), args.Error(1)
}

// Get mocks the Get method of KeyPairUseCase.
func (m *MockKeyPairUseCase) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyRecord), args.Error(1)
}

// List mocks the List method of KeyPairUseCase.
func (m *MockKeyPairUseCase) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rsaDomain.KeyRecord), args.Error(1)
}

// Delete mocks the Delete method of KeyPairUseCase.
func (m *MockKeyPairUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCipherUseCase is a mock implementation of CipherUseCase for testing.
type MockCipherUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CipherUseCase.
func (m *MockCipherUseCase) Encrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	args := m.Called(ctx, keyID, stream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rsaDomain.SymbolStream), args.Error(1)
}

// Decrypt mocks the Decrypt method of CipherUseCase.
func (m *MockCipherUseCase) Decrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	args := m.Called(ctx, keyID, stream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rsaDomain.SymbolStream), args.Error(1)
}

// EncryptEncoded mocks the EncryptEncoded method of CipherUseCase.
func (m *MockCipherUseCase) EncryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	args := m.Called(ctx, keyID, encoded)
	return args.String(0), args.Error(1)
}

// DecryptEncoded mocks the DecryptEncoded method of CipherUseCase.
func (m *MockCipherUseCase) DecryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	args := m.Called(ctx, keyID, encoded)
	return args.String(0), args.Error(1)
}
