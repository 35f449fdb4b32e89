package usecase

import (
	"context"

	"github.com/google/uuid"

	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
	rsaService "github.com/allisson/toyrsa/internal/rsa/service"
)

// cipherUseCase implements CipherUseCase.
type cipherUseCase struct {
	keyRepo KeyPairRepository
	cipher  rsaService.SymbolCipher
}

// NewCipherUseCase creates a new CipherUseCase.
func NewCipherUseCase(keyRepo KeyPairRepository, cipher rsaService.SymbolCipher) CipherUseCase {
	return &cipherUseCase{
		keyRepo: keyRepo,
		cipher:  cipher,
	}
}

// Encrypt encrypts every symbol with the public key of the stored key pair.
func (c *cipherUseCase) Encrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	record, err := c.keyRepo.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return c.cipher.EncryptStream(ctx, stream, record.KeyPair.Public)
}

// Decrypt decrypts every symbol with the private key of the stored key pair.
func (c *cipherUseCase) Decrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	record, err := c.keyRepo.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return c.cipher.DecryptStream(ctx, stream, record.KeyPair.Private)
}

// EncryptEncoded decodes, encrypts and re-encodes a decimal symbol stream.
func (c *cipherUseCase) EncryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	return c.transformEncoded(ctx, keyID, encoded, c.Encrypt)
}

// DecryptEncoded decodes, decrypts and re-encodes a decimal symbol stream.
func (c *cipherUseCase) DecryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	return c.transformEncoded(ctx, keyID, encoded, c.Decrypt)
}

func (c *cipherUseCase) transformEncoded(
	ctx context.Context,
	keyID uuid.UUID,
	encoded string,
	transform func(context.Context, uuid.UUID, rsaDomain.SymbolStream) (rsaDomain.SymbolStream, error),
) (string, error) {
	input := EncodedStreamInput{Stream: encoded}
	if err := input.Validate(); err != nil {
		return "", err
	}

	stream, err := rsaService.DecodeStream(encoded)
	if err != nil {
		return "", err
	}

	out, err := transform(ctx, keyID, stream)
	if err != nil {
		return "", err
	}
	return rsaService.EncodeStream(out)
}
