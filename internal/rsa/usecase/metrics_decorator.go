package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/toyrsa/internal/metrics"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

const metricsDomain = "rsa"

// record emits the operation counter and duration histogram for one call.
func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// keyPairUseCaseWithMetrics decorates KeyPairUseCase with metrics instrumentation.
type keyPairUseCaseWithMetrics struct {
	next    KeyPairUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyPairUseCaseWithMetrics wraps a KeyPairUseCase with metrics recording.
func NewKeyPairUseCaseWithMetrics(useCase KeyPairUseCase, m metrics.BusinessMetrics) KeyPairUseCase {
	return &keyPairUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for key pair generation.
func (k *keyPairUseCaseWithMetrics) Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyRecord, error) {
	start := time.Now()
	rec, err := k.next.Generate(ctx, p, q)
	record(ctx, k.metrics, "key_generate", start, err)
	return rec, err
}

// Get records metrics for key pair retrieval.
func (k *keyPairUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	start := time.Now()
	rec, err := k.next.Get(ctx, id)
	record(ctx, k.metrics, "key_get", start, err)
	return rec, err
}

// List records metrics for key pair listing.
func (k *keyPairUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	start := time.Now()
	recs, err := k.next.List(ctx, offset, limit)
	record(ctx, k.metrics, "key_list", start, err)
	return recs, err
}

// Delete records metrics for key pair deletion.
func (k *keyPairUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := k.next.Delete(ctx, id)
	record(ctx, k.metrics, "key_delete", start, err)
	return err
}

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for stream encryption.
func (c *cipherUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	start := time.Now()
	out, err := c.next.Encrypt(ctx, keyID, stream)
	record(ctx, c.metrics, "encrypt", start, err)
	return out, err
}

// Decrypt records metrics for stream decryption.
func (c *cipherUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	keyID uuid.UUID,
	stream rsaDomain.SymbolStream,
) (rsaDomain.SymbolStream, error) {
	start := time.Now()
	out, err := c.next.Decrypt(ctx, keyID, stream)
	record(ctx, c.metrics, "decrypt", start, err)
	return out, err
}

// EncryptEncoded records metrics for encoded stream encryption.
func (c *cipherUseCaseWithMetrics) EncryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	start := time.Now()
	out, err := c.next.EncryptEncoded(ctx, keyID, encoded)
	record(ctx, c.metrics, "encrypt_encoded", start, err)
	return out, err
}

// DecryptEncoded records metrics for encoded stream decryption.
func (c *cipherUseCaseWithMetrics) DecryptEncoded(ctx context.Context, keyID uuid.UUID, encoded string) (string, error) {
	start := time.Now()
	out, err := c.next.DecryptEncoded(ctx, keyID, encoded)
	record(ctx, c.metrics, "decrypt_encoded", start, err)
	return out, err
}
