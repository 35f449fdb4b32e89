package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/toyrsa/internal/database"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
	rsaService "github.com/allisson/toyrsa/internal/rsa/service"
)

// keyPairUseCase implements KeyPairUseCase.
type keyPairUseCase struct {
	txManager database.TxManager
	keyRepo   KeyPairRepository
	generator rsaService.KeyPairGenerator
	logger    *slog.Logger
}

// NewKeyPairUseCase creates a new KeyPairUseCase. A nil logger disables logging.
func NewKeyPairUseCase(
	txManager database.TxManager,
	keyRepo KeyPairRepository,
	generator rsaService.KeyPairGenerator,
	logger *slog.Logger,
) KeyPairUseCase {
	return &keyPairUseCase{
		txManager: txManager,
		keyRepo:   keyRepo,
		generator: generator,
		logger:    logger,
	}
}

// Generate validates the primes, generates a key pair and persists it.
func (k *keyPairUseCase) Generate(ctx context.Context, p, q *big.Int) (*rsaDomain.KeyRecord, error) {
	input := GenerateKeyPairInput{P: p, Q: q}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	keyPair, err := k.generator.Generate(ctx, p, q)
	if err != nil {
		return nil, err
	}

	record := &rsaDomain.KeyRecord{
		ID:        uuid.Must(uuid.NewV7()),
		KeyPair:   *keyPair,
		CreatedAt: time.Now().UTC(),
	}
	if err := k.keyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if k.logger != nil {
		k.logger.Info("key pair generated",
			slog.String("key_id", record.ID.String()),
			slog.Int("modulus_bits", record.KeyPair.Public.N.BitLen()),
		)
	}

	return record, nil
}

// Get retrieves a key record by id.
func (k *keyPairUseCase) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	return k.keyRepo.Get(ctx, id)
}

// List retrieves key records ordered by creation time, newest first.
func (k *keyPairUseCase) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	input := ListInput{Offset: offset, Limit: limit}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return k.keyRepo.List(ctx, offset, limit)
}

// Delete removes a key record. The lookup and the delete share one transaction so a
// missing record is reported as ErrKeyPairNotFound.
func (k *keyPairUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := k.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := k.keyRepo.Get(txCtx, id); err != nil {
			return err
		}
		return k.keyRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	if k.logger != nil {
		k.logger.Info("key pair deleted", slog.String("key_id", id.String()))
	}
	return nil
}
