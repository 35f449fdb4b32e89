// Package repository implements key pair persistence for PostgreSQL, MySQL and SQLite.
//
// Big integers are stored as base-10 text so any exponent or modulus size round-trips
// exactly without driver-specific numeric types. Only e, d and n are persisted; the
// primes and the totient never leave the key generator.
//
// # Transaction Support
//
// All repositories resolve their executor through database.GetTx(), so calls made with
// a context produced by TxManager.WithTx join that transaction:
//
//	txManager := database.NewTxManager(db)
//	err := txManager.WithTx(ctx, func(txCtx context.Context) error {
//	    if _, err := repo.Get(txCtx, id); err != nil {
//	        return err
//	    }
//	    return repo.Delete(txCtx, id)
//	})
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/toyrsa/internal/database"
	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// PostgreSQLKeyPairRepository implements key pair persistence for PostgreSQL databases.
//
// Database schema requirements:
//   - id: UUID PRIMARY KEY
//   - public_exponent: TEXT (decimal e)
//   - private_exponent: TEXT (decimal d)
//   - modulus: TEXT (decimal n)
//   - created_at: TIMESTAMP WITH TIME ZONE
type PostgreSQLKeyPairRepository struct {
	db *sql.DB
}

// Create inserts a new key record.
func (p *PostgreSQLKeyPairRepository) Create(ctx context.Context, record *rsaDomain.KeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO key_pairs (id, public_exponent, private_exponent, modulus, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	row := newKeyPairRow(record)
	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		row.publicExponent,
		row.privateExponent,
		row.modulus,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create key pair")
	}
	return nil
}

// Get retrieves a key record by id.
//
// Returns:
//   - The key record with its exponents and modulus parsed back into big integers
//   - rsaDomain.ErrKeyPairNotFound if no row has the given id
func (p *PostgreSQLKeyPairRepository) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + keyPairColumns + ` FROM key_pairs WHERE id = $1`

	var record rsaDomain.KeyRecord
	var row keyPairRow

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&row.publicExponent,
		&row.privateExponent,
		&row.modulus,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rsaDomain.ErrKeyPairNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get key pair")
	}

	keyPair, err := row.keyPair()
	if err != nil {
		return nil, err
	}
	record.KeyPair = *keyPair
	return &record, nil
}

// List retrieves a page of key records ordered by creation time, newest first.
func (p *PostgreSQLKeyPairRepository) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + keyPairColumns + ` FROM key_pairs
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list key pairs")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*rsaDomain.KeyRecord, 0)
	for rows.Next() {
		var record rsaDomain.KeyRecord
		var row keyPairRow

		err := rows.Scan(
			&record.ID,
			&row.publicExponent,
			&row.privateExponent,
			&row.modulus,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan key pair")
		}

		keyPair, err := row.keyPair()
		if err != nil {
			return nil, err
		}
		record.KeyPair = *keyPair
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate key pairs")
	}

	return records, nil
}

// Delete removes a key record. Returns rsaDomain.ErrKeyPairNotFound when no row matched.
func (p *PostgreSQLKeyPairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM key_pairs WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete key pair")
	}
	return checkDeleted(result)
}

// NewPostgreSQLKeyPairRepository creates a new PostgreSQL key pair repository instance.
func NewPostgreSQLKeyPairRepository(db *sql.DB) *PostgreSQLKeyPairRepository {
	return &PostgreSQLKeyPairRepository{db: db}
}

// checkDeleted maps zero affected rows to ErrKeyPairNotFound.
func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return rsaDomain.ErrKeyPairNotFound
	}
	return nil
}
