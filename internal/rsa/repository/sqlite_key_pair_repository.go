package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/toyrsa/internal/database"
	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// SQLiteKeyPairRepository implements key pair persistence for SQLite databases.
//
// Ids are stored as their canonical TEXT form and created_at as a DATETIME column,
// which go-sqlite3 parses back into time.Time. Timestamps are normalized to UTC on
// both write and read.
type SQLiteKeyPairRepository struct {
	db *sql.DB
}

// Create inserts a new key record.
func (s *SQLiteKeyPairRepository) Create(ctx context.Context, record *rsaDomain.KeyRecord) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO key_pairs (id, public_exponent, private_exponent, modulus, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	row := newKeyPairRow(record)
	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID.String(),
		row.publicExponent,
		row.privateExponent,
		row.modulus,
		record.CreatedAt.UTC(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create key pair")
	}
	return nil
}

// Get retrieves a key record by id.
func (s *SQLiteKeyPairRepository) Get(ctx context.Context, id uuid.UUID) (*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + keyPairColumns + ` FROM key_pairs WHERE id = ?`

	record, err := scanSQLiteKeyPair(querier.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rsaDomain.ErrKeyPairNotFound
		}
		return nil, err
	}
	return record, nil
}

// List retrieves a page of key records ordered by creation time, newest first.
func (s *SQLiteKeyPairRepository) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + keyPairColumns + ` FROM key_pairs
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list key pairs")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*rsaDomain.KeyRecord, 0)
	for rows.Next() {
		record, err := scanSQLiteKeyPair(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate key pairs")
	}

	return records, nil
}

// Delete removes a key record. Returns rsaDomain.ErrKeyPairNotFound when no row matched.
func (s *SQLiteKeyPairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM key_pairs WHERE id = ?`, id.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete key pair")
	}
	return checkDeleted(result)
}

// NewSQLiteKeyPairRepository creates a new SQLite key pair repository instance.
func NewSQLiteKeyPairRepository(db *sql.DB) *SQLiteKeyPairRepository {
	return &SQLiteKeyPairRepository{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteKeyPair(src scanner) (*rsaDomain.KeyRecord, error) {
	var record rsaDomain.KeyRecord
	var row keyPairRow
	var id string
	var createdAt time.Time

	if err := src.Scan(&id, &row.publicExponent, &row.privateExponent, &row.modulus, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan key pair")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse key pair id")
	}
	record.ID = parsed
	record.CreatedAt = createdAt.UTC()

	keyPair, err := row.keyPair()
	if err != nil {
		return nil, err
	}
	record.KeyPair = *keyPair
	return &record, nil
}
