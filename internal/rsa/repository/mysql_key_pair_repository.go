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

// MySQLKeyPairRepository implements key pair persistence for MySQL databases.
// Ids are stored as BINARY(16).
type MySQLKeyPairRepository struct {
	db *sql.DB
}

func (m *MySQLKeyPairRepository) Create(ctx context.Context, record *rsaDomain.KeyRecord) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO key_pairs (id, public_exponent, private_exponent, modulus, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal key pair id")
	}

	row := newKeyPairRow(record)
	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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

func (m *MySQLKeyPairRepository) Get(ctx context.Context, keyID uuid.UUID) (*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + keyPairColumns + ` FROM key_pairs WHERE id = ?`

	id, err := keyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal key pair id")
	}

	var idBytes []byte
	var row keyPairRow
	var createdAt time.Time

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&row.publicExponent,
		&row.privateExponent,
		&row.modulus,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rsaDomain.ErrKeyPairNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get key pair")
	}

	return m.toRecord(idBytes, row, createdAt)
}

func (m *MySQLKeyPairRepository) List(ctx context.Context, offset, limit int) ([]*rsaDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
		var idBytes []byte
		var row keyPairRow
		var createdAt time.Time

		if err := rows.Scan(&idBytes, &row.publicExponent, &row.privateExponent, &row.modulus, &createdAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan key pair")
		}

		record, err := m.toRecord(idBytes, row, createdAt)
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

func (m *MySQLKeyPairRepository) Delete(ctx context.Context, keyID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := keyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal key pair id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM key_pairs WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete key pair")
	}
	return checkDeleted(result)
}

func (m *MySQLKeyPairRepository) toRecord(
	idBytes []byte,
	row keyPairRow,
	createdAt time.Time,
) (*rsaDomain.KeyRecord, error) {
	record := rsaDomain.KeyRecord{CreatedAt: createdAt}
	if err := record.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal key pair id")
	}

	keyPair, err := row.keyPair()
	if err != nil {
		return nil, err
	}
	record.KeyPair = *keyPair
	return &record, nil
}

func NewMySQLKeyPairRepository(db *sql.DB) *MySQLKeyPairRepository {
	return &MySQLKeyPairRepository{db: db}
}
