package repository

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/toyrsa/internal/database"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

var keyPairColumnNames = []string{"id", "public_exponent", "private_exponent", "modulus", "created_at"}

func newTestRecord() *rsaDomain.KeyRecord {
	return &rsaDomain.KeyRecord{
		ID:        uuid.Must(uuid.NewV7()),
		KeyPair:   *rsaDomain.NewKeyPair(big.NewInt(17), big.NewInt(2753), big.NewInt(3233)),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestNewPostgreSQLKeyPairRepository(t *testing.T) {
	db, _ := newSQLMock(t)

	repo := NewPostgreSQLKeyPairRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLKeyPairRepository{}, repo)
}

func TestPostgreSQLKeyPairRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_StoresDecimalText", func(t *testing.T) {
		db, mock := newSQLMock(t)
		record := newTestRecord()

		mock.ExpectExec(`INSERT INTO key_pairs`).
			WithArgs(record.ID, "17", "2753", "3233", record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgreSQLKeyPairRepository(db).Create(ctx, record)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_JoinsTransaction", func(t *testing.T) {
		db, mock := newSQLMock(t)
		record := newTestRecord()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO key_pairs`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewPostgreSQLKeyPairRepository(db)
		err := database.NewTxManager(db).WithTx(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, record)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_ExecFails", func(t *testing.T) {
		db, mock := newSQLMock(t)
		execErr := errors.New("duplicate key")

		mock.ExpectExec(`INSERT INTO key_pairs`).WillReturnError(execErr)

		err := NewPostgreSQLKeyPairRepository(db).Create(ctx, newTestRecord())

		assert.ErrorIs(t, err, execErr)
		assert.Contains(t, err.Error(), "failed to create key pair")
	})
}

func TestPostgreSQLKeyPairRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ParsesRow", func(t *testing.T) {
		db, mock := newSQLMock(t)
		record := newTestRecord()

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs WHERE id = \$1`).
			WithArgs(record.ID).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames).
				AddRow(record.ID.String(), "17", "2753", "3233", record.CreatedAt))

		got, err := NewPostgreSQLKeyPairRepository(db).Get(ctx, record.ID)

		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, int64(17), got.KeyPair.Public.E.Int64())
		assert.Equal(t, int64(2753), got.KeyPair.Private.D.Int64())
		assert.Equal(t, int64(3233), got.KeyPair.Public.N.Int64())
		assert.Equal(t, int64(3233), got.KeyPair.Private.N.Int64())
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("Success_LargeModulus", func(t *testing.T) {
		db, mock := newSQLMock(t)
		id := uuid.Must(uuid.NewV7())
		modulus := "25195908475657893494027183240048398571429282126204032027777137836043662020707595556264018525880784406918290641249515082189298559149176184502808489120072844992687392807287776735971418347270261896375014971824691165077613379859095700097330459748808428401797429100642458691817195118746121515172654632282216869987549182422433637259085141865462043576798423387184774447920739934236584823824281198163815010674810451660377306056201619676256133844143603833904414952634432190114657544454178424020924616515723350778707749817125772467962926386356373289912154831438167899885040445364023527381951378636564391212010397122822120720357"

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames).
				AddRow(id.String(), "65537", "12345", modulus, time.Now().UTC()))

		got, err := NewPostgreSQLKeyPairRepository(db).Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, modulus, got.KeyPair.Public.N.String())
		assert.Equal(t, 2048, got.KeyPair.Public.N.BitLen())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newSQLMock(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := NewPostgreSQLKeyPairRepository(db).Get(ctx, id)

		assert.ErrorIs(t, err, rsaDomain.ErrKeyPairNotFound)
	})

	t.Run("Error_CorruptColumn", func(t *testing.T) {
		db, mock := newSQLMock(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames).
				AddRow(id.String(), "17", "not-a-number", "3233", time.Now().UTC()))

		_, err := NewPostgreSQLKeyPairRepository(db).Get(ctx, id)

		assert.ErrorIs(t, err, ErrCorruptKeyPair)
		assert.Contains(t, err.Error(), "private_exponent")
	})
}

func TestPostgreSQLKeyPairRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PagesNewestFirst", func(t *testing.T) {
		db, mock := newSQLMock(t)
		newer, older := newTestRecord(), newTestRecord()

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$1 OFFSET \$2`).
			WithArgs(2, 10).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames).
				AddRow(newer.ID.String(), "17", "2753", "3233", newer.CreatedAt).
				AddRow(older.ID.String(), "7", "1783", "3233", older.CreatedAt))

		records, err := NewPostgreSQLKeyPairRepository(db).List(ctx, 10, 2)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, newer.ID, records[0].ID)
		assert.Equal(t, older.ID, records[1].ID)
		assert.Equal(t, int64(7), records[1].KeyPair.Public.E.Int64())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_EmptyPage", func(t *testing.T) {
		db, mock := newSQLMock(t)

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs`).
			WithArgs(5, 0).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames))

		records, err := NewPostgreSQLKeyPairRepository(db).List(ctx, 0, 5)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Error_QueryFails", func(t *testing.T) {
		db, mock := newSQLMock(t)
		queryErr := errors.New("connection reset")

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs`).WillReturnError(queryErr)

		_, err := NewPostgreSQLKeyPairRepository(db).List(ctx, 0, 5)

		assert.ErrorIs(t, err, queryErr)
	})

	t.Run("Error_RowIterationFails", func(t *testing.T) {
		db, mock := newSQLMock(t)
		rowErr := errors.New("row broken")
		record := newTestRecord()

		mock.ExpectQuery(`SELECT (.+) FROM key_pairs`).
			WillReturnRows(sqlmock.NewRows(keyPairColumnNames).
				AddRow(record.ID.String(), "17", "2753", "3233", record.CreatedAt).
				RowError(0, rowErr))

		_, err := NewPostgreSQLKeyPairRepository(db).List(ctx, 0, 5)

		assert.ErrorIs(t, err, rowErr)
	})
}

func TestPostgreSQLKeyPairRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RowRemoved", func(t *testing.T) {
		db, mock := newSQLMock(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM key_pairs WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgreSQLKeyPairRepository(db).Delete(ctx, id)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NoRowsAffected", func(t *testing.T) {
		db, mock := newSQLMock(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM key_pairs WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewPostgreSQLKeyPairRepository(db).Delete(ctx, id)

		assert.ErrorIs(t, err, rsaDomain.ErrKeyPairNotFound)
	})

	t.Run("Error_RowsAffectedUnavailable", func(t *testing.T) {
		db, mock := newSQLMock(t)
		resultErr := errors.New("rows affected unsupported")

		mock.ExpectExec(`DELETE FROM key_pairs`).
			WillReturnResult(sqlmock.NewErrorResult(resultErr))

		err := NewPostgreSQLKeyPairRepository(db).Delete(ctx, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, resultErr)
	})
}
