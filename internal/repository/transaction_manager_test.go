package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// Both executor types must satisfy DBTX so GetExecutor can hand either to a
// repository.
var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

func TestGetExecutor_ReturnsTransactionWhenActive(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	assert.NoError(t, err)

	txCtx := context.WithValue(context.Background(), TransactionContextKey, tx)
	assert.Equal(t, DBTX(tx), GetExecutor(txCtx, db))
}

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO contacts`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		exec := GetExecutor(ctx, db)
		_, execErr := exec.ExecContext(ctx, `INSERT INTO contacts (id) VALUES ($1)`, "01HC")
		return execErr
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_FallsBackToDB(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	exec := GetExecutor(context.Background(), db)
	assert.Equal(t, DBTX(db), exec)
}
