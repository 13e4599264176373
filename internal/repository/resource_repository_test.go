package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestIncrementDownloadCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository(db)

	mock.ExpectExec(`UPDATE "resources" SET "download_count"=download_count \+ \$1 WHERE id = \$2`).
		WithArgs(1, uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementDownloadCount(7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementDownloadCountPropagatesError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository(db)

	mock.ExpectExec(`UPDATE "resources"`).
		WillReturnError(gorm.ErrInvalidTransaction)

	err := repo.IncrementDownloadCount(7)

	assert.Error(t, err)
}
