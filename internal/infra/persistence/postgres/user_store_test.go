package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/repository"
	"credcheck/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	// a second connection would see a different in-memory database
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email, hash string) *model.AccountModel {
	t.Helper()

	accountM := &model.AccountModel{Name: "Alice", Email: email, Password: hash}
	require.NoError(t, db.Create(accountM).Error)
	require.NotEqual(t, uuid.Nil, accountM.ID)

	return accountM
}

func TestUserStore_FindByIdentifier_Found(t *testing.T) {
	db := newTestDB(t)
	seeded := seedAccount(t, db, "alice@example.com", "$2a$04$storedhashvalue")
	store := NewUserStore(db)

	account, err := store.FindByIdentifier(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, account.ID)
	assert.Equal(t, "alice@example.com", account.Identifier)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "$2a$04$storedhashvalue", account.SecretHash)
	assert.WithinDuration(t, time.Now(), account.CreatedAt, time.Minute)
}

func TestUserStore_FindByIdentifier_NotFound(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice@example.com", "$2a$04$storedhashvalue")
	store := NewUserStore(db)

	account, err := store.FindByIdentifier(context.Background(), "bob@example.com")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.False(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestUserStore_FindByIdentifier_IsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice@example.com", "$2a$04$storedhashvalue")
	store := NewUserStore(db)

	_, err := store.FindByIdentifier(context.Background(), "ALICE@example.com")

	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestUserStore_FindByIdentifier_ClosedDatabase(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	account, err := store.FindByIdentifier(context.Background(), "alice@example.com")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestUserStore_FindByIdentifier_CanceledContext(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice@example.com", "$2a$04$storedhashvalue")
	store := NewUserStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.FindByIdentifier(ctx, "alice@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAccountModel_BeforeCreateKeepsExplicitID(t *testing.T) {
	db := newTestDB(t)
	id := uuid.New()

	accountM := &model.AccountModel{ID: id, Name: "Bob", Email: "bob@example.com", Password: "h"}
	require.NoError(t, db.Create(accountM).Error)

	assert.Equal(t, id, accountM.ID)
}
