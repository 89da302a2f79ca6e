package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"workgroup/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection gets its own :memory: database, so pin
	// the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func TestUserRepositoryEmailLookupIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	ana := &model.User{Name: "Ana", Email: "ANA@X.com", PasswordHash: "digest"}
	require.NoError(t, repo.Save(ctx, ana))
	assert.NotZero(t, ana.ID, "save must assign the id")

	exists, err := repo.ExistsByEmail(ctx, "ana@x.com")
	assert.NoError(t, err)
	assert.True(t, exists, "existence check must ignore letter case")

	found, err := repo.FindByEmail(ctx, "ana@X.COM")
	assert.NoError(t, err)
	assert.Equal(t, ana.ID, found.ID)
	assert.Equal(t, "ANA@X.com", found.Email, "stored casing is preserved")

	exists, err = repo.ExistsByEmail(ctx, "bob@x.com")
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByEmail(ctx, "nosuch@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositorySaveUpdatesExistingRow(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Save(ctx, user))

	user.Bio = "updated"
	require.NoError(t, repo.Save(ctx, user))

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1, "save by id must update, not insert")
	assert.Equal(t, "updated", all[0].Bio)
}

func TestUserRepositoryFindPage(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		user := &model.User{
			Name:         fmt.Sprintf("User %d", i),
			Email:        fmt.Sprintf("user%d@x.com", i),
			PasswordHash: "digest",
		}
		require.NoError(t, repo.Save(ctx, user))
	}

	users, total, err := repo.FindPage(ctx, 0, 2, "id asc")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 2)
	assert.Equal(t, "user1@x.com", users[0].Email)

	users, total, err = repo.FindPage(ctx, 4, 2, "id asc")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 1, "last page is bounded by the row count")

	users, _, err = repo.FindPage(ctx, 0, 2, "id desc")
	assert.NoError(t, err)
	assert.Equal(t, "user5@x.com", users[0].Email)
}

func TestUserRepositoryDeleteByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Save(ctx, user))

	assert.NoError(t, repo.DeleteByID(ctx, user.ID))
	assert.NoError(t, repo.DeleteByID(ctx, user.ID), "deleting an absent id is not an error")

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
