package services

import (
	"fmt"
	"testing"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/inklet-app/inklet/pkg/internal/cache"
	"github.com/inklet-app/inklet/pkg/internal/database"
	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	return db
}

func newTestCache(t *testing.T) store.StoreInterface {
	t.Helper()

	cacheStore, err := cache.NewStore()
	require.NoError(t, err)
	return cacheStore
}

func newTestAccount(t *testing.T, db *gorm.DB, subject string) models.Account {
	t.Helper()

	account := models.Account{
		GoogleID: subject,
		Name:     "Account " + subject,
		Email:    subject + "@example.com",
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func newTestPost(t *testing.T, db *gorm.DB, author models.Account) models.Post {
	t.Helper()

	posts := NewPosts(db)
	item, err := posts.New(author, "Hello world", "This is the very first post on this blog.")
	require.NoError(t, err)
	return item
}
