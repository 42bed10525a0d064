// Package dbtest opens throwaway in-memory sqlite databases with the application
// schema for repository and service tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foxalbum/foxalbum/app/models"
)

// Open returns a migrated gorm handle backed by a private in-memory database.
// The pool is pinned to one connection because every new sqlite connection to
// ":memory:" would see an empty database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Album{}, &models.Image{}))
	return db
}

// CreateUser inserts a user with a fixed password and returns it.
func CreateUser(t testing.TB, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	u, err := models.CreateUser(name, email, "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(u).Error)
	return u
}
