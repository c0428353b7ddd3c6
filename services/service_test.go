package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"game-arena-backend/models"
)

// newTestDB opens an in-memory database with the four managed tables. The
// pool is pinned to one connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.GameUser{},
		&models.Character{},
		&models.ExperienceLevel{},
		&models.Battle{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, userID int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.GameUser{UserID: userID}).Error)
}
