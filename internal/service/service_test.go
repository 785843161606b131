package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platepost/backend/internal/models"
)

// setupDB opens a fresh in-memory sqlite database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Kitchen{},
		&models.Category{},
		&models.Measure{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Like{},
		&models.Comment{},
		&models.CommentReport{},
	))
	return db
}

// seedUser creates one user directly, bypassing the auth flow.
func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedCatalogs inserts minimal kitchen, category, measure and ingredient rows.
func seedCatalogs(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Kitchen{Name: "Italian"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Soup"}).Error)
	require.NoError(t, db.Create(&models.Measure{Name: "g"}).Error)
	require.NoError(t, db.Create(&models.Measure{Name: "To taste"}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Beetroot"}).Error)
	require.NoError(t, db.Create(&models.Ingredient{Name: "Salt"}).Error)
}
