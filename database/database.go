// database.go - Handles database connection and setup

package database

import (
	"product-catalog/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB // Global database handle shared by handlers and middleware

// Connect opens the database and runs migrations.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	// Unique indexes on users.email and products.sku back up the application
	// level checks under concurrent creates.
	return DB.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Product{},
	)
}
