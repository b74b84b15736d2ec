package database

import (
	"fmt"

	"gorm.io/gorm"

	"changaya_backend/internal/models"
)

// RunMigrations applies the schema. The uuid-ossp extension backs the
// uuid_generate_v4 column defaults.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Changa{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
