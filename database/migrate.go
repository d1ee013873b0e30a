package database

import (
	"fmt"

	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all models. Order matters
// for the foreign keys.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 lives in uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Application{},
		&models.Message{},
		&models.Payout{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
