package repositories

import (
	"fmt"

	"writings-api/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Writing{}); err != nil {
		return fmt.Errorf("auto-migrate writings: %w", err)
	}
	return nil
}
