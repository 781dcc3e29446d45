package persistence

import (
	"fmt"

	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates any missing tables, columns and indexes. Existing
// schema objects are left untouched, so it is safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
