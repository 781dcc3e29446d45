package main

import (
	"fmt"

	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		return persistence.CloseDB(db)
	},
}

// openDatabase connects and ensures the schema exists
func openDatabase(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database tables ensured on ", settings.Type)

	return db, nil
}
