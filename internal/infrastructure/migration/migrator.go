package migration

import (
	"fmt"

	"gorm.io/gorm"

	"crewdesk/internal/shared/logger"
)

// Migrator applies the gorm schema. Schema changes ship as model changes;
// AutoMigrate only adds, never drops, so destructive changes need a manual
// step.
type Migrator struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMigrator(db *gorm.DB, log logger.Interface) *Migrator {
	return &Migrator{db: db, logger: log}
}

func (m *Migrator) Run() error {
	targets := AutoMigrateModels()

	m.logger.Infow("running schema migration", "models", len(targets))

	if err := m.db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	m.logger.Info("schema migration complete")
	return nil
}
