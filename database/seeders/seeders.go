// Package seeders fills a fresh database with the rows the application
// needs to function plus a small demo catalog.
package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

// Seeder populates one slice of the database. Seeders must be idempotent
// so `orderdesk seed` can run against a non-empty database.
type Seeder interface {
	Name() string
	Run(db *gorm.DB) error
}

// All returns every seeder in run order. Role groups come first since
// registration depends on them.
func All() []Seeder {
	return []Seeder{
		&RoleGroupSeeder{},
		&AdminSeeder{},
		&CatalogSeeder{},
	}
}

// Run executes every seeder in order, stopping at the first failure.
func Run(db *gorm.DB) error {
	for _, s := range All() {
		logger.Info("seed: running", "seeder", s.Name())
		if err := s.Run(db); err != nil {
			return err
		}
	}
	return nil
}
