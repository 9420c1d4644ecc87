package infra

import (
	"fmt"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx. Callers run
// RunMigrations separately so tests can point it at a throwaway container.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	return db, nil
}

// RunMigrations creates/updates the schema. Also used by integration tests
// against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Floor{},
		&model.Room{},
		&model.Item{},
		&model.ItemAssignment{},
		&model.ItemTransfer{},
		&model.NeededItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot fully
// handle on its own. Each statement uses IF NOT EXISTS / existence-check
// semantics so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// The quantity invariant backstop: the application rejects violating
		// writes before commit, the constraint catches anything that slips by.
		{"items quantity range check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_items_quantity_range') THEN
    ALTER TABLE items ADD CONSTRAINT chk_items_quantity_range
      CHECK (quantity_assigned >= 0 AND quantity_assigned <= quantity_total);
  END IF;
END $$`},
		// Case-insensitive item_type lookups (needed-item reconciliation and
		// reporting both match on LOWER(item_type)).
		{"items lower(item_type) index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_items_item_type_lower') THEN
    CREATE INDEX idx_items_item_type_lower ON items (LOWER(item_type));
  END IF;
END $$`},
		{"needed_items lower(item_type) index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_needed_items_item_type_lower') THEN
    CREATE INDEX idx_needed_items_item_type_lower ON needed_items (LOWER(item_type));
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
