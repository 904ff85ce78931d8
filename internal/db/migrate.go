package db

import (
	"errors"
	"fmt"
	"os"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
)

// Migrate brings the schema up to date. It is explicit and idempotent:
// the composition root calls it once before the store is used; nothing in
// this package runs it as an import side effect.
//
// With MIGRATIONS=1 (or true) and a postgres DSN, the SQL files in
// ./migrations run via golang-migrate. Otherwise AutoMigrate covers the
// four core models, which is the path sqlite deployments and tests use.
func Migrate(conn *gorm.DB, dsn string) error {
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if !IsPostgresDSN(dsn) {
			return errors.New("MIGRATIONS=1 requires a postgres DSN; sqlite uses AutoMigrate")
		}
		if err := runSQLMigrations(NormalizePostgresDSN(dsn)); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		modelsToMigrate := []interface{}{
			&models.SellerProfile{}, &models.CatalogItem{}, &models.Invoice{}, &models.InvoiceLine{},
		}
		for _, m := range modelsToMigrate {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"seller_profile", "invoices", "invoice_lines", "catalog_items"} {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// runSQLMigrations executes migrations in ./migrations using golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
