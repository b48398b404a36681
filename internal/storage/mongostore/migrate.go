package mongostore

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/storage"
)

//go:embed migrations/*.json
var migrations embed.FS

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate applies the embedded index migrations to the connected database.
func Migrate(ctx context.Context, conn *storage.Connection, logger *logrus.Logger) (MigrationResult, error) {
	var result MigrationResult

	client, err := conn.Client(ctx)
	if err != nil {
		return result, err
	}

	driver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: conn.DatabaseName()})
	if err != nil {
		return result, fmt.Errorf("mongodb.WithInstance: %w", err)
	}
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return result, fmt.Errorf("iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, conn.DatabaseName(), driver)
	if err != nil {
		return result, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}

	result.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return result, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("m.Up: %w", err)
	}

	result.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return result, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migrate.complete")
	return result, nil
}
