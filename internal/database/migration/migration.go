package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrations embed.FS

const (
	migrationsDir = "sql"
	versionTable  = "schema_migrations"
)

// gooseLogger forwards goose output to logrus. Fatalf does not exit so the
// caller decides how to stop.
type gooseLogger struct {
	entry *log.Entry
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.entry.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.entry.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Up applies every pending migration embedded in the binary.
func Up(ctx context.Context, db *sql.DB, logger log.FieldLogger, dbHost string) error {
	start := time.Now()
	entry := logger.WithFields(log.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	goose.SetBaseFS(migrations)
	goose.SetTableName(versionTable)
	goose.SetLogger(gooseLogger{entry: entry})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	entry.WithFields(log.Fields{
		"event":  "db_migration_start",
		"status": "in_progress",
	}).Info("applying migrations")

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		entry.WithFields(log.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("migration failed")
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	entry.WithFields(log.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"version":     version,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("migrations applied")

	return nil
}

// Files lists the embedded migration file names in version order.
func Files() ([]string, error) {
	entries, err := migrations.ReadDir(migrationsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
