package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"

	"github.com/pressly/goose/v3"

	"github.com/twilight/weaver/internal/logging"
)

//go:embed migrations/history/*.sql migrations/bookmarks/*.sql
var embedMigrations embed.FS

// Schema names a migration set. Each profile database carries exactly one.
type Schema string

const (
	SchemaHistory   Schema = "history"
	SchemaBookmarks Schema = "bookmarks"
)

func (s Schema) dir() string {
	return path.Join("migrations", string(s))
}

// RunMigrations applies all pending migrations of schema to the database.
// Initial migrations use IF NOT EXISTS so databases created by earlier
// releases, which carry no version table, are adopted as they are.
func RunMigrations(ctx context.Context, db *sql.DB, schema Schema) error {
	log := logging.FromContext(ctx)

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	// Disable verbose logging from goose
	goose.SetLogger(goose.NopLogger())

	currentVersion, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		log.Debug().Err(err).Msg("could not get current db version (may be new database)")
		currentVersion = 0
	}

	if migrateErr := goose.UpContext(ctx, db, schema.dir()); migrateErr != nil {
		return fmt.Errorf("failed to run %s migrations: %w", schema, migrateErr)
	}

	newVersion, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get db version after migration: %w", err)
	}

	if newVersion > currentVersion {
		log.Info().
			Str("schema", string(schema)).
			Int64("from_version", currentVersion).
			Int64("to_version", newVersion).
			Msg("database migrations applied")
	} else {
		log.Debug().Str("schema", string(schema)).Int64("version", newVersion).Msg("database schema up to date")
	}

	return nil
}

// GetMigrationStatus returns the current migration version.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}
