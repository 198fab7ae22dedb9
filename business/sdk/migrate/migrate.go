// Package migrate applies the embedded postgres schema.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/stokaro/ptah/dbschema"
	"github.com/stokaro/ptah/migration/migrator"
)

//go:embed sql/*.sql
var migrations embed.FS

// Status is the migration state of a database.
type Status struct {
	CurrentVersion int
	Pending        []int
	Total          int
}

// Migrations returns the embedded migration files.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate brings the database at dbURL up to the latest version.
func Migrate(ctx context.Context, log *logger.Logger, dbURL string) error {
	conn, err := dbschema.ConnectToDatabase(dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	mig, err := migrator.NewFSMigrator(conn, Migrations())
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := mig.WithLogger(log.Slog()).MigrateUp(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	return nil
}

// CurrentStatus reports which migrations have been applied.
func CurrentStatus(ctx context.Context, log *logger.Logger, dbURL string) (Status, error) {
	conn, err := dbschema.ConnectToDatabase(dbURL)
	if err != nil {
		return Status{}, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	mig, err := migrator.NewFSMigrator(conn, Migrations())
	if err != nil {
		return Status{}, fmt.Errorf("load migrations: %w", err)
	}

	st, err := mig.WithLogger(log.Slog()).GetMigrationStatus(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("status: %w", err)
	}

	return Status{
		CurrentVersion: st.CurrentVersion,
		Pending:        st.PendingMigrations,
		Total:          st.TotalMigrations,
	}, nil
}
