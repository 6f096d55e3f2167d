package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	dsnFlag        = "dsn"
	migrationsFlag = "migrations"

	defaultMigrationsPath = "migrations"
)

func main() {
	dsn, migrationsPath := parseFlags()
	if dsn == "" {
		slog.Error(fmt.Sprintf("--%s flag: required", dsnFlag))
		os.Exit(2)
	}
	applyMigrations(dsn, migrationsPath)
}

func parseFlags() (dsn, migrationsPath string) {
	dsnP := pflag.StringP(dsnFlag, "d", "", "orders database DSN")
	migrationsP := pflag.StringP(
		migrationsFlag, "m", defaultMigrationsPath,
		"orders schema migrations directory",
	)
	pflag.Parse()
	return *dsnP, *migrationsP
}

// migrateLogger routes golang-migrate's progress lines through slog.
type migrateLogger struct {
	verbose bool
}

func (l migrateLogger) Printf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (l migrateLogger) Verbose() bool {
	return l.verbose
}

func applyMigrations(dsn, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", dsn),
	)
	if err != nil {
		slog.Error("failed to prepare migrations", "err", err)
		os.Exit(2)
	}
	m.Log = migrateLogger{verbose: true}

	err = m.Up()
	switch {
	case err == nil:
		m.Log.Printf("orders schema migrated")
	case errors.Is(err, migrate.ErrNoChange):
		m.Log.Printf("orders schema is up to date")
	default:
		slog.Error("failed to apply migrations", "err", err)
		os.Exit(2)
	}
}
