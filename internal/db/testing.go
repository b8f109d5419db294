package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestDatabaseConfigured reports whether DB tests can run.
func TestDatabaseConfigured() bool {
	return os.Getenv("TEST_POSTGRESQL_URL") != ""
}

// migrationsPath defaults to the migrations directory of this repository.
func migrationsPath() string {
	if path := os.Getenv("TEST_MIGRATIONS_PATH"); path != "" {
		return path
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not locate migrations directory.")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

func applyMigrations(connString string) error {
	m, err := migrate.New("file://"+migrationsPath(), connString)
	if err != nil {
		return fmt.Errorf("could not connect to DB for applying migrations: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply DB migrations: %w", err)
	}
	return nil
}

// CreateTestPool migrates the test database up and connects to it.
func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	if err := applyMigrations(connString); err != nil {
		panic(err)
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE schedule RESTART IDENTITY")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
