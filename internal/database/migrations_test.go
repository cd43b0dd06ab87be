package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = migratepg.WithInstance
	sqliteWithInstanceFn = migratesqlite.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestRunMigrationsAndRollbackFakes(t *testing.T) {
	t.Cleanup(restore)
	dsn := filepath.Join(t.TempDir(), "fake.db")

	require.Error(t, RunMigrations("oracle", dsn))

	sqlOpenDB = func(driver, dsn string) (*sql.DB, error) { return nil, errors.New("open") }
	require.Error(t, RunMigrations("sqlite", dsn))

	sqlOpenDB = func(driver, dsn string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *migratepg.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
	require.Error(t, RunMigrations("postgres", "postgres://x"))
	sqliteWithInstanceFn = func(*sql.DB, *migratesqlite.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
	require.Error(t, RunMigrations("sqlite", dsn))

	sqliteWithInstanceFn = func(*sql.DB, *migratesqlite.Config) (dbdriver.Driver, error) { return nil, nil }
	postgresWithInstanceFn = func(*sql.DB, *migratepg.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(f fs.FS, s string) (src.Driver, error) { return nil, errors.New("src") }
	require.Error(t, RunMigrations("sqlite", dsn))

	var gotPath, gotName string
	iofsNewFn = func(f fs.FS, s string) (src.Driver, error) { gotPath = s; return nil, nil }
	migrateNewWithInstance = func(_ string, _ src.Driver, name string, _ dbdriver.Driver) (migrateInstance, error) {
		gotName = name
		return nil, errors.New("mig")
	}
	require.Error(t, RunMigrations("postgres", "postgres://x"))
	require.Equal(t, "migrations/postgres", gotPath)
	require.Equal(t, "postgres", gotName)

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{upErr: errors.New("u")}, nil
	}
	require.Error(t, RunMigrations("sqlite", dsn))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{upErr: migrate.ErrNoChange}, nil
	}
	require.NoError(t, RunMigrations("sqlite", dsn))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return fakeMigrator{}, nil }
	require.NoError(t, RollbackAll("sqlite", dsn))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{downErr: migrate.ErrNoChange}, nil
	}
	require.NoError(t, RollbackAll("sqlite", dsn))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{downErr: errors.New("d")}, nil
	}
	require.Error(t, RollbackAll("sqlite", dsn))

	sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
	require.Error(t, RollbackAll("sqlite", dsn))
}

func TestMigrationsSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "grocer.db")

	require.NoError(t, RunMigrations("sqlite", dsn))
	// 第二次執行為 no-op
	require.NoError(t, RunMigrations("sqlite", dsn))

	db, err := Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)

	for _, table := range []string{"users", "products", "orders", "feedback", "order_items"} {
		var name string
		err := db.QueryRowContext(context.Background(),
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	var status string
	_, err = db.ExecContext(context.Background(),
		`INSERT INTO users (username, email, password) VALUES ('a', 'a@example.com', 'h')`)
	require.NoError(t, err)
	_, err = db.ExecContext(context.Background(), `INSERT INTO orders (user_id) VALUES (1)`)
	require.NoError(t, err)
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT status FROM orders`).Scan(&status))
	require.Equal(t, "Placed", status)
	require.NoError(t, db.Close())

	require.NoError(t, RollbackAll("sqlite", dsn))
}
