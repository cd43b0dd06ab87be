// File: internal/database/migrations.go
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

var (
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = migratepg.WithInstance
	sqliteWithInstanceFn   = migratesqlite.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// newMigrator 依 dialect 建立 migrate 實例，回傳的 closeFn 需由呼叫端關閉
func newMigrator(driver, dsn string) (migrateInstance, func() error, error) {
	d, err := ParseDialect(driver)
	if err != nil {
		return nil, nil, err
	}
	if d == SQLite {
		if dsn, err = prepareSQLite(dsn); err != nil {
			return nil, nil, err
		}
	}

	sqlDB, err := sqlOpenDB(d.driverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", d, err)
	}

	var drv dbdriver.Driver
	switch d {
	case Postgres:
		drv, err = postgresWithInstanceFn(sqlDB, &migratepg.Config{})
	default:
		drv, err = sqliteWithInstanceFn(sqlDB, &migratesqlite.Config{})
	}
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	// 每個 dialect 各自一組 SQL
	sourceDriver, err := iofsNewFn(migrationsFS, "migrations/"+string(d))
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, string(d), drv)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("migration init: %w", err)
	}
	return m, sqlDB.Close, nil
}

// RunMigrations 嵌入並執行 SQL migration (up all)
func RunMigrations(driver, dsn string) error {
	m, closeFn, err := newMigrator(driver, dsn)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(driver, dsn string) error {
	m, closeFn, err := newMigrator(driver, dsn)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}
