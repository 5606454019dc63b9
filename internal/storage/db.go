// Package storage opens the database behind the key-value store, applies the
// embedded schema migrations, and picks the matching records repository.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eventdesk/internal/filex"
	"github.com/dmitrijs2005/eventdesk/internal/repositories/records"
	"github.com/dmitrijs2005/eventdesk/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Database is an open, migrated handle together with the repository
// constructor that speaks its SQL dialect.
type Database struct {
	DB      *sql.DB
	Dialect Dialect
	Records records.Factory
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// DialectOf reports which backend a DSN selects. postgres:// and
// postgresql:// URLs go to PostgreSQL; anything else is a SQLite path or URI.
func DialectOf(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func driverName(d Dialect) string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

func gooseDialect(d Dialect) string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. Already-applied versions
// are skipped, so calling it on every start is fine.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDialect(d)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// sqliteFilePath returns the file behind a plain SQLite path DSN. URIs and
// ":memory:" are left to the driver.
func sqliteFilePath(dsn string, d Dialect) (string, bool) {
	if d != DialectSQLite || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", false
	}
	return dsn, true
}

// InitDatabase opens dsn, migrates it and returns the handle.
func InitDatabase(ctx context.Context, dsn string) (*Database, error) {
	d := DialectOf(dsn)
	if path, ok := sqliteFilePath(dsn, d); ok {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d, err)
	}
	if d == DialectSQLite {
		// one writer at a time; also keeps ":memory:" on a single connection
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}

	factory := records.SQLiteFactory
	if d == DialectPostgres {
		factory = records.PostgresFactory
	}

	return &Database{DB: db, Dialect: d, Records: factory}, nil
}
