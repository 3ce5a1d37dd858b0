package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect is the default engine, suitable for single-node deployments
type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(cfg DialectConfig) string {
	return fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", cfg.Path)
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// SQLite serializes writers; a single connection avoids lock churn
	db.SetMaxOpenConns(1)
	return nil
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses '?' natively
	return query
}

func (d *SQLiteDialect) MigrationsSubdir() string {
	return "sqlite"
}

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`
}
