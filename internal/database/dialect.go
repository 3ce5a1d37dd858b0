package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// DialectConfig carries the connection settings a dialect needs
type DialectConfig struct {
	// Path is the database file path (SQLite only)
	Path string
	// URL is the connection string (Postgres and MySQL)
	URL string
}

// Dialect abstracts the differences between supported database engines
type Dialect interface {
	// DriverName returns the name registered with database/sql
	DriverName() string
	// DSN builds a driver connection string from config
	DSN(cfg DialectConfig) string
	// ConfigureConnection applies engine-specific session and pool settings
	ConfigureConnection(db *sql.DB) error
	// RewriteQuery converts '?' placeholders to the engine's native form
	RewriteQuery(query string) string
	// MigrationsSubdir names the directory holding this engine's migrations
	MigrationsSubdir() string
	// CreateMigrationsTableQuery returns the DDL for the tracking table
	CreateMigrationsTableQuery() string
}

// rewritePlaceholders converts '?' placeholders to numbered ones ($1,
// $2, ...) while leaving quoted literals untouched.
func rewritePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inString := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			// doubled quotes inside a literal stay inside it
			if inString && i+1 < len(query) && query[i+1] == '\'' {
				b.WriteString("''")
				i++
				continue
			}
			inString = !inString
			b.WriteByte(c)
		case c == '?' && !inString:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
