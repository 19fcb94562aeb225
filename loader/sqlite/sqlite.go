// Package sqlite keeps module sources in a SQLite table so a set of
// modules can be shipped and versioned as a single database file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS modules (
	name   TEXT PRIMARY KEY,
	source TEXT NOT NULL
)`

type Loader struct {
	db *sql.DB
}

// Open opens (creating if needed) the module database at path.
func Open(path string) (*Loader, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// an in-memory database only lives as long as its connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Loader{db: db}, nil
}

func (l *Loader) Close() error { return l.db.Close() }

func (l *Loader) Load(name string) (string, error) {
	var src string
	err := l.db.QueryRow("SELECT source FROM modules WHERE name = ?", name).Scan(&src)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("module %q not found", name)
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return src, nil
}

// Store inserts or replaces the source of a module.
func (l *Loader) Store(name, source string) error {
	_, err := l.db.Exec(
		"INSERT INTO modules (name, source) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET source = excluded.source",
		name, source,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	return nil
}

// Names lists the stored module names in order.
func (l *Loader) Names() ([]string, error) {
	rows, err := l.db.Query("SELECT name FROM modules ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
