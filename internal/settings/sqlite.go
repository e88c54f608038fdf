package settings

import (
	"database/sql"
	"fmt"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings (
	ns    TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (ns, key)
);`

// Sqlite is a Backend storing namespaces as rows in a shared database.
// Values are JSON-encoded so types survive the round trip.
type Sqlite struct {
	db    *sql.DB
	ns    string
	store *kv
}

// OpenSqlite opens the namespace for the given company and tool inside the
// database at path, creating the schema when missing.
func OpenSqlite(path, company, tool string) (*Sqlite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings schema: %w", err)
	}

	s := &Sqlite{db: db, ns: company + "/" + tool, store: newKV()}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Group returns a scoped view rooted at the slash-joined path.
func (s *Sqlite) Group(path ...string) Group {
	return &group{store: s.store, prefix: joinPath(path)}
}

// Flush replaces the namespace rows with the current key set in one
// transaction.
func (s *Sqlite) Flush() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin settings flush: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM settings WHERE ns = ?`, s.ns); err != nil {
		return fmt.Errorf("failed to clear namespace: %w", err)
	}

	for key, value := range s.store.snapshot() {
		encoded, err := sonic.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode value for %s: %w", key, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO settings (ns, key, value) VALUES (?, ?, ?)`,
			s.ns, key, string(encoded),
		); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings flush: %w", err)
	}
	return nil
}

// Clear removes every key in the namespace, in memory and on disk.
func (s *Sqlite) Clear() error {
	s.store.clearPrefix("")
	if _, err := s.db.Exec(`DELETE FROM settings WHERE ns = ?`, s.ns); err != nil {
		return fmt.Errorf("failed to clear namespace: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Sqlite) Close() error {
	return s.db.Close()
}

func (s *Sqlite) load() error {
	rows, err := s.db.Query(`SELECT key, value FROM settings WHERE ns = ?`, s.ns)
	if err != nil {
		return fmt.Errorf("failed to read namespace: %w", err)
	}
	defer rows.Close()

	values := make(map[string]any)
	for rows.Next() {
		var key, encoded string
		if err := rows.Scan(&key, &encoded); err != nil {
			return fmt.Errorf("failed to scan setting: %w", err)
		}
		var value any
		if err := sonic.Unmarshal([]byte(encoded), &value); err != nil {
			return fmt.Errorf("failed to decode value for %s: %w", key, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate settings: %w", err)
	}

	s.store.replace(values)
	return nil
}
