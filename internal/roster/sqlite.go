// Package roster persists player records in a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package roster

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Record is one persisted player identity.
// The portrait reference doubles as the deletion key; name uniqueness is
// not enforced.
type Record struct {
	ID        int64
	Name      string
	Portrait  string // path to the portrait image, empty if none
	CreatedAt time.Time
}

// Store manages the SQLite database holding the player roster.
type Store struct {
	db *sql.DB
}

// Open creates or opens the roster database at the given path.
// It creates parent directories if needed and bootstraps the schema, so a
// missing database file is always recovered to an empty-but-valid state.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("roster: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("roster: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("roster: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("roster: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			portrait TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_portrait ON players(portrait);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns all records in creation order. It always reads the backing
// store, so a List immediately after DeleteByPortrait observes the removal.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, name, portrait, created_at FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("roster: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Portrait, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("roster: scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("roster: list: %w", err)
	}
	return out, nil
}

// Append adds a new record with the current timestamp.
func (s *Store) Append(name, portrait string) error {
	_, err := s.db.Exec(
		`INSERT INTO players (name, portrait, created_at) VALUES (?, ?, ?)`,
		name, portrait, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("roster: append %q: %w", name, err)
	}
	return nil
}

// DeleteByPortrait removes every record whose portrait reference matches.
func (s *Store) DeleteByPortrait(portrait string) error {
	_, err := s.db.Exec(`DELETE FROM players WHERE portrait = ?`, portrait)
	if err != nil {
		return fmt.Errorf("roster: delete by portrait %q: %w", portrait, err)
	}
	return nil
}
