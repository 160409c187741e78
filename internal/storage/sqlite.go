// Package storage provides a SQLite-backed word corpus for Word Turret.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordturret/internal/dictionary"
)

// Store manages the SQLite database connection for the word corpus.
type Store struct {
	db *sql.DB
}

// LengthCount is the number of stored words of one length.
type LengthCount struct {
	Length int
	Count  int
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Read     int // usable lines read
	Inserted int // words that were not already stored
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			word TEXT PRIMARY KEY,
			length INTEGER NOT NULL,
			added_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportWords bulk-loads a newline-delimited word list in one transaction.
// Lines are normalised like dictionary.Parse; words already stored are skipped.
func (s *Store) ImportWords(r io.Reader) (ImportResult, error) {
	var res ImportResult

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (word, length) VALUES (?, ?)")
	if err != nil {
		return res, fmt.Errorf("storage: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, ok := dictionary.Normalize(scanner.Text())
		if !ok {
			continue
		}
		res.Read++

		result, err := stmt.Exec(word, utf8.RuneCountInString(word))
		if err != nil {
			return res, fmt.Errorf("storage: cannot insert %q: %w", word, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			res.Inserted += int(n)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("storage: cannot read word list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return res, nil
}

// Words loads the whole corpus in alphabetical order.
func (s *Store) Words() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return words, nil
}

// List loads the corpus as a dictionary.List.
// Returns dictionary.ErrEmpty when nothing has been imported yet.
func (s *Store) List() (*dictionary.List, error) {
	words, err := s.Words()
	if err != nil {
		return nil, err
	}
	return dictionary.New(words)
}

// Count returns the number of stored words no longer than maxLen.
// A maxLen of zero or less counts every word.
func (s *Store) Count(maxLen int) (int, error) {
	var n int
	var err error
	if maxLen > 0 {
		err = s.db.QueryRow("SELECT COUNT(*) FROM words WHERE length <= ?", maxLen).Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count words: %w", err)
	}
	return n, nil
}

// Lengths returns how many words of each length are stored, shortest first.
func (s *Store) Lengths() ([]LengthCount, error) {
	rows, err := s.db.Query(
		`SELECT length, COUNT(*)
		 FROM words
		 GROUP BY length
		 ORDER BY length`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lengths: %w", err)
	}
	defer rows.Close()

	var out []LengthCount
	for rows.Next() {
		var lc LengthCount
		if err := rows.Scan(&lc.Length, &lc.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, lc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// LastImport returns when the most recent word was added.
// The zero time is returned for an empty corpus.
func (s *Store) LastImport() (time.Time, error) {
	var added any
	err := s.db.QueryRow("SELECT MAX(added_at) FROM words").Scan(&added)
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot query last import: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := added.(type) {
	case time.Time:
		return v, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, nil
}

// Clear deletes every stored word.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM words"); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	return nil
}
