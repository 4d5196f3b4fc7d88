// Package store persists the user profile and quiz history in a local
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmaslov/linguo/internal/profile"
	"github.com/vmaslov/linguo/internal/quiz"
)

// Store provides SQLite-backed persistence. It implements both
// profile.Store and quiz.History.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) and migrates the database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS user_profile (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    payload     TEXT NOT NULL,
    updated_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    language_code TEXT NOT NULL,
    payload       TEXT NOT NULL,
    completed_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_language
    ON quiz_results (language_code, id);
`

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the stored profile, or (nil, nil) when none exists yet.
func (s *Store) Load(ctx context.Context) (*profile.User, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	row := s.db.QueryRowContext(ctx, `SELECT payload FROM user_profile WHERE id = 1`)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var user profile.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &user, nil
}

// Save replaces the stored profile with the given record.
func (s *Store) Save(ctx context.Context, user *profile.User) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if user == nil {
		return fmt.Errorf("user is required")
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO user_profile (id, payload, updated_at)
		 VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    payload = excluded.payload,
		    updated_at = excluded.updated_at`,
		string(payload),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Append stores a finalized quiz result.
func (s *Store) Append(ctx context.Context, result quiz.Result) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO quiz_results (language_code, payload, completed_at)
		 VALUES (?, ?, ?)`,
		result.Quiz.LanguageCode,
		string(payload),
		result.CompletedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

// ByLanguage returns results for one language, oldest first.
func (s *Store) ByLanguage(ctx context.Context, code string) ([]quiz.Result, error) {
	return s.queryResults(ctx,
		`SELECT payload FROM quiz_results WHERE language_code = ? ORDER BY id`, code)
}

// All returns every stored result, oldest first.
func (s *Store) All(ctx context.Context) ([]quiz.Result, error) {
	return s.queryResults(ctx, `SELECT payload FROM quiz_results ORDER BY id`)
}

func (s *Store) queryResults(ctx context.Context, query string, args ...any) ([]quiz.Result, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []quiz.Result
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		var r quiz.Result
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

// Reset drops all stored data. Used by the reset command.
func (s *Store) Reset(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM user_profile`); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM quiz_results`); err != nil {
		return fmt.Errorf("reset results: %w", err)
	}
	return nil
}

var (
	_ profile.Store = (*Store)(nil)
	_ quiz.History  = (*Store)(nil)
)
