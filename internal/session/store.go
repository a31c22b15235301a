// Package session owns the browser-session to bearer-token mapping. The
// upstream API authenticates every data call with a token it issued at
// login; this store keeps that token and the cached user display name per
// browser session, persisted so a server restart does not log everyone
// out. Only the login/logout handlers and the upstream client's
// auth-error path write here.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
)

// ErrNotFound is returned when no live session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Store is the injectable session contract. Handlers and the upstream
// client receive it via constructors; nothing reads it ambiently.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Set(ctx context.Context, id, token, displayName string) error
	Clear(ctx context.Context, id string) error
}

// SQLiteStore persists sessions in a single table.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
}

func NewSQLiteStore(db *sql.DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: ttl}
}

// Initialize opens the session database.
func Initialize(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the session table.
func Migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			expires_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// Create stores a fresh session for a newly issued token and returns it.
func (s *SQLiteStore) Create(ctx context.Context, token, displayName string) (*models.Session, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, id, token, displayName); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Get returns the live session for an ID. Sessions past their local TTL
// are removed and reported as not found.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Session, error) {
	sess := &models.Session{}
	query := `
		SELECT id, token, display_name, expires_at, created_at
		FROM sessions
		WHERE id = ?
	`

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID,
		&sess.Token,
		&sess.DisplayName,
		&sess.ExpiresAt,
		&sess.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = s.Clear(ctx, id)
		return nil, ErrNotFound
	}

	return sess, nil
}

// Set writes or replaces the token and display name for a session ID.
func (s *SQLiteStore) Set(ctx context.Context, id, token, displayName string) error {
	query := `
		INSERT INTO sessions (id, token, display_name, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			display_name = excluded.display_name,
			expires_at = excluded.expires_at
	`

	_, err := s.db.ExecContext(ctx, query, id, token, displayName, time.Now().Add(s.ttl))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Clear removes a session. Clearing a missing session is not an error.
func (s *SQLiteStore) Clear(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CleanupExpired removes sessions past their local TTL.
func (s *SQLiteStore) CleanupExpired(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	return nil
}
