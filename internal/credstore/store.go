// Package credstore persists auth data and stream cursors for the CLI so a
// login survives process restarts. It is a small SQLite database keyed by
// host and account.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/govoat/pkg/idx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no row matches the lookup.
var ErrNotFound = errors.New("credstore: not found")

// Credential is a saved set of OAuth2 tokens for an account on a host.
type Credential struct {
	ID           string
	Host         string
	Username     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Scope        string
	UpdatedAt    time.Time
}

// Store is a SQLite-backed credential and cursor store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given path and applies any
// pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveCredential inserts or replaces the credential for (host, username).
func (s *Store) SaveCredential(ctx context.Context, cred Credential) error {
	if cred.ID == "" {
		cred.ID = idx.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (id, host, username, access_token, refresh_token, expires_at, scope, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (host, username) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			scope = excluded.scope,
			updated_at = excluded.updated_at
	`,
		cred.ID, cred.Host, cred.Username,
		cred.AccessToken, cred.RefreshToken,
		cred.ExpiresAt.UTC().Format(time.RFC3339),
		cred.Scope,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetCredential looks up the credential for (host, username). Returns
// ErrNotFound when the account has not logged in on this machine.
func (s *Store) GetCredential(ctx context.Context, host, username string) (Credential, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, host, username, access_token, refresh_token, expires_at, scope, updated_at
		FROM credentials
		WHERE host = ? AND username = ?
	`, host, username)

	return scanCredential(row)
}

// LatestCredential returns the most recently updated credential for a host,
// used when the CLI is invoked without an explicit account.
func (s *Store) LatestCredential(ctx context.Context, host string) (Credential, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, host, username, access_token, refresh_token, expires_at, scope, updated_at
		FROM credentials
		WHERE host = ?
		ORDER BY updated_at DESC
		LIMIT 1
	`, host)

	return scanCredential(row)
}

// DeleteCredential removes the stored credential for (host, username).
func (s *Store) DeleteCredential(ctx context.Context, host, username string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE host = ? AND username = ?`, host, username)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCredential(row *sql.Row) (Credential, error) {
	var (
		cred      Credential
		expiresAt string
		updatedAt string
	)
	err := row.Scan(
		&cred.ID, &cred.Host, &cred.Username,
		&cred.AccessToken, &cred.RefreshToken,
		&expiresAt, &cred.Scope, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Credential{}, ErrNotFound
	}
	if err != nil {
		return Credential{}, err
	}

	cred.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
	cred.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return cred, nil
}

// ============================================================================
// Stream Cursors
// ============================================================================

// SetCursor records the last time a stream endpoint was polled for a host.
func (s *Store) SetCursor(ctx context.Context, host, stream string, seenAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stream_cursors (host, stream, seen_at)
		VALUES (?, ?, ?)
		ON CONFLICT (host, stream) DO UPDATE SET seen_at = excluded.seen_at
	`, host, stream, seenAt.UTC().Format(time.RFC3339))
	return err
}

// GetCursor returns the last recorded poll time for a stream on a host, or
// ErrNotFound if the stream has never been polled.
func (s *Store) GetCursor(ctx context.Context, host, stream string) (time.Time, error) {
	var seenAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT seen_at FROM stream_cursors WHERE host = ? AND stream = ?`,
		host, stream,
	).Scan(&seenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(time.RFC3339, seenAt)
}
