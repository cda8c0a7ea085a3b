// Package store implements the persistence layer: a flat key-value
// namespace holding one JSON document per logical key. Every higher-level
// operation is a whole-value read-modify-write over a single key; there is
// no atomicity across keys and the last write wins. The contract is the
// same as the client-side storage of the demo UI, with a real database
// table underneath.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// The five logical keys of the namespace. Values are JSON documents:
// whole collections for the list keys, a single record for current_user,
// a bare boolean for auth.
const (
	KeyBookings       = "bookings"
	KeyRecentSearches = "recent_searches"
	KeyUsers          = "users"
	KeyCurrentUser    = "current_user"
	KeyAuth           = "auth"
)

// ErrCorruptValue reports a stored value that failed to decode. Callers
// treat the key as absent and fall back to an empty default.
var ErrCorruptValue = errors.New("corrupt stored value")

// Store reads and writes JSON documents keyed by name in the kv_store
// table. REPLACE INTO is understood by both MySQL and SQLite, so a single
// Store implementation covers both engines.
type Store struct {
	db *sql.DB
}

// New wraps db and creates the kv_store table when missing.
func New(db *sql.DB) (*Store, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_store (
		k VARCHAR(64) PRIMARY KEY,
		v TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create kv_store: %w", err)
	}
	return &Store{db: db}, nil
}

// Read returns the raw JSON stored under key. found is false when the key
// has never been written or was deleted.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT v FROM kv_store WHERE k=? LIMIT 1", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// ReadJSON decodes the value under key into dest. A missing key returns
// (false, nil) and leaves dest untouched. A present value that does not
// decode returns (false, ErrCorruptValue-wrapped error) so the caller can
// choose its defensive default.
func (s *Store) ReadJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := s.Read(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: key %q: %v", ErrCorruptValue, key, err)
	}
	return true, nil
}

// WriteJSON marshals v and overwrites the value under key.
func (s *Store) WriteJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		"REPLACE INTO kv_store (k, v) VALUES (?, ?)", key, raw)
	return err
}

// Delete removes key entirely, as opposed to writing an empty value.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE k=?", key)
	return err
}
