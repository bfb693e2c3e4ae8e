package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// StateRepository persists opaque state blobs in Postgres, one row per key.
// The whole booking list is stored as a single JSON record, mirroring a
// key-value store rather than a relational schema.
type StateRepository struct {
	DB *sql.DB
}

func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{DB: db}
}

// Init creates the backing table when it does not exist yet.
func (r *StateRepository) Init() error {
	query := `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`
	if _, err := r.DB.Exec(query); err != nil {
		return fmt.Errorf("error creating app_state table: %w", err)
	}
	return nil
}

// Get returns the blob stored under key. The second return reports whether
// the key exists at all, so callers can tell "absent" from "broken".
func (r *StateRepository) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := r.DB.QueryRow(`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error querying state blob '%s': %w", key, err)
	}
	return value, true, nil
}

// Put upserts the blob stored under key.
func (r *StateRepository) Put(key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.DB.Exec(query, key, value); err != nil {
		return fmt.Errorf("error writing state blob '%s': %w", key, err)
	}
	return nil
}
