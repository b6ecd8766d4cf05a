package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Storage keys. Each collection is persisted wholesale as one JSON array
// under its key; the admin password is a single string value.
const (
	keyEmployees     = "ft_employees"
	keyProjects      = "ft_projects"
	keyAttendance    = "ft_attendance"
	keyAdvances      = "ft_advances"
	keyPayouts       = "ft_payouts"
	keyAdminPassword = "ft_admin_password"
)

// EnsureSchema creates the key-value collections table on startup.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

// loadCollection reads a whole collection. A missing key is an empty
// collection, not an error.
func loadCollection[T any](ctx context.Context, q database.Querier, key string) ([]T, error) {
	var raw []byte
	err := q.QueryRow(ctx, `SELECT value FROM collections WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load collection %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return items, nil
}

// saveCollection writes the whole collection back under its key. There
// is no incremental diff format; last writer wins.
func saveCollection[T any](ctx context.Context, q database.Querier, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO collections (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, raw)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}
