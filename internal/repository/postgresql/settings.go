package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/facade-tech/workforce-backend-go/internal/domain/settings"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAdminPassword(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT value FROM collections WHERE key = $1`, keyAdminPassword).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.DefaultAdminPassword, nil
		}
		return "", fmt.Errorf("failed to load admin password: %w", err)
	}

	var password string
	if err := json.Unmarshal(raw, &password); err != nil {
		return "", fmt.Errorf("failed to decode admin password: %w", err)
	}
	return password, nil
}

func (r *settingsRepository) SetAdminPassword(ctx context.Context, password string) error {
	q := GetQuerier(ctx, r.db)

	raw, err := json.Marshal(password)
	if err != nil {
		return fmt.Errorf("failed to encode admin password: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO collections (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, keyAdminPassword, raw)
	if err != nil {
		return fmt.Errorf("failed to save admin password: %w", err)
	}
	return nil
}
