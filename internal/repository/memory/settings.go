package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/settings"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	password string
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) GetAdminPassword(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.password == "" {
		return settings.DefaultAdminPassword, nil
	}
	return r.password, nil
}

func (r *SettingsRepository) SetAdminPassword(ctx context.Context, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.password = password
	return nil
}
