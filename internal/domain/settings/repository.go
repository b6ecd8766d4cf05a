package settings

import "context"

// DefaultAdminPassword applies when no password has ever been stored.
const DefaultAdminPassword = "admin123"

// SettingsRepository holds the single mutable setting of the system: the
// admin password. Stored and compared as plain text, matching the
// original credential scheme; a known weakness kept on purpose.
type SettingsRepository interface {
	GetAdminPassword(ctx context.Context) (string, error)
	SetAdminPassword(ctx context.Context, password string) error
}
