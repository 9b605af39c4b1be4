package database

import (
	"context"

	"github.com/akyairhashvil/zenith/internal/models"
)

// GoalRepository defines goal-related database operations.
type GoalRepository interface {
	ListGoals(ctx context.Context, year int) ([]models.Goal, error)
	GetGoal(ctx context.Context, id string) (models.Goal, error)
	CreateGoal(ctx context.Context, year int, in GoalInput) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, in GoalInput) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	ToggleLog(ctx context.Context, id, date string, value float64) (models.Goal, bool, error)
	ReplaceGoals(ctx context.Context, year int, goals []models.Goal) error
}

// SettingsRepository defines key/value preference storage.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// BackupRepository defines JSON backup operations.
type BackupRepository interface {
	ExportBackup(ctx context.Context, year int, opts ExportOptions) ([]byte, error)
	ImportBackup(ctx context.Context, year int, payload []byte, passphrase string) (int, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	GoalRepository
	SettingsRepository
	BackupRepository
}

var _ Repository = (*Database)(nil)
