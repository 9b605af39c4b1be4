package tui

import (
	"context"

	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui

// Store is the subset of the goal store the dashboard needs.
type Store interface {
	ListGoals(ctx context.Context, year int) ([]models.Goal, error)
	CreateGoal(ctx context.Context, year int, in database.GoalInput) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, in database.GoalInput) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	ToggleLog(ctx context.Context, id, date string, value float64) (models.Goal, bool, error)
	ReplaceGoals(ctx context.Context, year int, goals []models.Goal) error
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	ExportBackup(ctx context.Context, year int, opts database.ExportOptions) ([]byte, error)
}

var _ Store = (*database.Database)(nil)
