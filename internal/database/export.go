package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/models"
)

const backupVersion = 1

// BackupGoal keeps the field names of the web app's JSON backups so either
// file can be imported.
type BackupGoal struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	KRNumber    string            `json:"krNumber"`
	Target      float64           `json:"target"`
	Actual      float64           `json:"actual"`
	Unit        string            `json:"unit"`
	Description string            `json:"description"`
	Logs        []models.DailyLog `json:"logs"`
	CreatedAt   int64             `json:"createdAt"`
}

// Backup is the full-fidelity export of one plan year.
type Backup struct {
	Version    int          `json:"version"`
	Year       int          `json:"year"`
	ExportedAt string       `json:"exported_at"`
	Goals      []BackupGoal `json:"goals"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

func toBackupGoal(g models.Goal) BackupGoal {
	logs := g.Logs
	if logs == nil {
		logs = []models.DailyLog{}
	}
	return BackupGoal{
		ID:          g.ID,
		Title:       g.Title,
		Category:    g.Category.Label(),
		KRNumber:    g.KRNumber,
		Target:      g.Target,
		Actual:      g.Actual,
		Unit:        g.Unit,
		Description: g.Description,
		Logs:        logs,
		CreatedAt:   g.CreatedAt.UnixMilli(),
	}
}

func (b BackupGoal) toGoal() (models.Goal, error) {
	cat, err := models.ParseCategory(b.Category)
	if err != nil {
		return models.Goal{}, err
	}
	logs := b.Logs
	if logs == nil {
		logs = []models.DailyLog{}
	}
	var created time.Time
	if b.CreatedAt > 0 {
		created = time.UnixMilli(b.CreatedAt).UTC()
	}
	return models.Goal{
		ID:          b.ID,
		Title:       b.Title,
		Category:    cat,
		KRNumber:    b.KRNumber,
		Target:      b.Target,
		Actual:      b.Actual,
		Unit:        b.Unit,
		Description: b.Description,
		Logs:        logs,
		CreatedAt:   created,
	}, nil
}

// ExportBackup serializes the year's goals, optionally encrypted.
func (d *Database) ExportBackup(ctx context.Context, year int, opts ExportOptions) ([]byte, error) {
	goals, err := d.ListGoals(ctx, year)
	if err != nil {
		return nil, err
	}
	backup := Backup{
		Version:    backupVersion,
		Year:       year,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Goals:      make([]BackupGoal, 0, len(goals)),
	}
	for _, g := range goals {
		backup.Goals = append(backup.Goals, toBackupGoal(g))
	}
	jsonData, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, wrapErr(EntityBackup, "export", "", err)
	}
	if opts.EncryptOutput {
		if opts.Passphrase == "" {
			return nil, wrapErr(EntityBackup, "export", "", ErrPassphraseNeeded)
		}
		out, err := encryptData(jsonData, opts.Passphrase)
		if err != nil {
			return nil, wrapErr(EntityBackup, "encrypt", "", err)
		}
		return out, nil
	}
	return jsonData, nil
}

// ParseBackup decodes an export or a bare goal array, decrypting first when
// needed.
func ParseBackup(payload []byte, passphrase string) ([]models.Goal, error) {
	if wrapped, ok := isEncrypted(payload); ok {
		if passphrase == "" {
			return nil, ErrPassphraseNeeded
		}
		plain, err := decryptData(wrapped, passphrase)
		if err != nil {
			return nil, err
		}
		payload = plain
	}

	var entries []BackupGoal
	trimmed := bytes.TrimSpace(payload)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
		}
	default:
		var backup Backup
		if err := json.Unmarshal(trimmed, &backup); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
		}
		if backup.Version != backupVersion {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidBackup, backup.Version)
		}
		entries = backup.Goals
	}

	goals := make([]models.Goal, 0, len(entries))
	for i, e := range entries {
		g, err := e.toGoal()
		if err != nil {
			return nil, fmt.Errorf("%w: goal %d: %v", ErrInvalidBackup, i+1, err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// ImportBackup replaces the year's goals with the backup's contents and
// returns how many were loaded.
func (d *Database) ImportBackup(ctx context.Context, year int, payload []byte, passphrase string) (int, error) {
	goals, err := ParseBackup(payload, passphrase)
	if err != nil {
		return 0, wrapErr(EntityBackup, "import", "", err)
	}
	if err := d.ReplaceGoals(ctx, year, goals); err != nil {
		return 0, wrapErr(EntityBackup, "import", "", err)
	}
	logging.L().Info("backup imported", zap.Int("year", year), zap.Int("goals", len(goals)))
	return len(goals), nil
}
