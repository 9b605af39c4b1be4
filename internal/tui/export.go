package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/util"
)

// WriteBackup exports the year's goals as JSON into dir and returns the file
// path.
func WriteBackup(ctx context.Context, store Store, year int, dir string, opts database.ExportOptions, now time.Time) (string, error) {
	data, err := store.ExportBackup(ctx, year, opts)
	if err != nil {
		return "", err
	}
	if err := util.EnsureDir(dir); err != nil {
		return "", err
	}
	suffix := ""
	if opts.EncryptOutput {
		suffix = ".enc"
	}
	filename := filepath.Join(dir, fmt.Sprintf("zenith_%d_backup_%s%s.json", year, now.Format("20060102_150405"), suffix))
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return "", err
	}
	return filename, nil
}
