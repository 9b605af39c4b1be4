package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/zenith/internal/database"
)

func openSeededDB(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "zenith.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.SeedDefaults(ctx, 2026, database.DefaultSeeds()); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	return db
}

func TestWriteBackupRoundTrip(t *testing.T) {
	db := openSeededDB(t)
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := WriteBackup(context.Background(), db, 2026, dir, database.ExportOptions{}, testNow)
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}
	if filepath.Base(path) != "zenith_2026_backup_20260310_090000.json" {
		t.Fatalf("unexpected file name %s", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	goals, err := database.ParseBackup(data, "")
	if err != nil {
		t.Fatalf("ParseBackup failed: %v", err)
	}
	if len(goals) != len(database.DefaultSeeds()) {
		t.Fatalf("expected %d goals, got %d", len(database.DefaultSeeds()), len(goals))
	}
}

func TestWriteBackupEncrypted(t *testing.T) {
	db := openSeededDB(t)
	opts := database.ExportOptions{EncryptOutput: true, Passphrase: "correct horse battery"}

	path, err := WriteBackup(context.Background(), db, 2026, t.TempDir(), opts, testNow)
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}
	if !strings.HasSuffix(path, ".enc.json") {
		t.Fatalf("expected .enc.json suffix, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, err := database.ParseBackup(data, ""); !errors.Is(err, database.ErrPassphraseNeeded) {
		t.Fatalf("expected ErrPassphraseNeeded, got %v", err)
	}
	goals, err := database.ParseBackup(data, opts.Passphrase)
	if err != nil || len(goals) != 2 {
		t.Fatalf("expected 2 decrypted goals, got %d (%v)", len(goals), err)
	}
}
