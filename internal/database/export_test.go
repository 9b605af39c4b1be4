package database

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/zenith/internal/models"
)

func TestExportBackup(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithGoals(2).WithCheckIns("2026-01-01").Build()

	payload, err := db.ExportBackup(ctx, testYear, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	var backup Backup
	if err := json.Unmarshal(payload, &backup); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if backup.Version != backupVersion || backup.Year != testYear {
		t.Fatalf("unexpected header: %+v", backup)
	}
	if len(backup.Goals) != 2 {
		t.Fatalf("expected 2 goals in export, got %d", len(backup.Goals))
	}
	if backup.Goals[1].Category != models.CategoryGrowth.Label() {
		t.Fatalf("expected category label, got %q", backup.Goals[1].Category)
	}
}

func TestImportBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := NewTestDataBuilder(t).WithGoals(3).WithCheckIns("2026-01-01", "2026-01-02").Build()
	payload, err := src.ExportBackup(ctx, testYear, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	want, err := src.ListGoals(ctx, testYear)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}

	dst := setupTestDB(t, ctx)
	n, err := dst.ImportBackup(ctx, testYear, payload, "")
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imported goals, got %d", n)
	}
	got, err := dst.ListGoals(ctx, testYear)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Actual != want[i].Actual {
			t.Fatalf("goal %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
		if len(got[i].Logs) != len(want[i].Logs) {
			t.Fatalf("goal %d logs mismatch", i)
		}
		if got[i].CreatedAt.UnixMilli() != want[i].CreatedAt.UnixMilli() {
			t.Fatalf("goal %d createdAt mismatch", i)
		}
	}
}

func TestImportBackupIntoAnotherYear(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithGoals(1).Build()

	payload, err := db.ExportBackup(ctx, testYear, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if _, err := db.ImportBackup(ctx, 2027, payload, ""); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	for year, want := range map[int]int{testYear: 1, 2027: 1} {
		n, err := db.CountGoals(ctx, year)
		if err != nil {
			t.Fatalf("CountGoals failed: %v", err)
		}
		if n != want {
			t.Fatalf("expected %d goals in %d, got %d", want, year, n)
		}
	}
}

func TestImportBackupAcceptsWebAppArray(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	legacy := `[
	  {"id":"1","title":"2026 數位轉型計畫","category":"斜槓事業","krNumber":"KR1","target":100,"actual":2,"unit":"次",
	   "description":"包含 100 篇專業內容發佈","logs":[{"date":"2026-01-01","value":1},{"date":"2026-01-02","value":1}],"createdAt":1767225600000}
	]`
	n, err := db.ImportBackup(ctx, testYear, []byte(legacy), "")
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 goal, got %d", n)
	}
	g, err := db.GetGoal(ctx, "1")
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if g.Category != models.CategoryCareer || len(g.Logs) != 2 || g.CreatedAt.Year() != 2026 {
		t.Fatalf("unexpected imported goal: %+v", g)
	}
}

func TestImportBackupRejectsMalformed(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithGoals(1).Build()
	for _, payload := range []string{"not json", `{"version":9,"goals":[]}`, `[{"id":"x","title":"t","category":"旅遊","target":1}]`} {
		if _, err := db.ImportBackup(ctx, testYear, []byte(payload), ""); !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("payload %q: expected ErrInvalidBackup, got %v", payload, err)
		}
	}
	goals, err := db.ListGoals(ctx, testYear)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected existing goal untouched")
	}
}

func TestEncryptedBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := NewTestDataBuilder(t).WithGoals(1).Build()
	payload, err := src.ExportBackup(ctx, testYear, ExportOptions{EncryptOutput: true, Passphrase: "Pass1234"})
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if strings.Contains(string(payload), "Goal 1") {
		t.Fatalf("expected ciphertext, found plaintext title")
	}

	dst := setupTestDB(t, ctx)
	if _, err := dst.ImportBackup(ctx, testYear, payload, ""); !errors.Is(err, ErrPassphraseNeeded) {
		t.Fatalf("expected ErrPassphraseNeeded, got %v", err)
	}
	if _, err := dst.ImportBackup(ctx, testYear, payload, "Wrong999"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
	n, err := dst.ImportBackup(ctx, testYear, payload, "Pass1234")
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 goal, got %d", n)
	}
}

func TestExportEncryptRequiresPassphrase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.ExportBackup(ctx, testYear, ExportOptions{EncryptOutput: true}); !errors.Is(err, ErrPassphraseNeeded) {
		t.Fatalf("expected ErrPassphraseNeeded, got %v", err)
	}
}
