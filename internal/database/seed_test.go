package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/zenith/internal/models"
)

func TestSeedDefaultsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	seeded, err := db.SeedDefaults(ctx, testYear, DefaultSeeds())
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if !seeded {
		t.Fatalf("expected empty year to be seeded")
	}
	goals, err := db.ListGoals(ctx, testYear)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 seeded goals, got %d", len(goals))
	}
	if goals[0].Category != models.CategoryCareer || goals[1].Category != models.CategoryHealth {
		t.Fatalf("unexpected seed order: %+v", goals)
	}

	seeded, err = db.SeedDefaults(ctx, testYear, DefaultSeeds())
	if err != nil {
		t.Fatalf("SeedDefaults second run failed: %v", err)
	}
	if seeded {
		t.Fatalf("expected populated year to be left alone")
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadSeedFile(filepath.Join(dir, "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSeedFile missing failed: %v", err)
	}
	if len(missing) != len(DefaultSeeds()) {
		t.Fatalf("expected default seeds for missing file")
	}

	path := filepath.Join(dir, "seed.yaml")
	doc := `goals:
  - title: 存第一桶金
    category: 財務管理
    kr: KR2
    target: 1000000
    unit: 元
  - title: Weekly call with parents
    category: social
    target: 52
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write seed failed: %v", err)
	}
	seeds, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(seeds) != 2 || seeds[0].Target != 1000000 || seeds[1].Category != "social" {
		t.Fatalf("unexpected seeds: %+v", seeds)
	}
}

func TestParseSeedsRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"unknown category": "goals:\n  - title: x\n    category: TRAVEL\n    target: 1\n",
		"zero target":      "goals:\n  - title: x\n    category: OTHER\n",
		"not yaml":         "goals: [unterminated",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSeeds([]byte(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
