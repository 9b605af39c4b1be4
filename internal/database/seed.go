package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/zenith/internal/models"
)

// SeedGoal is one entry of seed.yaml.
type SeedGoal struct {
	Title       string  `yaml:"title"`
	Category    string  `yaml:"category"`
	KR          string  `yaml:"kr"`
	Target      float64 `yaml:"target"`
	Unit        string  `yaml:"unit"`
	Description string  `yaml:"description"`
}

type seedFile struct {
	Goals []SeedGoal `yaml:"goals"`
}

// DefaultSeeds are the example key results shown on a fresh plan.
func DefaultSeeds() []SeedGoal {
	return []SeedGoal{
		{Title: "2026 數位轉型計畫", Category: "CAREER", KR: "KR1", Target: 100, Unit: "次", Description: "包含 100 篇專業內容發佈"},
		{Title: "全年度健康跑", Category: "HEALTH", KR: "KR5", Target: 200, Unit: "天", Description: "每次 5 公里"},
	}
}

// LoadSeedFile reads seed goals from a YAML file. A missing file yields
// DefaultSeeds.
func LoadSeedFile(path string) ([]SeedGoal, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSeeds(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeeds(data)
}

// ParseSeeds decodes a seed document and validates every entry.
func ParseSeeds(data []byte) ([]SeedGoal, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, s := range f.Goals {
		if _, err := s.toGoal(time.Time{}); err != nil {
			return nil, fmt.Errorf("seed goal %d: %w", i+1, err)
		}
	}
	return f.Goals, nil
}

func (s SeedGoal) toGoal(now time.Time) (models.Goal, error) {
	cat, err := models.ParseCategory(s.Category)
	if err != nil {
		return models.Goal{}, err
	}
	g := models.Goal{
		Title:       s.Title,
		Category:    cat,
		KRNumber:    s.KR,
		Target:      s.Target,
		Unit:        s.Unit,
		Description: s.Description,
		Logs:        []models.DailyLog{},
		CreatedAt:   now,
	}
	return g, g.Validate()
}

// SeedDefaults fills an empty plan year with seeds and reports whether it
// did. Years that already hold goals are left alone.
func (d *Database) SeedDefaults(ctx context.Context, year int, seeds []SeedGoal) (bool, error) {
	n, err := d.CountGoals(ctx, year)
	if err != nil {
		return false, err
	}
	if n > 0 || len(seeds) == 0 {
		return false, nil
	}
	now := time.Now().UTC()
	goals := make([]models.Goal, 0, len(seeds))
	for _, s := range seeds {
		g, err := s.toGoal(now)
		if err != nil {
			return false, wrapGoalErr("seed", "", err)
		}
		goals = append(goals, g)
	}
	if err := d.ReplaceGoals(ctx, year, goals); err != nil {
		return false, err
	}
	return true, nil
}
