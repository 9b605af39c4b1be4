package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/zenith/internal/models"
)

const testYear = 2026

type TestDataBuilder struct {
	t     *testing.T
	ctx   context.Context
	db    *Database
	year  int
	goals []models.Goal
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db, year: testYear}
}

func (b *TestDataBuilder) ForYear(year int) *TestDataBuilder {
	b.year = year
	return b
}

func (b *TestDataBuilder) WithGoals(count int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		g, err := b.db.CreateGoal(b.ctx, b.year, GoalInput{
			Title:    fmt.Sprintf("Goal %d", i+1),
			Category: models.Categories()[i%len(models.Categories())],
			KRNumber: fmt.Sprintf("KR%d", i+1),
			Target:   float64(10 * (i + 1)),
			Unit:     "次",
		})
		if err != nil {
			b.t.Fatalf("CreateGoal failed: %v", err)
		}
		b.goals = append(b.goals, g)
	}
	return b
}

func (b *TestDataBuilder) WithCheckIns(dates ...string) *TestDataBuilder {
	b.t.Helper()
	if len(b.goals) == 0 {
		b.WithGoals(1)
	}
	for _, date := range dates {
		if _, _, err := b.db.ToggleLog(b.ctx, b.goals[0].ID, date, 1); err != nil {
			b.t.Fatalf("ToggleLog failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) GoalIDs() []string {
	ids := make([]string, 0, len(b.goals))
	for _, g := range b.goals {
		ids = append(ids, g.ID)
	}
	return ids
}
