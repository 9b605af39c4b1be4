package testutil

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
)

// GoalBuilder provides fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			ID:        "goal-1",
			Title:     "Test Goal",
			Category:  models.CategoryGrowth,
			KRNumber:  "KR1",
			Target:    100,
			Unit:      "次",
			Logs:      []models.DailyLog{},
			CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.goal.ID = id
	return b
}

func (b *GoalBuilder) WithTitle(title string) *GoalBuilder {
	b.goal.Title = title
	return b
}

func (b *GoalBuilder) WithCategory(c models.Category) *GoalBuilder {
	b.goal.Category = c
	return b
}

func (b *GoalBuilder) WithKR(kr string) *GoalBuilder {
	b.goal.KRNumber = kr
	return b
}

func (b *GoalBuilder) WithTarget(target float64, unit string) *GoalBuilder {
	b.goal.Target = target
	b.goal.Unit = unit
	return b
}

func (b *GoalBuilder) WithDescription(d string) *GoalBuilder {
	b.goal.Description = d
	return b
}

// WithCheckIns adds a value-1 log per date and bumps Actual to match.
func (b *GoalBuilder) WithCheckIns(dates ...string) *GoalBuilder {
	for _, d := range dates {
		b.goal.Logs = append(b.goal.Logs, models.DailyLog{Date: d, Value: 1})
		b.goal.Actual++
	}
	return b
}

func (b *GoalBuilder) WithActual(actual float64) *GoalBuilder {
	b.goal.Actual = actual
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	g := b.goal
	g.Logs = append([]models.DailyLog(nil), b.goal.Logs...)
	if g.Logs == nil {
		g.Logs = []models.DailyLog{}
	}
	return g
}

// Goals returns n distinct goals cycling through the categories.
func Goals(n int) []models.Goal {
	cats := models.Categories()
	out := make([]models.Goal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewGoal().
			WithID(fmt.Sprintf("goal-%d", i+1)).
			WithTitle(fmt.Sprintf("Goal %d", i+1)).
			WithKR(fmt.Sprintf("KR%d", i+1)).
			WithCategory(cats[i%len(cats)]).
			Build())
	}
	return out
}

// FixedClock returns a time in the plan year for deterministic stats.
func FixedClock(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 9, 0, 0, 0, time.UTC)
}
