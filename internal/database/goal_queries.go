package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/zenith/internal/models"
)

// ListGoals returns the goals of a plan year in display order with their logs.
func (d *Database) ListGoals(ctx context.Context, year int) ([]models.Goal, error) {
	query, args := NewGoalQuery().WhereYear(year).Build()
	return d.queryGoals(ctx, "list", query, args...)
}

// ListGoalsByCategory narrows ListGoals to one category.
func (d *Database) ListGoalsByCategory(ctx context.Context, year int, cat models.Category) ([]models.Goal, error) {
	query, args := NewGoalQuery().WhereYear(year).WhereCategory(cat.Key()).Build()
	return d.queryGoals(ctx, "list category", query, args...)
}

// GetGoal loads one goal by ID, or ErrGoalNotFound.
func (d *Database) GetGoal(ctx context.Context, id string) (models.Goal, error) {
	query, args := NewGoalQuery().WhereID(id).Limit(1).Build()
	goals, err := d.queryGoals(ctx, "get", query, args...)
	if err != nil {
		return models.Goal{}, err
	}
	if len(goals) == 0 {
		return models.Goal{}, wrapGoalErr("get", id, ErrGoalNotFound)
	}
	return goals[0], nil
}

// CountGoals reports how many goals the plan year holds.
func (d *Database) CountGoals(ctx context.Context, year int) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM goals WHERE plan_year = ?", year).Scan(&n)
		return n, wrapGoalErr("count", "", err)
	})
}

// Years lists every plan year that has goals, newest first.
func (d *Database) Years(ctx context.Context) ([]int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]int, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT DISTINCT plan_year FROM goals ORDER BY plan_year DESC")
		if err != nil {
			return nil, wrapGoalErr("list years", "", err)
		}
		defer rows.Close()
		var years []int
		for rows.Next() {
			var y int
			if err := rows.Scan(&y); err != nil {
				return nil, wrapGoalErr("list years", "", err)
			}
			years = append(years, y)
		}
		return years, wrapGoalErr("list years", "", rows.Err())
	})
}

func (d *Database) queryGoals(ctx context.Context, op, query string, args ...interface{}) ([]models.Goal, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Goal, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapGoalErr(op, "", err)
		}
		defer rows.Close()

		goals := []models.Goal{}
		for rows.Next() {
			g, err := scanGoal(rows)
			if err != nil {
				return nil, wrapGoalErr(op, "", err)
			}
			goals = append(goals, g)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapGoalErr(op, "", err)
		}
		rows.Close()

		if err := d.attachLogs(ctx, goals); err != nil {
			return nil, wrapGoalErr(op, "", err)
		}
		return goals, nil
	})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	var category, createdAt string
	if err := row.Scan(&g.ID, &g.Title, &category, &g.KRNumber, &g.Target, &g.Actual, &g.Unit, &g.Description, &createdAt); err != nil {
		return g, err
	}
	cat, err := models.ParseCategory(category)
	if err != nil {
		return g, fmt.Errorf("goal %s: %w", g.ID, err)
	}
	g.Category = cat
	g.CreatedAt = parseTime(createdAt)
	g.Logs = []models.DailyLog{}
	return g, nil
}

// attachLogs fills Logs for every goal with a single query.
func (d *Database) attachLogs(ctx context.Context, goals []models.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	index := make(map[string]int, len(goals))
	placeholders := make([]string, 0, len(goals))
	args := make([]interface{}, 0, len(goals))
	for i, g := range goals {
		index[g.ID] = i
		placeholders = append(placeholders, "?")
		args = append(args, g.ID)
	}
	query := fmt.Sprintf("SELECT goal_id, date, value FROM daily_logs WHERE goal_id IN (%s) ORDER BY date ASC", strings.Join(placeholders, ","))
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var goalID string
		var l models.DailyLog
		if err := rows.Scan(&goalID, &l.Date, &l.Value); err != nil {
			return err
		}
		if i, ok := index[goalID]; ok {
			goals[i].Logs = append(goals[i].Logs, l)
		}
	}
	return rows.Err()
}

func (d *Database) goalExists(ctx context.Context, q queryRower, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM goals WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
