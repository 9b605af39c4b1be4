package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/models"
)

// GoalInput is the editable part of a goal.
type GoalInput struct {
	Title       string
	Category    models.Category
	KRNumber    string
	Target      float64
	Actual      float64
	Unit        string
	Description string
}

func (in GoalInput) normalized() GoalInput {
	in.Title = strings.TrimSpace(in.Title)
	in.KRNumber = strings.TrimSpace(in.KRNumber)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func (in GoalInput) goal() models.Goal {
	return models.Goal{
		Title:       in.Title,
		Category:    in.Category,
		KRNumber:    in.KRNumber,
		Target:      in.Target,
		Actual:      in.Actual,
		Unit:        in.Unit,
		Description: in.Description,
	}
}

// CreateGoal stores a new goal at the top of the year's list and returns it.
func (d *Database) CreateGoal(ctx context.Context, year int, in GoalInput) (models.Goal, error) {
	in = in.normalized()
	g := in.goal()
	if err := g.Validate(); err != nil {
		return models.Goal{}, wrapGoalErr("create", "", err)
	}
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	g.Logs = []models.DailyLog{}

	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.withTx(ctx, func(tx *sql.Tx) error {
			pos, err := nextTopPosition(ctx, tx, year)
			if err != nil {
				return err
			}
			return insertGoal(ctx, tx, year, pos, g)
		})
	})
	if err != nil {
		return models.Goal{}, wrapGoalErr("create", g.ID, err)
	}
	logging.L().Info("goal created", zap.String("id", g.ID), zap.Int("year", year))
	return g, nil
}

// UpdateGoal overwrites the editable fields of an existing goal. Logs are
// untouched.
func (d *Database) UpdateGoal(ctx context.Context, id string, in GoalInput) (models.Goal, error) {
	in = in.normalized()
	if err := in.goal().Validate(); err != nil {
		return models.Goal{}, wrapGoalErr("update", id, err)
	}
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, `
			UPDATE goals
			SET title = ?, category = ?, kr_number = ?, target = ?, actual = ?, unit = ?, description = ?
			WHERE id = ?`,
			in.Title, in.Category.Key(), in.KRNumber, in.Target, in.Actual, in.Unit, in.Description, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return models.Goal{}, wrapGoalErr("update", id, err)
	}
	return d.GetGoal(ctx, id)
}

// DeleteGoal removes a goal and its logs.
func (d *Database) DeleteGoal(ctx context.Context, id string) error {
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return wrapGoalErr("delete", id, err)
	}
	logging.L().Info("goal deleted", zap.String("id", id))
	return nil
}

// ToggleLog flips the check-in for date. A missing log is added with the
// given value and Actual grows by it; an existing log is removed and its
// value subtracted. It returns the updated goal and whether the day is now
// checked.
func (d *Database) ToggleLog(ctx context.Context, id, date string, value float64) (models.Goal, bool, error) {
	if _, err := time.Parse(models.ISODate, date); err != nil {
		return models.Goal{}, false, wrapErr(EntityLog, "toggle", id, err)
	}
	var checked bool
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.withTx(ctx, func(tx *sql.Tx) error {
			ok, err := d.goalExists(ctx, tx, id)
			if err != nil {
				return err
			}
			if !ok {
				return ErrGoalNotFound
			}
			var existing float64
			err = tx.QueryRowContext(ctx, "SELECT value FROM daily_logs WHERE goal_id = ? AND date = ?", id, date).Scan(&existing)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				if _, err := tx.ExecContext(ctx, "INSERT INTO daily_logs (goal_id, date, value) VALUES (?, ?, ?)", id, date, value); err != nil {
					return err
				}
				_, err = tx.ExecContext(ctx, "UPDATE goals SET actual = actual + ? WHERE id = ?", value, id)
				checked = true
				return err
			case err != nil:
				return err
			}
			if _, err := tx.ExecContext(ctx, "DELETE FROM daily_logs WHERE goal_id = ? AND date = ?", id, date); err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, "UPDATE goals SET actual = actual - ? WHERE id = ?", existing, id)
			return err
		})
	})
	if err != nil {
		return models.Goal{}, false, wrapErr(EntityLog, "toggle", id, err)
	}
	g, err := d.GetGoal(ctx, id)
	if err != nil {
		return models.Goal{}, false, err
	}
	logging.L().Debug("log toggled", zap.String("goal", id), zap.String("date", date), zap.Bool("checked", checked))
	return g, checked, nil
}

// ReplaceGoals overwrites every goal of the year with goals, keeping their
// order and IDs. Duplicate log dates are collapsed first. Goals of other
// years are never touched; an incoming ID already used there is replaced
// with a fresh one.
func (d *Database) ReplaceGoals(ctx context.Context, year int, goals []models.Goal) error {
	clean := make([]models.Goal, 0, len(goals))
	seen := make(map[string]bool, len(goals))
	for _, g := range goals {
		g = g.DedupLogs()
		if g.ID == "" || seen[g.ID] {
			g.ID = uuid.NewString()
		}
		seen[g.ID] = true
		if err := g.Validate(); err != nil {
			return wrapGoalErr("replace", g.ID, err)
		}
		if g.CreatedAt.IsZero() {
			g.CreatedAt = time.Now().UTC()
		}
		clean = append(clean, g)
	}

	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.withTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE plan_year = ?", year); err != nil {
				return err
			}
			for i, g := range clean {
				// IDs are global. One still present belongs to another year,
				// which must stay untouched.
				taken, err := d.goalExists(ctx, tx, g.ID)
				if err != nil {
					return err
				}
				if taken {
					g.ID = uuid.NewString()
				}
				if err := insertGoal(ctx, tx, year, i, g); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return wrapGoalErr("replace", "", err)
	}
	logging.L().Info("goals replaced", zap.Int("year", year), zap.Int("count", len(clean)))
	return nil
}

func insertGoal(ctx context.Context, tx *sql.Tx, year, position int, g models.Goal) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO goals (id, plan_year, title, category, kr_number, target, actual, unit, description, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, year, g.Title, g.Category.Key(), g.KRNumber, g.Target, g.Actual, g.Unit, g.Description, position, formatTime(g.CreatedAt))
	if err != nil {
		return err
	}
	if len(g.Logs) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO daily_logs (goal_id, date, value) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, l := range g.Logs {
		if _, err := stmt.ExecContext(ctx, g.ID, l.Date, l.Value); err != nil {
			return err
		}
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGoalNotFound
	}
	return nil
}
