package database

import (
	"context"
	"database/sql"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// nextTopPosition returns a position that sorts before every goal of the year.
func nextTopPosition(ctx context.Context, q queryRower, year int) (int, error) {
	var minPos int
	err := q.QueryRowContext(ctx, "SELECT COALESCE(MIN(position), 0) FROM goals WHERE plan_year = ?", year).Scan(&minPos)
	return minPos - 1, err
}
