package database

import (
	"fmt"
	"strings"
)

const goalColumns = "id, title, category, kr_number, target, actual, unit, description, created_at"

type GoalQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewGoalQuery() *GoalQuery {
	return &GoalQuery{columns: goalColumns, orderBy: "position ASC, created_at DESC"}
}

func (q *GoalQuery) Where(filter string, args ...interface{}) *GoalQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *GoalQuery) WhereYear(year int) *GoalQuery {
	return q.Where("plan_year = ?", year)
}

func (q *GoalQuery) WhereID(id string) *GoalQuery {
	return q.Where("id = ?", id)
}

func (q *GoalQuery) WhereCategory(key string) *GoalQuery {
	return q.Where("category = ?", key)
}

func (q *GoalQuery) OrderBy(orderBy string) *GoalQuery {
	q.orderBy = orderBy
	return q
}

func (q *GoalQuery) Limit(limit int) *GoalQuery {
	q.limit = limit
	return q
}

func (q *GoalQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM goals", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
