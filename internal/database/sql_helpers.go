package database

import (
	"database/sql"
	"time"
)

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// formatTime stores timestamps as RFC 3339 text so they sort lexically.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reads a value written by formatTime. Unparseable values yield the
// zero time rather than failing the whole row.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
