package database

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNullableHelpers(t *testing.T) {
	if got := nullableString(""); got.Valid {
		t.Fatalf("expected nullableString(\"\") to be invalid, got valid")
	}
	if got := nullableString("note"); !got.Valid || got.String != "note" {
		t.Fatalf("expected nullableString(\"note\") to be valid, got %+v", got)
	}
}

func TestTimeHelpers(t *testing.T) {
	ts := time.Date(2026, time.May, 4, 12, 30, 0, 123, time.FixedZone("x", 3600))
	if got := parseTime(formatTime(ts)); !got.Equal(ts) {
		t.Fatalf("round trip = %v, want %v", got, ts)
	}
	if !parseTime("garbage").IsZero() {
		t.Fatalf("expected zero time for garbage")
	}
}

func TestGoalQueryBuild(t *testing.T) {
	query, args := NewGoalQuery().WhereYear(2026).WhereCategory("HEALTH").Limit(5).Build()
	if !strings.Contains(query, "WHERE plan_year = ? AND category = ?") {
		t.Fatalf("unexpected query %q", query)
	}
	if !strings.HasSuffix(query, "ORDER BY position ASC, created_at DESC LIMIT 5") {
		t.Fatalf("unexpected ordering %q", query)
	}
	if len(args) != 2 || args[0] != 2026 || args[1] != "HEALTH" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	err := wrapGoalErr("delete", "abc", ErrGoalNotFound)
	if err.Error() != "delete goal abc: goal not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected errors.Is to unwrap")
	}
	if wrapGoalErr("x", "", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	if got := wrapErr(EntitySetting, "set", "", errors.New("boom")).Error(); got != "set setting: boom" {
		t.Fatalf("unexpected message %q", got)
	}
}
