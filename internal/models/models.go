package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ISODate is the layout of every calendar date stored or exchanged by zenith.
const ISODate = "2006-01-02"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidGoal     = errors.New("invalid goal")
)

// Category is the closed set of goal areas.
type Category int

const (
	CategoryGrowth Category = iota
	CategoryHealth
	CategoryFinance
	CategoryCareer
	CategorySocial
	CategoryOther
)

var categoryKeys = [...]string{"GROWTH", "HEALTH", "FINANCE", "CAREER", "SOCIAL", "OTHER"}

var categoryLabels = [...]string{"成長輸入", "生活習慣", "財務管理", "斜槓事業", "社交生活", "其他項目"}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryGrowth, CategoryHealth, CategoryFinance, CategoryCareer, CategorySocial, CategoryOther}
}

func (c Category) Valid() bool {
	return c >= CategoryGrowth && c <= CategoryOther
}

// Key is the stable ASCII identifier, e.g. "HEALTH".
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryKeys[c]
}

// Label is the display label carried in share links.
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categoryLabels[c]
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryKeys[c]
}

// ParseCategory accepts either a key (case-insensitive) or a display label.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for i := range categoryKeys {
		if strings.EqualFold(trimmed, categoryKeys[i]) || trimmed == categoryLabels[i] {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// DailyLog is one check-in for a calendar date.
type DailyLog struct {
	Date  string  `json:"date" yaml:"date"`
	Value float64 `json:"value" yaml:"value"`
}

// Goal is a single key result tracked across the plan year.
type Goal struct {
	ID          string
	Title       string
	Category    Category
	KRNumber    string
	Target      float64
	Actual      float64
	Unit        string
	Description string
	Logs        []DailyLog
	CreatedAt   time.Time
}

// Validate reports the first field that makes the goal unusable.
func (g Goal) Validate() error {
	switch {
	case strings.TrimSpace(g.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidGoal)
	case !g.Category.Valid():
		return fmt.Errorf("%w: %v", ErrInvalidGoal, ErrUnknownCategory)
	case math.IsNaN(g.Target) || math.IsInf(g.Target, 0) || g.Target <= 0:
		return fmt.Errorf("%w: target must be a positive number", ErrInvalidGoal)
	case math.IsNaN(g.Actual) || math.IsInf(g.Actual, 0):
		return fmt.Errorf("%w: actual must be a finite number", ErrInvalidGoal)
	}
	return nil
}

// AchievementRate is actual/target as a percentage. It may exceed 100.
func (g Goal) AchievementRate() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Actual / g.Target * 100
}

// Remaining is the quantity still needed to reach the target.
func (g Goal) Remaining() float64 {
	if rem := g.Target - g.Actual; rem > 0 {
		return rem
	}
	return 0
}

func (g Goal) HasLog(date string) bool {
	for _, l := range g.Logs {
		if l.Date == date {
			return true
		}
	}
	return false
}

// DedupLogs keeps the first log for every date and returns the goal with the
// filtered list. Actual is recomputed from the surviving logs.
func (g Goal) DedupLogs() Goal {
	seen := make(map[string]bool, len(g.Logs))
	out := make([]DailyLog, 0, len(g.Logs))
	var total float64
	for _, l := range g.Logs {
		if seen[l.Date] {
			continue
		}
		seen[l.Date] = true
		out = append(out, l)
		total += l.Value
	}
	if len(out) != len(g.Logs) {
		g.Actual = total
	}
	g.Logs = out
	return g
}

// YearStats is the derived year-progress view for one instant.
type YearStats struct {
	Year          int
	Today         string
	TodayISO      string
	DaysElapsed   int
	DaysRemaining int
	TotalDays     int
	YearProgress  float64
}

// DayCell is one day in a month grid.
type DayCell struct {
	ISO       string
	Day       int
	WeekDay   string
	IsWeekend bool
}
