// Package calendar derives year-progress statistics and month grids from an
// injected clock reading. Every function is pure.
package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
)

const day = 24 * time.Hour

// weekDayLabels is indexed by time.Weekday (Sunday = 0).
var weekDayLabels = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// TotalDays returns 365 or 366.
func TotalDays(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// ComputeYearStats reports how much of targetYear has elapsed at now. Days are
// counted in now's location; a calendar day counts as elapsed once it has started.
func ComputeYearStats(targetYear int, now time.Time) models.YearStats {
	total := TotalDays(targetYear)
	start := time.Date(targetYear, time.January, 1, 0, 0, 0, 0, now.Location())

	elapsed := 0
	switch {
	case now.Year() > targetYear:
		elapsed = total
	case now.Year() == targetYear:
		elapsed = int(math.Ceil(float64(now.Sub(start)) / float64(day)))
	}
	elapsed = clamp(elapsed, 0, total)

	return models.YearStats{
		Year:          targetYear,
		Today:         now.Format("01/02"),
		TodayISO:      now.Format(models.ISODate),
		DaysElapsed:   elapsed,
		DaysRemaining: total - elapsed,
		TotalDays:     total,
		YearProgress:  math.Min(100, float64(elapsed)/float64(total)*100),
	}
}

// DaysInMonth lists the days of a month. month is 0-based (0 = January);
// anything outside 0..11 yields nil.
func DaysInMonth(year, month int) []models.DayCell {
	if month < 0 || month > 11 {
		return nil
	}
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()
	cells := make([]models.DayCell, 0, n)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		cells = append(cells, models.DayCell{
			ISO:       d.Format(models.ISODate),
			Day:       d.Day(),
			WeekDay:   weekDayLabels[wd],
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
		})
	}
	return cells
}

// FormatPercent renders a percentage with one decimal, e.g. "27.4%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
