// Package streak computes consecutive-day check-in runs for a goal.
package streak

import (
	"sort"
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// Result holds the streak still alive at today and the best run ever logged.
type Result struct {
	Current int
	Longest int
}

// Calculate derives streaks from logs relative to todayISO. A streak that last
// ended yesterday still counts as current; days after today never extend it.
// Log values and unparseable dates are ignored.
func Calculate(logs []models.DailyLog, todayISO string) Result {
	present := make(map[int64]bool, len(logs))
	days := make([]int64, 0, len(logs))
	for _, l := range logs {
		n, ok := dayNumber(l.Date)
		if !ok || present[n] {
			continue
		}
		present[n] = true
		days = append(days, n)
	}
	if len(days) == 0 {
		return Result{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	res := Result{Longest: longest}
	today, ok := dayNumber(todayISO)
	if !ok {
		return res
	}
	// Check-ins dated after today cannot extend a run that reaches today.
	i := sort.Search(len(days), func(i int) bool { return days[i] > today })
	if i == 0 {
		return res
	}
	last := days[i-1]
	if today-last > 1 {
		return res
	}
	for d := last; present[d]; d-- {
		res.Current++
	}
	return res
}

// dayNumber maps an ISO date to days since the Unix epoch.
func dayNumber(iso string) (int64, bool) {
	t, err := time.Parse(models.ISODate, iso)
	if err != nil {
		return 0, false
	}
	return t.Unix() / secondsPerDay, true
}
