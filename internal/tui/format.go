package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/streak"
)

// FormatAmount drops a trailing ".0" so counts read as integers.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatProgress renders "actual/target unit".
func FormatProgress(actual, target float64, unit string) string {
	s := FormatAmount(actual) + "/" + FormatAmount(target)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// FormatStreak renders current and best runs, e.g. "🔥3 best 12".
func FormatStreak(r streak.Result) string {
	if r.Current == 0 && r.Longest == 0 {
		return "no streak"
	}
	return fmt.Sprintf("🔥%d best %d", r.Current, r.Longest)
}

// truncate shortens text to max display cells.
func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// padRight pads to width display cells, counting wide runes correctly.
func padRight(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
