package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/streak"
)

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		actual, target float64
		unit           string
		want           string
	}{
		{12, 200, "天", "12/200 天"},
		{2.5, 10, "km", "2.5/10 km"},
		{0, 100, "", "0/100"},
	}
	for _, tt := range tests {
		if got := FormatProgress(tt.actual, tt.target, tt.unit); got != tt.want {
			t.Errorf("FormatProgress(%v, %v, %q) = %q, want %q", tt.actual, tt.target, tt.unit, got, tt.want)
		}
	}
}

func TestFormatStreak(t *testing.T) {
	if got := FormatStreak(streak.Result{}); got != "no streak" {
		t.Fatalf("unexpected empty streak %q", got)
	}
	if got := FormatStreak(streak.Result{Current: 3, Longest: 12}); got != "🔥3 best 12" {
		t.Fatalf("unexpected streak %q", got)
	}
}

func TestTruncateCountsWideRunes(t *testing.T) {
	got := truncate("全年度健康跑計畫", 8)
	if w := ansi.StringWidth(got); w > 8 {
		t.Fatalf("expected at most 8 cells, got %d (%q)", w, got)
	}
	if truncate("short", 10) != "short" {
		t.Fatalf("expected short text untouched")
	}
	if truncate("anything", 0) != "" {
		t.Fatalf("expected empty result for zero width")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("健康", 6); ansi.StringWidth(got) != 6 {
		t.Fatalf("expected 6 cells, got %q", got)
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestResolveTheme(t *testing.T) {
	if ResolveTheme("DRACULA").Name != "Dracula" {
		t.Fatalf("expected case-insensitive lookup")
	}
	if ResolveTheme("missing").Name != "Default" {
		t.Fatalf("expected default fallback")
	}
}

func TestThemeNamesDefaultFirst(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) || names[0] != "default" {
		t.Fatalf("unexpected theme names %v", names)
	}
	for i := 2; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("expected sorted names after default, got %v", names)
		}
	}
}

func TestThemesCoverCategoriesAndPace(t *testing.T) {
	for key, th := range Themes {
		for _, c := range models.Categories() {
			if _, ok := th.Categories[c]; !ok {
				t.Errorf("theme %s has no style for %s", key, c.Key())
			}
		}
		for _, p := range []calendar.PaceStatus{calendar.PaceAhead, calendar.PaceOnTrack, calendar.PaceBehind, calendar.PaceExceeded, calendar.PacePreparing} {
			_ = th.Pace(p).Render("x")
		}
	}
}
