package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/testutil"
)

func TestWriteReportEmptyPlan(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2026")
	stats := calendar.ComputeYearStats(2026, testNow)

	path, err := WriteReport(dir, stats, nil, testNow)
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if filepath.Base(path) != "zenith_report_2026_20260310_090000.pdf" {
		t.Fatalf("unexpected file name %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF header")
	}
}

func TestWriteReportReplacesUnsupportedScripts(t *testing.T) {
	goals := []models.Goal{
		testutil.NewGoal().WithTitle("全年度健康跑").WithDescription("每次 5 公里").WithCheckIns("2026-03-09", "2026-03-10").Build(),
		testutil.NewGoal().WithID("goal-2").WithActual(150).Build(),
	}
	path, err := WriteReport(t.TempDir(), calendar.ComputeYearStats(2026, testNow), goals, testNow)
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty report, err=%v", err)
	}
}

func TestPaceColorDistinguishesStatuses(t *testing.T) {
	seen := make(map[[3]int]calendar.PaceStatus)
	for _, p := range []calendar.PaceStatus{calendar.PaceAhead, calendar.PaceOnTrack, calendar.PaceBehind, calendar.PaceExceeded, calendar.PacePreparing} {
		c := paceColor(p)
		if prev, ok := seen[c]; ok {
			t.Fatalf("%s and %s share a color", prev, p)
		}
		seen[c] = p
	}
}
