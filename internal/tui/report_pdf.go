package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/streak"
	"github.com/akyairhashvil/zenith/internal/util"
)

const reportBarWidth = 120.0

// WriteReport renders an annual progress report for goals into dir and
// returns the file path. Core fonts only cover cp1252, so other scripts are
// replaced.
func WriteReport(dir string, stats models.YearStats, goals []models.Goal, now time.Time) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Annual key results %d", stats.Year), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Annual Key Results %d", stats.Year))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s  |  Day %d of %d  |  Year progress %s",
		now.Format(models.ISODate), stats.DaysElapsed, stats.TotalDays, calendar.FormatPercent(stats.YearProgress)))
	pdf.Ln(6)
	drawBar(pdf, stats.YearProgress, [3]int{120, 120, 120})
	pdf.Ln(8)

	if len(goals) == 0 {
		pdf.Cell(0, 8, "No goals recorded.")
		pdf.Ln(8)
	}

	for _, g := range goals {
		rate := g.AchievementRate()
		pace := calendar.Pace(rate, stats.YearProgress)
		run := streak.Calculate(g.Logs, stats.TodayISO)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s %s [%s]", g.KRNumber, g.Title, g.Category.Key())))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Progress %s (%s)  |  Pace: %s  |  Streak %d, best %d  |  Check-ins %d",
			FormatProgress(g.Actual, g.Target, g.Unit), calendar.FormatPercent(rate), pace, run.Current, run.Longest, len(g.Logs))))
		pdf.Ln(6)
		drawBar(pdf, rate, paceColor(pace))
		pdf.Ln(5)

		if g.Description != "" {
			pdf.MultiCell(0, 5, tr(g.Description), "", "", false)
		}
		pdf.Ln(4)
	}

	path := filepath.Join(dir, fmt.Sprintf("zenith_report_%d_%s.pdf", stats.Year, now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func drawBar(pdf *fpdf.Fpdf, percent float64, rgb [3]int) {
	x, y := pdf.GetXY()
	pdf.SetFillColor(230, 230, 230)
	pdf.Rect(x, y, reportBarWidth, 3, "F")
	filled := reportBarWidth * min(max(percent, 0), 100) / 100
	if filled > 0 {
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.Rect(x, y, filled, 3, "F")
	}
}

func paceColor(p calendar.PaceStatus) [3]int {
	switch p {
	case calendar.PaceExceeded:
		return [3]int{245, 158, 11}
	case calendar.PaceAhead:
		return [3]int{59, 130, 246}
	case calendar.PaceBehind:
		return [3]int{239, 68, 68}
	case calendar.PacePreparing:
		return [3]int{148, 163, 184}
	default:
		return [3]int{16, 185, 129}
	}
}
