package tui

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/models"
)

// --- Messages ---
type clipboardMsg struct {
	url string
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type reportDoneMsg struct {
	path string
	err  error
}

func copyCmd(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{url: text, err: copyFn(text)}
	}
}

func exportCmd(ctx context.Context, store Store, year int, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := WriteBackup(ctx, store, year, filepath.Join(dir, "exports"), database.ExportOptions{}, now)
		return exportDoneMsg{path: path, err: err}
	}
}

func reportCmd(dir string, stats models.YearStats, goals []models.Goal, now time.Time) tea.Cmd {
	snapshotGoals := append([]models.Goal(nil), goals...)
	return func() tea.Msg {
		path, err := WriteReport(dir, stats, snapshotGoals, now)
		return reportDoneMsg{path: path, err: err}
	}
}
