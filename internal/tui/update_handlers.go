package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/snapshot"
	"github.com/akyairhashvil/zenith/internal/util"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	own := []int{ViewOwn}
	shared := []int{ViewShared}

	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Key: "esc", Handler: handleEscape, Priority: 100})

	r.Register(KeyBinding{Key: "up", Handler: handleGoalUp, Priority: 90})
	r.Register(KeyBinding{Key: "k", Handler: handleGoalUp, Priority: 90})
	r.Register(KeyBinding{Key: "down", Handler: handleGoalDown, Priority: 90})
	r.Register(KeyBinding{Key: "j", Handler: handleGoalDown, Priority: 90})
	r.Register(KeyBinding{Key: "left", Handler: handleDayPrev, Priority: 90})
	r.Register(KeyBinding{Key: "h", Handler: handleDayPrev, Priority: 90})
	r.Register(KeyBinding{Key: "right", Handler: handleDayNext, Priority: 90})
	r.Register(KeyBinding{Key: "l", Handler: handleDayNext, Priority: 90})
	r.Register(KeyBinding{Key: "[", Handler: handleMonthPrev, Description: "prev month", Priority: 90})
	r.Register(KeyBinding{Key: "]", Handler: handleMonthNext, Description: "next month", Priority: 90})
	r.Register(KeyBinding{Key: "t", Handler: handleToday, Description: "today", Priority: 90})

	r.Register(KeyBinding{Key: " ", Handler: handleToggle, Label: "space", Description: "check in", ViewModes: own, Priority: 80})
	r.Register(KeyBinding{Key: "enter", Handler: handleToggle, ViewModes: own, Priority: 80})
	r.Register(KeyBinding{Key: "n", Handler: handleNewGoal, Description: "new", ViewModes: own, Priority: 70})
	r.Register(KeyBinding{Key: "e", Handler: handleEditGoal, Description: "edit", ViewModes: own, Priority: 70})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteGoal, Description: "delete", ViewModes: own, Priority: 70})

	r.Register(KeyBinding{Key: "i", Handler: handleImportShared, Description: "import to mine", ViewModes: shared, Priority: 70})

	r.Register(KeyBinding{Key: "/", Handler: handleFilter, Description: "filter", Priority: 60})
	r.Register(KeyBinding{Key: "s", Handler: handleShare, Description: "share", Priority: 60})
	r.Register(KeyBinding{Key: "x", Handler: handleExport, Description: "backup", ViewModes: own, Priority: 50})
	r.Register(KeyBinding{Key: "p", Handler: handleReport, Description: "pdf", Priority: 50})
	r.Register(KeyBinding{Key: "T", Handler: handleThemePicker, Description: "theme", Priority: 50})
	return r
}

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

// handleEscape clears an active filter first, then leaves view mode.
func handleEscape(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if !m.filter.Empty() {
		m.applyFilter("")
		return m, nil, true
	}
	if m.viewMode == ViewShared {
		m.viewMode = ViewOwn
		m.shared = nil
		m.clampCursor()
		m.setStatus("Back to your own plan")
		return m, nil, true
	}
	return m, nil, false
}

func handleGoalUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor--
	m.clampCursor()
	return m, nil, true
}

func handleGoalDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor++
	m.clampCursor()
	return m, nil, true
}

func handleDayPrev(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.day = util.Wrap(m.day-1, len(m.monthCells()))
	return m, nil, true
}

func handleDayNext(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.day = util.Wrap(m.day+1, len(m.monthCells()))
	return m, nil, true
}

func handleMonthPrev(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.setMonth(m.month - 1)
	return m, nil, true
}

func handleMonthNext(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.setMonth(m.month + 1)
	return m, nil, true
}

func handleToday(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	now := m.now()
	if now.Year() != m.year {
		m.setStatus(fmt.Sprintf("Today is outside the %d plan", m.year))
		return m, nil, true
	}
	m.day = now.Day() - 1
	m.setMonth(int(now.Month()) - 1)
	return m, nil, true
}

func handleToggle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	g, ok := m.selectedGoal()
	if !ok {
		return m, nil, true
	}
	cell, ok := m.selectedCell()
	if !ok {
		return m, nil, true
	}
	updated, checked, err := m.store.ToggleLog(m.ctx, g.ID, cell.ISO, config.CheckInValue)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error saving check-in: %v", err))
		return m, nil, true
	}
	m.replaceGoal(updated)
	m.stats = m.statsNow()
	if checked {
		m.setStatus(fmt.Sprintf("Checked in %s for %q", cell.ISO, updated.Title))
	} else {
		m.setStatus(fmt.Sprintf("Removed check-in %s for %q", cell.ISO, updated.Title))
	}
	return m, nil, true
}

func handleNewGoal(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modal.Open(newGoalForm(nil))
	return m, nil, true
}

func handleEditGoal(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	g, ok := m.selectedGoal()
	if !ok {
		return m, nil, true
	}
	m.modal.Open(newGoalForm(&g))
	return m, nil, true
}

func handleDeleteGoal(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	g, ok := m.selectedGoal()
	if !ok {
		return m, nil, true
	}
	m.modal.Open(&ConfirmDeleteState{GoalID: g.ID, Title: g.Title})
	return m, nil, true
}

func handleImportShared(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modal.Open(&ImportConfirmState{Goals: m.shared})
	return m, nil, true
}

func handleFilter(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modal.Open(newFilterState(m.filterRaw))
	return m, nil, true
}

func handleShare(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	link, err := snapshot.ShareURL(m.shareBase, m.currentGoals())
	if err != nil {
		logging.L().Error("share link failed", zap.Error(err))
		m.setStatusError(fmt.Sprintf("Could not build share link: %v", err))
		return m, nil, true
	}
	return m, copyCmd(m.clipboard, link), true
}

func handleExport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.setStatus("Writing backup...")
	return m, exportCmd(m.ctx, m.store, m.year, m.reportDir, m.now()), true
}

func handleReport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.setStatus("Writing report...")
	return m, reportCmd(m.reportDir, m.statsNow(), m.currentGoals(), m.now()), true
}

func handleThemePicker(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modal.Open(newThemePicker(m.theme.Name))
	return m, nil, true
}
