package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/util"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = util.Clamp(msg.Width-24, 10, config.ProgressBarWidth)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			logging.L().Warn("clipboard unavailable", zap.Error(msg.err))
			m.setStatus("Clipboard unavailable. Share link: " + msg.url)
		} else {
			m.setStatus("Share link copied to clipboard")
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.setStatus("Backup written to " + msg.path)
		}
		return m, nil

	case reportDoneMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("Report failed: %v", msg.err))
		} else {
			m.setStatus("Report written to " + msg.path)
		}
		return m, nil

	case tea.MouseMsg:
		if m.modal.IsOpen() {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.cursor--
			m.clampCursor()
		case tea.MouseButtonWheelDown:
			m.cursor++
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal.IsOpen() {
			return m.handleModalInput(msg)
		}
		m.clearStatus()
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}

	// Keep the focused input blinking.
	switch s := m.modal.Current().(type) {
	case *GoalFormState:
		return m, s.update(msg)
	case *FilterState:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) handleModalInput(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch s := m.modal.Current().(type) {
	case *GoalFormState:
		return m.handleModalInputGoalForm(s, msg)
	case *ConfirmDeleteState:
		return m.handleModalConfirmDelete(s, msg)
	case *ThemePickerState:
		return m.handleModalInputTheme(s, msg)
	case *FilterState:
		return m.handleModalInputFilter(s, msg)
	case *ImportConfirmState:
		return m.handleModalConfirmImport(s, msg)
	}
	m.modal.Close()
	return m, nil
}

func (m DashboardModel) handleModalConfirmDelete(s *ConfirmDeleteState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.modal.Close()
		if err := m.store.DeleteGoal(m.ctx, s.GoalID); err != nil {
			m.setStatusError(fmt.Sprintf("Error deleting goal: %v", err))
			return m, nil
		}
		m.refreshData()
		m.setStatus(fmt.Sprintf("Deleted %q", s.Title))
	case "n", "esc":
		m.modal.Close()
	}
	return m, nil
}

func (m DashboardModel) handleModalInputTheme(s *ThemePickerState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.names)-1 {
			s.cursor++
		}
	case "enter":
		m.modal.Close()
		if len(s.names) == 0 {
			return m, nil
		}
		name := s.names[s.cursor]
		m.theme = ResolveTheme(name)
		if err := m.store.SetSetting(m.ctx, database.SettingTheme, name); err != nil {
			m.setStatusError(fmt.Sprintf("Error saving theme: %v", err))
			return m, nil
		}
		m.setStatus("Theme: " + m.theme.Name)
	case "esc":
		m.modal.Close()
	}
	return m, nil
}

func (m DashboardModel) handleModalInputFilter(s *FilterState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.modal.Close()
		return m, nil
	case "esc":
		m.modal.Close()
		m.applyFilter("")
		return m, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	m.applyFilter(s.input.Value())
	return m, cmd
}

func (m *DashboardModel) applyFilter(raw string) {
	m.filterRaw = raw
	m.filter = util.ParseSearchQuery(raw)
	m.cursor, m.offset = 0, 0
	m.clampCursor()
}

func (m DashboardModel) handleModalConfirmImport(s *ImportConfirmState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.modal.Close()
		if err := m.store.ReplaceGoals(m.ctx, m.year, s.Goals); err != nil {
			m.setStatusError(fmt.Sprintf("Import failed: %v", err))
			return m, nil
		}
		m.viewMode = ViewOwn
		m.shared = nil
		m.applyFilter("")
		m.refreshData()
		m.setStatus(fmt.Sprintf("Imported %d goals into your %d plan", len(s.Goals), m.year))
	case "n", "esc":
		m.modal.Close()
	}
	return m, nil
}
