package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateDashboard SessionState = iota
	StateFailed
)

// MainModel is the root bubbletea model.
type MainModel struct {
	state     SessionState
	dashboard DashboardModel
	err       error
	width     int
	height    int
}

func NewMainModel(ctx context.Context, store Store, opts Options) MainModel {
	m := MainModel{
		state:     StateDashboard,
		dashboard: NewDashboardModel(ctx, store, opts),
	}
	if m.dashboard.loadErr != nil {
		m.state = StateFailed
		m.err = m.dashboard.loadErr
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	if m.state == StateDashboard {
		return m.dashboard.Init()
	}
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == StateFailed {
			if k := msg.String(); k == "q" || k == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.state != StateDashboard {
		return m, nil
	}
	newDash, cmd := m.dashboard.Update(msg)
	m.dashboard = newDash.(DashboardModel)
	return m, cmd
}

func (m MainModel) View() string {
	if m.state == StateFailed {
		return fmt.Sprintf("Error: %v\nPress q or Ctrl+C to quit.", m.err)
	}
	return m.dashboard.View()
}

// Run starts the dashboard on the terminal and blocks until the user quits.
func Run(ctx context.Context, store Store, opts Options) error {
	p := tea.NewProgram(NewMainModel(ctx, store, opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
