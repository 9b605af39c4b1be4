package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/zenith/internal/models"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalGoalCreate
	ModalGoalEdit
	ModalGoalDelete
	ModalTheme
	ModalFilter
	ModalImport
)

type ModalState interface {
	Type() ModalType
}

type ConfirmDeleteState struct {
	GoalID string
	Title  string
}

func (s *ConfirmDeleteState) Type() ModalType { return ModalGoalDelete }

type ThemePickerState struct {
	names  []string
	cursor int
}

func newThemePicker(current string) *ThemePickerState {
	s := &ThemePickerState{names: ThemeNames()}
	for i, n := range s.names {
		if Themes[n].Name == current {
			s.cursor = i
		}
	}
	return s
}

func (s *ThemePickerState) Type() ModalType { return ModalTheme }

type FilterState struct {
	input textinput.Model
}

func newFilterState(current string) *FilterState {
	ti := textinput.New()
	ti.Placeholder = "cat:health kr:kr1 pace:behind words"
	ti.CharLimit = 80
	ti.Width = 48
	ti.SetValue(current)
	ti.Focus()
	return &FilterState{input: ti}
}

func (s *FilterState) Type() ModalType { return ModalFilter }

// ImportConfirmState asks before a shared plan overwrites the local one.
type ImportConfirmState struct {
	Goals []models.Goal
}

func (s *ImportConfirmState) Type() ModalType { return ModalImport }

// ModalManager tracks the open modal, if any.
type ModalManager struct {
	current ModalState
}

func (m *ModalManager) Open(s ModalState) {
	m.current = s
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}
