package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/util"
)

const (
	fieldKR = iota
	fieldTitle
	fieldCategory
	fieldUnit
	fieldTarget
	fieldActual
	fieldDescription
	fieldCount
)

var goalFormFields = [fieldCount]struct {
	label       string
	placeholder string
	limit       int
}{
	{"KR", "KR1", config.MaxKRLength},
	{"Title", "Read 24 books", config.MaxTitleLength},
	{"Category", "GROWTH HEALTH FINANCE CAREER SOCIAL OTHER", 16},
	{"Unit", "books", config.MaxUnitLength},
	{"Target", "24", 12},
	{"Actual", "0", 12},
	{"Description", "", config.MaxDescriptionLength},
}

// GoalFormState backs both the create and the edit modal.
type GoalFormState struct {
	GoalID string
	inputs []textinput.Model
	focus  int
	err    string
}

func newGoalForm(g *models.Goal) *GoalFormState {
	s := &GoalFormState{inputs: make([]textinput.Model, fieldCount)}
	for i, f := range goalFormFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = f.limit
		ti.Width = 32
		s.inputs[i] = ti
	}
	if g == nil {
		s.inputs[fieldCategory].SetValue(models.CategoryGrowth.Key())
		s.inputs[fieldActual].SetValue("0")
	} else {
		s.GoalID = g.ID
		s.inputs[fieldKR].SetValue(g.KRNumber)
		s.inputs[fieldTitle].SetValue(g.Title)
		s.inputs[fieldCategory].SetValue(g.Category.Key())
		s.inputs[fieldUnit].SetValue(g.Unit)
		s.inputs[fieldTarget].SetValue(FormatAmount(g.Target))
		s.inputs[fieldActual].SetValue(FormatAmount(g.Actual))
		s.inputs[fieldDescription].SetValue(g.Description)
	}
	s.setFocus(fieldTitle)
	return s
}

func (s *GoalFormState) Type() ModalType {
	if s.GoalID == "" {
		return ModalGoalCreate
	}
	return ModalGoalEdit
}

func (s *GoalFormState) setFocus(i int) {
	s.focus = util.Wrap(i, len(s.inputs))
	for idx := range s.inputs {
		if idx == s.focus {
			s.inputs[idx].Focus()
		} else {
			s.inputs[idx].Blur()
		}
	}
}

func (s *GoalFormState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func parseAmount(raw, field string, allowZero bool) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" && allowZero {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !util.Finite(v) {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if v < 0 || (v == 0 && !allowZero) {
		return 0, fmt.Errorf("%s must be positive", field)
	}
	return v, nil
}

// Input converts the form into a store input.
func (s *GoalFormState) Input() (database.GoalInput, error) {
	val := func(i int) string { return strings.TrimSpace(s.inputs[i].Value()) }
	if val(fieldTitle) == "" {
		return database.GoalInput{}, errors.New("title is required")
	}
	cat, err := models.ParseCategory(val(fieldCategory))
	if err != nil {
		return database.GoalInput{}, fmt.Errorf("unknown category %q", val(fieldCategory))
	}
	target, err := parseAmount(val(fieldTarget), "target", false)
	if err != nil {
		return database.GoalInput{}, err
	}
	actual, err := parseAmount(val(fieldActual), "actual", true)
	if err != nil {
		return database.GoalInput{}, err
	}
	return database.GoalInput{
		Title:       val(fieldTitle),
		Category:    cat,
		KRNumber:    val(fieldKR),
		Target:      target,
		Actual:      actual,
		Unit:        val(fieldUnit),
		Description: val(fieldDescription),
	}, nil
}

func (m DashboardModel) handleModalInputGoalForm(s *GoalFormState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal.Close()
		return m, nil
	case "tab", "down":
		s.setFocus(s.focus + 1)
		return m, nil
	case "shift+tab", "up":
		s.setFocus(s.focus - 1)
		return m, nil
	case "enter":
		return m.submitGoalForm(s)
	}
	return m, s.update(msg)
}

func (m DashboardModel) submitGoalForm(s *GoalFormState) (DashboardModel, tea.Cmd) {
	in, err := s.Input()
	if err != nil {
		s.err = err.Error()
		return m, nil
	}
	var saved models.Goal
	if s.GoalID == "" {
		saved, err = m.store.CreateGoal(m.ctx, m.year, in)
	} else {
		saved, err = m.store.UpdateGoal(m.ctx, s.GoalID, in)
	}
	if err != nil {
		s.err = err.Error()
		return m, nil
	}
	m.modal.Close()
	m.refreshData()
	m.focusGoal(saved.ID)
	if s.GoalID == "" {
		m.setStatus(fmt.Sprintf("Added %q", saved.Title))
	} else {
		m.setStatus(fmt.Sprintf("Updated %q", saved.Title))
	}
	return m, nil
}
