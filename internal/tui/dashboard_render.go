package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/streak"
	"github.com/akyairhashvil/zenith/internal/util"
)

// stripIndent lines the check-in strip up under the goal marker.
const stripIndent = 4

var paceOrder = []calendar.PaceStatus{
	calendar.PaceExceeded,
	calendar.PaceAhead,
	calendar.PaceOnTrack,
	calendar.PaceBehind,
	calendar.PacePreparing,
}

func (m DashboardModel) View() string {
	sections := []string{m.renderHeader()}
	if m.viewMode == ViewShared {
		sections = append(sections, m.theme.Banner.Render("VIEW MODE  shared plan, read only  [i] import to mine  [esc] back"))
	}
	sections = append(sections, m.renderMonthBar())
	if m.modal.IsOpen() {
		sections = append(sections, m.renderModal())
	} else {
		sections = append(sections, m.renderGoals())
		if detail := m.renderDetail(); detail != "" {
			sections = append(sections, detail)
		}
	}
	sections = append(sections, m.renderFooter())
	return m.theme.Base.Render(strings.Join(sections, "\n\n"))
}

func (m DashboardModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m DashboardModel) titleWidth() int {
	if m.width <= 0 {
		return config.TargetTitleWidth
	}
	return util.Clamp(m.width-70, config.MinTitleWidth, config.TargetTitleWidth)
}

func (m DashboardModel) renderHeader() string {
	s := m.stats
	title := m.theme.Header.Render(fmt.Sprintf("ZENITH %d", s.Year)) + "  " + m.theme.Dim.Render("v"+VersionLabel())
	info := fmt.Sprintf("Today %s  |  Day %d of %d  |  %d days left", s.Today, s.DaysElapsed, s.TotalDays, s.DaysRemaining)
	bar := m.progress.ViewAs(s.YearProgress/100) + " " + m.theme.Highlight.Render(calendar.FormatPercent(s.YearProgress))
	return lipgloss.JoinVertical(lipgloss.Left, title, info, bar, m.renderSummary())
}

func (m DashboardModel) renderSummary() string {
	goals := m.currentGoals()
	if len(goals) == 0 {
		return m.theme.Dim.Render("No key results yet")
	}
	var sum float64
	counts := make(map[calendar.PaceStatus]int)
	for _, g := range goals {
		rate := g.AchievementRate()
		sum += rate
		counts[calendar.Pace(rate, m.stats.YearProgress)]++
	}
	parts := []string{
		fmt.Sprintf("%d key results", len(goals)),
		"avg " + calendar.FormatPercent(sum/float64(len(goals))),
	}
	for _, p := range paceOrder {
		if n := counts[p]; n > 0 {
			parts = append(parts, m.theme.Pace(p).Render(fmt.Sprintf("%s %s %d", p.Icon(), p.Label(), n)))
		}
	}
	return strings.Join(parts, "  |  ")
}

func (m DashboardModel) renderMonthBar() string {
	label := fmt.Sprintf("%d-%02d", m.year, m.month+1)
	bar := m.theme.Dim.Render("[ ◀") + " " + m.theme.Focused.Render(label) + " " + m.theme.Dim.Render("▶ ]")
	if cell, ok := m.selectedCell(); ok {
		bar += fmt.Sprintf("   selected %s (%s)", cell.ISO, cell.WeekDay)
	}
	if !m.filter.Empty() {
		bar += "   " + m.theme.Highlight.Render("filter: "+m.filterRaw)
	}
	return bar
}

func (m DashboardModel) renderGoals() string {
	goals := m.visibleGoals()
	if len(goals) == 0 {
		switch {
		case !m.filter.Empty():
			return m.theme.Dim.Render("No goals match the filter. [esc] clears it.")
		case m.viewMode == ViewShared:
			return m.theme.Dim.Render("The shared plan is empty.")
		default:
			return m.theme.Dim.Render(fmt.Sprintf("No goals for %d yet. Press [n] to add one.", m.year))
		}
	}

	cells := m.monthCells()
	compact := m.compact()
	titleW := m.titleWidth()

	var lines []string
	if !compact {
		lines = append(lines, m.renderDayHeader(cells))
	}
	if m.offset > 0 {
		lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
	}
	end := min(len(goals), m.offset+config.MaxVisibleGoals)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderGoalRow(goals[i], i == m.cursor, cells, compact, titleW)...)
	}
	if end < len(goals) {
		lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  ↓ %d more", len(goals)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderDayHeader(cells []models.DayCell) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", stripIndent))
	for _, c := range cells {
		digit := strconv.Itoa(c.Day % 10)
		style := m.theme.Dim
		switch {
		case c.ISO == m.stats.TodayISO:
			style = m.theme.Today
		case c.IsWeekend:
			style = m.theme.Weekend
		}
		b.WriteString(" " + style.Render(digit))
	}
	return b.String()
}

func (m DashboardModel) renderGoalRow(g models.Goal, selected bool, cells []models.DayCell, compact bool, titleW int) []string {
	marker := "  "
	titleStyle := m.theme.Goal
	if selected {
		marker = m.theme.Focused.Render("▸ ")
		titleStyle = m.theme.Focused
	}
	rate := g.AchievementRate()
	pace := calendar.Pace(rate, m.stats.YearProgress)
	run := streak.Calculate(g.Logs, m.stats.TodayISO)

	cols := []string{
		m.theme.Category(g.Category).Render("[" + g.Category.Label() + "]"),
		padRight(g.KRNumber, config.MaxKRLength/2),
		titleStyle.Render(padRight(truncate(g.Title, titleW), titleW)),
		FormatProgress(g.Actual, g.Target, g.Unit),
		calendar.FormatPercent(rate),
		m.theme.Pace(pace).Render(pace.Icon() + " " + pace.Label()),
	}
	if compact {
		if cell, ok := m.selectedCell(); ok && g.HasLog(cell.ISO) {
			cols = append(cols, m.theme.Checked.Render("●"))
		}
		return []string{marker + strings.Join(cols, " ")}
	}
	cols = append(cols, m.theme.Dim.Render(FormatStreak(run)))
	return []string{
		marker + strings.Join(cols, " "),
		strings.Repeat(" ", stripIndent) + m.renderStrip(g, cells, selected),
	}
}

// renderStrip draws one mark per day of the month: ● checked, · open.
func (m DashboardModel) renderStrip(g models.Goal, cells []models.DayCell, selected bool) string {
	logged := make(map[string]bool, len(g.Logs))
	for _, l := range g.Logs {
		logged[l.Date] = true
	}
	var b strings.Builder
	for i, c := range cells {
		glyph := "·"
		style := m.theme.Dim
		if c.IsWeekend {
			style = m.theme.Weekend
		}
		if logged[c.ISO] {
			glyph = "●"
			style = m.theme.Checked
		}
		if selected && i == m.day {
			style = style.Inherit(m.theme.Selected)
		}
		b.WriteString(" " + style.Render(glyph))
	}
	return b.String()
}

func (m DashboardModel) renderDetail() string {
	g, ok := m.selectedGoal()
	if !ok {
		return ""
	}
	cell, ok := m.selectedCell()
	if !ok {
		return ""
	}
	status := m.theme.Dim.Render("open")
	if g.HasLog(cell.ISO) {
		status = m.theme.Checked.Render("checked in")
	}
	lines := []string{
		m.theme.Focused.Render(strings.TrimSpace(g.KRNumber+" "+g.Title)) + "  " + m.theme.Category(g.Category).Render(g.Category.Label()),
		fmt.Sprintf("Remaining %s %s  |  %s: %s", FormatAmount(g.Remaining()), g.Unit, cell.ISO, status),
	}
	if g.Description != "" {
		width := 72
		if m.width > 0 {
			width = max(m.width-8, config.MinColumnWidth)
		}
		lines = append(lines, m.theme.Dim.Render(truncate(g.Description, width)))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderFooter() string {
	help := m.keys.HelpForView(m.viewMode)
	if m.width > 0 {
		help = truncate(help, max(m.width-4, config.MinColumnWidth))
	}
	lines := []string{m.theme.Dim.Render(help)}
	if m.Message != "" {
		style := m.theme.Highlight
		if m.err != nil {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(m.Message))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderModal() string {
	var body string
	switch s := m.modal.Current().(type) {
	case *GoalFormState:
		body = m.renderGoalForm(s)
	case *ConfirmDeleteState:
		body = fmt.Sprintf("Delete %q and all its check-ins?\n\n[y] delete  [n] cancel", s.Title)
	case *ThemePickerState:
		lines := []string{m.theme.Header.Render("Theme"), ""}
		for i, name := range s.names {
			prefix := "  "
			if i == s.cursor {
				prefix = "▸ "
			}
			lines = append(lines, prefix+Themes[name].Name)
		}
		lines = append(lines, "", m.theme.Dim.Render("[enter] apply  [esc] cancel"))
		body = strings.Join(lines, "\n")
	case *FilterState:
		body = strings.Join([]string{
			m.theme.Header.Render("Filter"),
			"",
			s.input.View(),
			"",
			m.theme.Dim.Render("cat:<category> kr:<kr> pace:<ahead|behind|on_track|exceeded|preparing> words"),
			m.theme.Dim.Render("[enter] keep  [esc] clear"),
		}, "\n")
	case *ImportConfirmState:
		body = fmt.Sprintf("Replace your %d plan (%d goals) with the %d shared goals?\n\n[y] import  [n] cancel",
			m.year, len(m.goals), len(s.Goals))
	}
	return m.theme.Input.Render(body)
}

func (m DashboardModel) renderGoalForm(s *GoalFormState) string {
	title := "New key result"
	if s.GoalID != "" {
		title = "Edit key result"
	}
	lines := []string{m.theme.Header.Render(title), ""}
	for i, f := range goalFormFields {
		label := padRight(f.label, 12)
		if i == s.focus {
			label = m.theme.Focused.Render(label)
		}
		lines = append(lines, label+s.inputs[i].View())
	}
	if s.err != "" {
		lines = append(lines, "", m.theme.Error.Render(s.err))
	}
	lines = append(lines, "", m.theme.Dim.Render("[tab] next  [enter] save  [esc] cancel"))
	return strings.Join(lines, "\n")
}
