package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/snapshot"
	"github.com/akyairhashvil/zenith/internal/util"
)

// View modes
const (
	ViewOwn    = 0
	ViewShared = 1 // read-only snapshot from a share link
)

// Options configures a dashboard. Zero values fall back to the defaults in
// the config package.
type Options struct {
	Year      int
	ShareBase string
	Theme     string
	// SharePayload is a share URL, "#data=" fragment or bare payload to open
	// in view mode.
	SharePayload string
	ReportDir    string
	Now          func() time.Time
	Clipboard    func(string) error
}

type DashboardModel struct {
	ctx       context.Context
	store     Store
	year      int
	shareBase string
	reportDir string
	now       func() time.Time
	clipboard func(string) error

	goals     []models.Goal
	shared    []models.Goal
	viewMode  int
	filter    util.SearchQuery
	filterRaw string

	stats  models.YearStats
	month  int
	day    int
	cursor int
	offset int

	progress progress.Model
	theme    Theme
	keys     *HandlerRegistry
	modal    ModalManager

	width   int
	height  int
	Message string
	err     error
	loadErr error
}

func NewDashboardModel(ctx context.Context, store Store, opts Options) DashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Year == 0 {
		opts.Year = config.DefaultTargetYear
	}
	if opts.ShareBase == "" {
		opts.ShareBase = config.DefaultShareBaseURL
	}
	if opts.ReportDir == "" {
		opts.ReportDir = util.ReportsDir(config.AppName)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	themeName := opts.Theme
	if saved, ok := store.GetSetting(ctx, database.SettingTheme); ok && saved != "" {
		themeName = saved
	}

	m := DashboardModel{
		ctx:       ctx,
		store:     store,
		year:      opts.Year,
		shareBase: opts.ShareBase,
		reportDir: opts.ReportDir,
		now:       opts.Now,
		clipboard: opts.Clipboard,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:     ResolveTheme(themeName),
		keys:      newKeyRegistry(),
	}
	m.progress.Width = config.ProgressBarWidth

	now := m.now()
	m.stats = calendar.ComputeYearStats(m.year, now)
	m.month = int(now.Month()) - 1
	if v, ok := store.GetSetting(ctx, database.SettingLastMonth); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < 12 {
			m.month = n
		}
	}
	m.day = m.todayIndex()

	if opts.SharePayload != "" {
		goals, err := snapshot.DecodeURL(opts.SharePayload, now)
		if err != nil {
			logging.L().Warn("shared snapshot rejected", zap.Error(err))
			m.setStatusError("Shared link could not be read; showing your own plan")
		} else {
			m.shared = goals
			m.viewMode = ViewShared
		}
	}

	goals, err := store.ListGoals(ctx, m.year)
	if err != nil {
		m.loadErr = err
		m.setStatusError(fmt.Sprintf("Error loading goals: %v", err))
	}
	m.goals = goals
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) statsNow() models.YearStats {
	return calendar.ComputeYearStats(m.year, m.now())
}

func (m *DashboardModel) refreshData() {
	m.stats = m.statsNow()
	goals, err := m.store.ListGoals(m.ctx, m.year)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error loading goals: %v", err))
		return
	}
	m.goals = goals
	m.clampCursor()
}

func (m *DashboardModel) setStatus(msg string) {
	m.Message = msg
	m.err = nil
}

func (m *DashboardModel) setStatusError(msg string) {
	m.Message = msg
	m.err = errors.New(msg)
}

func (m *DashboardModel) clearStatus() {
	m.Message = ""
	m.err = nil
}

// currentGoals is the unfiltered list for the active view.
func (m DashboardModel) currentGoals() []models.Goal {
	if m.viewMode == ViewShared {
		return m.shared
	}
	return m.goals
}

func (m DashboardModel) visibleGoals() []models.Goal {
	all := m.currentGoals()
	if m.filter.Empty() {
		return all
	}
	out := make([]models.Goal, 0, len(all))
	for _, g := range all {
		if matchesFilter(m.filter, g, m.stats.YearProgress) {
			out = append(out, g)
		}
	}
	return out
}

func matchesFilter(q util.SearchQuery, g models.Goal, yearProgress float64) bool {
	if !util.AnyOf(q.Categories, g.Category.Key()) {
		return false
	}
	if !util.AnyOf(q.KRs, g.KRNumber) {
		return false
	}
	if !util.AnyOf(q.Pace, calendar.Pace(g.AchievementRate(), yearProgress).String()) {
		return false
	}
	return q.MatchText(g.KRNumber + " " + g.Title + " " + g.Unit + " " + g.Description)
}

func (m DashboardModel) selectedGoal() (models.Goal, bool) {
	goals := m.visibleGoals()
	if m.cursor < 0 || m.cursor >= len(goals) {
		return models.Goal{}, false
	}
	return goals[m.cursor], true
}

func (m DashboardModel) monthCells() []models.DayCell {
	return calendar.DaysInMonth(m.year, m.month)
}

func (m DashboardModel) selectedCell() (models.DayCell, bool) {
	cells := m.monthCells()
	if len(cells) == 0 {
		return models.DayCell{}, false
	}
	return cells[util.Clamp(m.day, 0, len(cells)-1)], true
}

// todayIndex is today's position in the selected month, or 0 when today is
// in another month.
func (m DashboardModel) todayIndex() int {
	for i, c := range m.monthCells() {
		if c.ISO == m.stats.TodayISO {
			return i
		}
	}
	return 0
}

func (m *DashboardModel) clampCursor() {
	n := len(m.visibleGoals())
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, n-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisibleGoals {
		m.offset = m.cursor - config.MaxVisibleGoals + 1
	}
}

func (m *DashboardModel) focusGoal(id string) {
	for i, g := range m.visibleGoals() {
		if g.ID == id {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
}

func (m *DashboardModel) replaceGoal(updated models.Goal) {
	for i := range m.goals {
		if m.goals[i].ID == updated.ID {
			m.goals[i] = updated
			return
		}
	}
}

func (m *DashboardModel) setMonth(month int) {
	m.month = util.Wrap(month, 12)
	if n := len(m.monthCells()); n > 0 {
		m.day = util.Clamp(m.day, 0, n-1)
	}
	if err := m.store.SetSetting(m.ctx, database.SettingLastMonth, strconv.Itoa(m.month)); err != nil {
		util.LogError("save selected month", err)
	}
}
