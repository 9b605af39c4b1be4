package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/models"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Goal      lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Banner    lipgloss.Style

	Checked  lipgloss.Style
	Weekend  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style

	PaceAhead    lipgloss.Style
	PaceOnTrack  lipgloss.Style
	PaceBehind   lipgloss.Style
	PaceExceeded lipgloss.Style
	PacePending  lipgloss.Style

	Categories map[models.Category]lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    fg("205").Bold(true),
		Goal:      fg("252"),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(56),
		Focused:   fg("205").Bold(true),
		Dim:       fg("240"),
		Highlight: fg("63"),
		Error:     fg("9").Bold(true),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Checked:   fg("42").Bold(true),
		Weekend:   fg("244"),
		Today:     fg("214").Underline(true),
		Selected:  lipgloss.NewStyle().Reverse(true),

		PaceAhead:    fg("81").Bold(true),
		PaceOnTrack:  fg("42"),
		PaceBehind:   fg("9").Bold(true),
		PaceExceeded: fg("214").Bold(true),
		PacePending:  fg("244"),

		Categories: map[models.Category]lipgloss.Style{
			models.CategoryGrowth:  fg("39"),
			models.CategoryHealth:  fg("42"),
			models.CategoryFinance: fg("220"),
			models.CategoryCareer:  fg("170"),
			models.CategorySocial:  fg("211"),
			models.CategoryOther:   fg("245"),
		},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    fg("50").Bold(true),
		Goal:      fg("255"),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(56),
		Focused:   fg("212").Bold(true),
		Dim:       fg("60"),
		Highlight: fg("62"),
		Error:     fg("203").Bold(true),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")).Bold(true).Padding(0, 1),
		Checked:   fg("120").Bold(true),
		Weekend:   fg("60"),
		Today:     fg("228").Underline(true),
		Selected:  lipgloss.NewStyle().Reverse(true),

		PaceAhead:    fg("117").Bold(true),
		PaceOnTrack:  fg("120"),
		PaceBehind:   fg("210").Bold(true),
		PaceExceeded: fg("215").Bold(true),
		PacePending:  fg("60"),

		Categories: map[models.Category]lipgloss.Style{
			models.CategoryGrowth:  fg("117"),
			models.CategoryHealth:  fg("120"),
			models.CategoryFinance: fg("228"),
			models.CategoryCareer:  fg("141"),
			models.CategorySocial:  fg("212"),
			models.CategoryOther:   fg("103"),
		},
	},
	"paper": {
		Name:      "Paper",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("245"),
		Header:    fg("25").Bold(true),
		Goal:      fg("236"),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("25")).Padding(0, 1).Width(56),
		Focused:   fg("25").Bold(true),
		Dim:       fg("246"),
		Highlight: fg("31"),
		Error:     fg("124").Bold(true),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
		Checked:   fg("28").Bold(true),
		Weekend:   fg("248"),
		Today:     fg("166").Underline(true),
		Selected:  lipgloss.NewStyle().Reverse(true),

		PaceAhead:    fg("25").Bold(true),
		PaceOnTrack:  fg("28"),
		PaceBehind:   fg("124").Bold(true),
		PaceExceeded: fg("166").Bold(true),
		PacePending:  fg("246"),

		Categories: map[models.Category]lipgloss.Style{
			models.CategoryGrowth:  fg("25"),
			models.CategoryHealth:  fg("28"),
			models.CategoryFinance: fg("136"),
			models.CategoryCareer:  fg("90"),
			models.CategorySocial:  fg("161"),
			models.CategoryOther:   fg("242"),
		},
	},
}

// ResolveTheme looks a theme up by key or display name, falling back to the
// default theme.
func ResolveTheme(name string) Theme {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := Themes[key]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames lists theme keys with the default first.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for k := range Themes {
		if k != "default" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

func (t Theme) Category(c models.Category) lipgloss.Style {
	if s, ok := t.Categories[c]; ok {
		return s
	}
	return t.Dim
}

func (t Theme) Pace(p calendar.PaceStatus) lipgloss.Style {
	switch p {
	case calendar.PaceAhead:
		return t.PaceAhead
	case calendar.PaceBehind:
		return t.PaceBehind
	case calendar.PaceExceeded:
		return t.PaceExceeded
	case calendar.PacePreparing:
		return t.PacePending
	default:
		return t.PaceOnTrack
	}
}
