package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlog/internal/constants"
	apperrors "github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/stats"
	"github.com/julianstephens/habitlog/internal/tracker"
	"github.com/julianstephens/habitlog/internal/tui/components/entries"
)

type SessionState int

// The tab states come first, in tab order.
const (
	StateToday SessionState = iota
	StateCalendar
	StateStats
	StateProfile
	StateHistory
	StateAddHabit
	StateConfirmDelete
	StateConfirmDeleteAll
)

var tabTitles = []string{"Today", "Calendar", "Stats", "Profile"}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// rows taken by tabs, help and status
	chromeHeight = 6
)

// Model never keeps entries between mutations: every change is followed by a
// reload from the tracker.
type Model struct {
	tracker       *tracker.Tracker
	settings      models.Settings
	styles        styles
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	today         entries.Model
	history       entries.Model
	calendar      viewport.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	summary       stats.Summary
	groups        []stats.DayGroup
	historyName   string
	pendingDelete models.HabitEntry
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(tr *tracker.Tracker, settings models.Settings) Model {
	m := Model{
		tracker:  tr,
		settings: settings,
		styles:   newStyles(settings.DarkMode),
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		today:    entries.New("Today", false, defaultWidth, defaultHeight-chromeHeight),
		history:  entries.New("History", true, defaultWidth, defaultHeight-chromeHeight),
		calendar: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.reload()
	return m
}

// dayChangedMsg arrives at midnight in the tracker's zone.
type dayChangedMsg struct{}

func (m Model) Init() tea.Cmd {
	return m.waitForNextDay()
}

func (m Model) untilMidnight() time.Duration {
	now := m.tracker.Now()
	y, mo, d := now.Date()
	return time.Date(y, mo, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}

func (m Model) waitForNextDay() tea.Cmd {
	return tea.Tick(m.untilMidnight(), func(time.Time) tea.Msg {
		return dayChangedMsg{}
	})
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// reload re-reads every view from the tracker. Failures become the status
// line; views that loaded keep their fresh data.
func (m *Model) reload() {
	loc := m.tracker.Location()

	todays, err := m.tracker.Today()
	if err != nil {
		m.fail("load today's habits", err)
	} else {
		m.today.SetEntries(todays, loc)
	}

	groups, err := m.tracker.Calendar(constants.CalendarWindow)
	if err != nil {
		m.fail("load the calendar", err)
	} else {
		m.groups = groups
		m.calendar.SetContent(m.renderCalendar())
	}

	summary, err := m.tracker.Statistics()
	if err != nil {
		m.fail("load your statistics", err)
	} else {
		m.summary = summary
	}

	if m.historyName != "" {
		hist, err := m.tracker.History(m.historyName)
		if err != nil {
			m.fail("load the history", err)
		} else {
			m.history.SetEntries(hist, loc)
			m.history.SetTitle(fmt.Sprintf("%s (%d entries)", m.historyName, len(hist)))
		}
	}
}

// fail logs err and shows the notice for action, a verb phrase such as
// "delete the entry".
func (m *Model) fail(action string, err error) {
	logger.Error("TUI action failed", "action", action, "error", err)
	m.status = apperrors.Notice(action, err)
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	h := max(height-chromeHeight, 1)
	m.today.SetSize(width, h)
	m.history.SetSize(width, h)
	m.calendar.Width = width
	m.calendar.Height = h
	m.help.Width = width
}
