package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.styles.doc.Render(m.today.View())
	case StateHistory:
		content = m.styles.doc.Render(m.history.View())
	case StateCalendar:
		content = m.styles.doc.Render(m.calendar.View())
	case StateStats:
		content = m.styles.doc.Render(m.viewStats())
	case StateProfile:
		content = m.styles.doc.Render(m.viewProfile())
	case StateAddHabit:
		content = m.styles.doc.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirm(
			fmt.Sprintf("Delete %s logged at %s?", m.pendingDelete.HabitName, m.pendingDelete.FormattedTime(m.tracker.Location())),
			"This cannot be undone.")
	case StateConfirmDeleteAll:
		content = m.viewConfirm(
			fmt.Sprintf("Delete ALL entries of %s?", m.historyName),
			"Every entry for this habit will be removed.")
	}

	var status string
	if m.status != "" {
		status = m.styles.status.Render(" " + m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active > StateProfile {
		// sub views and dialogs highlight the tab they were opened from
		active = m.previousState
		if m.state == StateHistory || active > StateProfile {
			active = StateToday
		}
	}

	var tabs []string
	for i, title := range tabTitles {
		if SessionState(i) == active {
			tabs = append(tabs, m.styles.activeTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.inactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirm(question, detail string) string {
	return lipgloss.Place(m.width, max(m.height-4, 1),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.danger.Render(question),
			m.styles.warning.Render(detail),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) renderCalendar() string {
	if len(m.groups) == 0 {
		return "No habits logged yet."
	}

	loc := m.tracker.Location()
	var b strings.Builder
	for i, g := range m.groups {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := g.Date
		if t, err := models.ParseDate(g.Date); err == nil {
			heading = t.Format(constants.CalendarDateFormat)
		}
		b.WriteString(m.styles.header.Render(heading))
		b.WriteString("\n")
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "  %s  %s\n", m.styles.muted.Render(e.FormattedTime(loc)), e.HabitName)
		}
	}
	return b.String()
}

func (m Model) viewStats() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Statistics"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total entries   %d\n", s.Total)
	fmt.Fprintf(&b, "Unique habits   %d\n", s.UniqueHabits)
	if s.MostFrequent != nil {
		fmt.Fprintf(&b, "Most frequent   %s (%d)\n", s.MostFrequent.HabitName, s.MostFrequent.Count)
	}
	if s.LeastFrequent != nil {
		fmt.Fprintf(&b, "Least frequent  %s (%d)\n", s.LeastFrequent.HabitName, s.LeastFrequent.Count)
	}

	if len(s.Counts) == 0 {
		b.WriteString("\nNo habits logged yet.")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.styles.header.Render("Habit Breakdown"))
	b.WriteString("\n\n")
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(max(m.width/3, 10)), progress.WithoutPercentage())
	for _, hc := range s.Counts {
		pct := stats.Percentage(hc.Count, s.Total)
		fmt.Fprintf(&b, "%-20s %s %3d%%\n", hc.HabitName, bar.ViewAs(float64(pct)/100), pct)
	}
	return b.String()
}

func (m Model) viewProfile() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Profile"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Current streak  %d day(s)\n", s.Streak)
	fmt.Fprintf(&b, "Active days     %d\n", s.ActiveDays)
	fmt.Fprintf(&b, "Total entries   %d\n", s.Total)
	fmt.Fprintf(&b, "Unique habits   %d\n\n", s.UniqueHabits)
	b.WriteString(m.styles.quote.Render(constants.ProfileQuote))
	return b.String()
}
