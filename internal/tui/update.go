package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlog/internal/tui/components/entries"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(msg.Width, msg.Height)
		return m, nil
	}
	if _, ok := msg.(dayChangedMsg); ok {
		m.reload()
		return m, m.waitForNextDay()
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete, StateConfirmDeleteAll:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case entries.AddEntryMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm, m.settings.DarkMode)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()

	case entries.DeleteEntryMsg:
		m.pendingDelete = msg.Entry
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case entries.DeleteAllMsg:
		m.historyName = msg.HabitName
		m.previousState = m.state
		m.state = StateConfirmDeleteAll
		return m, nil

	case entries.OpenHistoryMsg:
		m.historyName = msg.HabitName
		m.reload()
		m.state = StateHistory
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.today, cmd = m.today.Update(msg)
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	case StateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Back):
		if m.state == StateHistory {
			m.historyName = ""
			m.state = StateToday
			m.status = ""
		}
		return true, nil
	case key.Matches(msg, m.keys.Tab):
		m.switchTab(1)
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.switchTab(-1)
		return true, nil
	}
	return false, nil
}

// switchTab cycles through the tabs and reloads, so entries written by
// another process show up. History is a sub view of Today and leaves to the
// neighbouring tab.
func (m *Model) switchTab(step int) {
	current := m.state
	if current == StateHistory {
		m.historyName = ""
		current = StateToday
	}
	n := len(tabTitles)
	m.state = SessionState((int(current) + step + n) % n)
	m.status = ""
	m.reload()
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.addHabit(m.habitForm.Name())
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) addHabit(name string) {
	entry, err := m.tracker.Add(name)
	if err != nil {
		m.fail("save your habit", err)
		return
	}
	m.status = fmt.Sprintf("Logged %s", entry.HabitName)
	m.reload()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.state == StateConfirmDelete {
			m.deleteEntry()
		} else {
			m.deleteAll()
		}
	case "n", "N", "esc":
		m.state = m.previousState
	}
	return m, nil
}

func (m *Model) deleteEntry() {
	m.state = m.previousState
	n, err := m.tracker.Delete(m.pendingDelete.ID)
	if err != nil {
		m.fail("delete the entry", err)
		return
	}
	if n == 0 {
		m.status = "That entry was already deleted."
	} else {
		m.status = fmt.Sprintf("Deleted %s", m.pendingDelete.HabitName)
	}
	m.reload()
	if m.state == StateHistory && m.history.Len() == 0 {
		m.historyName = ""
		m.state = StateToday
	}
}

func (m *Model) deleteAll() {
	name := m.historyName
	n, err := m.tracker.DeleteHabit(name)
	if err != nil {
		m.state = m.previousState
		m.fail("delete the habit", err)
		return
	}
	m.status = fmt.Sprintf("Deleted %d entries of %s", n, name)
	m.historyName = ""
	m.state = StateToday
	m.reload()
}
