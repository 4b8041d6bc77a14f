package entries

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

type AddEntryMsg struct{}

type DeleteEntryMsg struct {
	Entry models.HabitEntry
}

type OpenHistoryMsg struct {
	HabitName string
}

type DeleteAllMsg struct {
	HabitName string
}

type Item struct {
	Entry    models.HabitEntry
	loc      *time.Location
	showDate bool
}

func (i Item) Title() string { return i.Entry.HabitName }

func (i Item) Description() string {
	at := i.Entry.FormattedTime(i.loc)
	if !i.showDate {
		return fmt.Sprintf("at %s  #%d", at, i.Entry.ID)
	}
	date := i.Entry.Date
	if t, err := models.ParseDate(date); err == nil {
		date = t.Format(constants.DisplayDateFormat)
	}
	return fmt.Sprintf("%s at %s  #%d", date, at, i.Entry.ID)
}

func (i Item) FilterValue() string { return i.Entry.HabitName }

type KeyMap struct {
	Add       key.Binding
	Delete    key.Binding
	History   key.Binding
	DeleteAll key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		History: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "history"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
	}
}

// Model lists entries. In history mode every item shows its date and the
// list offers deleting all entries of the habit instead of opening history.
type Model struct {
	list    list.Model
	keys    KeyMap
	history bool
	empty   string
}

func New(title string, history bool, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	var extra []key.Binding
	if history {
		extra = []key.Binding{keys.Delete, keys.DeleteAll}
	} else {
		extra = []key.Binding{keys.Add, keys.Delete, keys.History}
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	empty := "\n  Nothing logged yet today.\n  Press 'a' to add a habit."
	if history {
		empty = "\n  No entries for this habit."
	}

	return Model{list: l, keys: keys, history: history, empty: empty}
}

// SetEntries replaces the listed entries, keeping the cursor in range.
func (m *Model) SetEntries(entries []models.HabitEntry, loc *time.Location) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e, loc: loc, showDate: m.history}
	}
	m.list.SetItems(items)
	if idx := m.list.Index(); idx >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

func (m *Model) SetTitle(title string) {
	m.list.Title = title
}

func (m Model) Len() int {
	return len(m.list.Items())
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (models.HabitEntry, bool) {
	i, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.HabitEntry{}, false
	}
	return i.Entry, true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add) && !m.history:
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{Entry: e} }
			}
			return m, nil
		case key.Matches(msg, m.keys.History) && !m.history:
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenHistoryMsg{HabitName: e.HabitName} }
			}
			return m, nil
		case key.Matches(msg, m.keys.DeleteAll) && m.history:
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteAllMsg{HabitName: e.HabitName} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.list.Title + "\n" + m.empty
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
