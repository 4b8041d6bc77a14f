// Package tracker coordinates the entry store, the aggregator and feedback.
// It keeps no copy of the entries: every view is recomputed from a fresh
// store read.
package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	apperrors "github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/notifier"
	"github.com/julianstephens/habitlog/internal/stats"
	"github.com/julianstephens/habitlog/internal/storage"
)

type Tracker struct {
	store    storage.Provider
	now      func() time.Time
	loc      *time.Location
	notifier notifier.Notifier
}

type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the zone used to compute entry dates and "today".
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

func WithNotifier(n notifier.Notifier) Option {
	return func(t *Tracker) {
		if n != nil {
			t.notifier = n
		}
	}
}

func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		now:      time.Now,
		loc:      time.Local,
		notifier: notifier.Nop{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) clock() time.Time {
	return t.now().In(t.loc)
}

// Location is the zone entry dates are computed in.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Now is the current instant in the tracker's zone.
func (t *Tracker) Now() time.Time {
	return t.clock()
}

// TodayDate is the current date in the tracker's zone.
func (t *Tracker) TodayDate() string {
	return t.clock().Format(constants.DateFormat)
}

// Add records name as done now.
func (t *Tracker) Add(name string) (models.HabitEntry, error) {
	entry, err := models.NewHabitEntry(name, t.clock())
	if err != nil {
		return models.HabitEntry{}, err
	}
	return t.insert(entry)
}

// AddOn records name as done on date, stamped with the current instant.
func (t *Tracker) AddOn(name, date string) (models.HabitEntry, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.HabitEntry{}, err
	}
	entry, err := models.NewHabitEntry(name, t.clock())
	if err != nil {
		return models.HabitEntry{}, err
	}
	entry.Date = date
	return t.insert(entry)
}

func (t *Tracker) insert(entry models.HabitEntry) (models.HabitEntry, error) {
	id, err := t.store.InsertEntry(entry)
	if err != nil {
		logger.Error("Failed to insert entry", "habit", entry.HabitName, "error", err)
		return models.HabitEntry{}, err
	}
	entry.ID = id
	logger.Debug("Entry added", "id", id, "habit", entry.HabitName, "date", entry.Date)
	t.notify(notifier.PatternSuccess)
	return entry, nil
}

// Today returns the entries for the current date, newest first.
func (t *Tracker) Today() ([]models.HabitEntry, error) {
	return t.store.GetEntriesByDate(t.TodayDate())
}

// OnDate returns the entries for date, newest first.
func (t *Tracker) OnDate(date string) ([]models.HabitEntry, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, err
	}
	return t.store.GetEntriesByDate(date)
}

// History returns every entry for one habit, most recent date first.
func (t *Tracker) History(name string) ([]models.HabitEntry, error) {
	name, err := models.NormalizeHabitName(name)
	if err != nil {
		return nil, err
	}
	return t.store.GetEntriesByHabitName(name)
}

func (t *Tracker) All() ([]models.HabitEntry, error) {
	return t.store.GetAllEntries()
}

// Calendar groups all entries by date, most recent first, keeping at most
// limit groups. A limit of zero or less keeps every group.
func (t *Tracker) Calendar(limit int) ([]stats.DayGroup, error) {
	entries, err := t.store.GetAllEntries()
	if err != nil {
		return nil, err
	}
	groups := stats.GroupByDate(entries)
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

func (t *Tracker) Statistics() (stats.Summary, error) {
	entries, err := t.store.GetAllEntries()
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(entries), nil
}

// Delete removes one entry and reports how many were removed.
func (t *Tracker) Delete(id int64) (int64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: entry id must be positive, got %d", apperrors.ErrValidation, id)
	}
	return t.removed(t.store.DeleteEntry(id))
}

// DeleteHabit removes every entry for name.
func (t *Tracker) DeleteHabit(name string) (int64, error) {
	name, err := models.NormalizeHabitName(name)
	if err != nil {
		return 0, err
	}
	return t.removed(t.store.DeleteEntriesByHabitName(name))
}

// ClearAll removes every entry. Settings are kept.
func (t *Tracker) ClearAll() (int64, error) {
	return t.removed(t.store.DeleteAllEntries())
}

func (t *Tracker) removed(n int64, err error) (int64, error) {
	if err != nil {
		logger.Error("Failed to delete entries", "error", err)
		return 0, err
	}
	if n > 0 {
		t.notify(notifier.PatternShort)
	}
	return n, nil
}

// Confirm plays the confirmation pattern.
func (t *Tracker) Confirm() {
	t.notify(notifier.PatternConfirm)
}

func (t *Tracker) notify(p notifier.Pattern) {
	if err := t.notifier.Notify(p); err != nil {
		logger.Warn("Feedback failed", "pattern", p.Name, "error", err)
	}
}
