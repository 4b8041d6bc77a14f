package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	apperrors "github.com/julianstephens/habitlog/internal/errors"
)

// HabitEntry is one completion record. Entries are never updated; they are
// created and deleted.
type HabitEntry struct {
	ID        int64  `json:"id"`
	HabitName string `json:"habit_name"`
	Date      string `json:"date"`      // YYYY-MM-DD format
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// NewHabitEntry builds an unsaved entry for name recorded at now. The entry's
// date is now's calendar date in now's location.
func NewHabitEntry(name string, now time.Time) (HabitEntry, error) {
	name, err := NormalizeHabitName(name)
	if err != nil {
		return HabitEntry{}, err
	}
	return HabitEntry{
		HabitName: name,
		Date:      now.Format(constants.DateFormat),
		Timestamp: now.UnixMilli(),
	}, nil
}

// NormalizeHabitName trims name and rejects it when nothing is left.
func NormalizeHabitName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: habit name cannot be empty", apperrors.ErrValidation)
	}
	return name, nil
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format: %s (expected YYYY-MM-DD)", apperrors.ErrValidation, date)
	}
	return t, nil
}

func (e HabitEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// FormattedTime renders the entry's creation time of day in loc.
func (e HabitEntry) FormattedTime(loc *time.Location) string {
	return e.Time().In(loc).Format(constants.TimeOfDayFormat)
}

// FormattedDate renders the entry's creation date in loc.
func (e HabitEntry) FormattedDate(loc *time.Location) string {
	return e.Time().In(loc).Format(constants.DisplayDateFormat)
}
