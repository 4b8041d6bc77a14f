// Package stats derives counts, streaks and calendar groupings from habit
// entries. Every function is pure and leaves its input untouched.
package stats

import (
	"cmp"
	"slices"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

// HabitCount is the number of entries recorded for one habit name.
type HabitCount struct {
	HabitName string
	Count     int
}

// DayGroup holds the entries sharing one date.
type DayGroup struct {
	Date    string
	Entries []models.HabitEntry
}

// Summary is everything the statistics and profile views show.
type Summary struct {
	Total         int
	UniqueHabits  int
	Counts        []HabitCount
	MostFrequent  *HabitCount
	LeastFrequent *HabitCount
	Streak        int
	ActiveDays    int
}

// CountByHabit groups entries by habit name. The result is ordered by count
// descending; equal counts are ordered by habit name ascending.
func CountByHabit(entries []models.HabitEntry) []HabitCount {
	byName := make(map[string]int)
	for _, e := range entries {
		byName[e.HabitName]++
	}

	counts := make([]HabitCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, HabitCount{HabitName: name, Count: n})
	}
	slices.SortFunc(counts, func(a, b HabitCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.HabitName, b.HabitName)
	})
	return counts
}

// MostFrequent returns the first ranked habit, or false when there is none.
func MostFrequent(counts []HabitCount) (HabitCount, bool) {
	if len(counts) == 0 {
		return HabitCount{}, false
	}
	return counts[0], true
}

// LeastFrequent returns the last ranked habit. It needs at least two habits
// to be meaningful.
func LeastFrequent(counts []HabitCount) (HabitCount, bool) {
	if len(counts) < 2 {
		return HabitCount{}, false
	}
	return counts[len(counts)-1], true
}

// Percentage is count's truncated share of total.
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return count * 100 / total
}

// DistinctDates returns the unique valid dates in ascending order.
func DistinctDates(entries []models.HabitEntry) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	// YYYY-MM-DD sorts lexically in date order
	slices.Sort(dates)
	return dates
}

// ActiveDays is the number of distinct days with at least one entry.
func ActiveDays(entries []models.HabitEntry) int {
	return len(DistinctDates(entries))
}

// Streak counts consecutive calendar days ending at the most recent recorded
// day. It is not anchored to today: a streak that ended last week still
// reports its length.
func Streak(entries []models.HabitEntry) int {
	return StreakFromDates(DistinctDates(entries))
}

// StreakFromDates computes the streak over distinct dates sorted ascending.
func StreakFromDates(dates []string) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	next, err := time.Parse(constants.DateFormat, dates[len(dates)-1])
	if err != nil {
		return 0
	}
	for i := len(dates) - 2; i >= 0; i-- {
		day, err := time.Parse(constants.DateFormat, dates[i])
		if err != nil {
			break
		}
		if !day.AddDate(0, 0, 1).Equal(next) {
			break
		}
		streak++
		next = day
	}
	return streak
}

// GroupByDate partitions entries by date, most recent date first. Entries
// keep their input order inside each group.
func GroupByDate(entries []models.HabitEntry) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DayGroup{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return groups
}

// Summarize computes the full statistics for entries.
func Summarize(entries []models.HabitEntry) Summary {
	counts := CountByHabit(entries)
	s := Summary{
		Total:        len(entries),
		UniqueHabits: len(counts),
		Counts:       counts,
		Streak:       Streak(entries),
		ActiveDays:   ActiveDays(entries),
	}
	if most, ok := MostFrequent(counts); ok {
		s.MostFrequent = &most
	}
	if least, ok := LeastFrequent(counts); ok {
		s.LeastFrequent = &least
	}
	return s
}
