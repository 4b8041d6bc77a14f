package sqlite

import (
	"database/sql"
	"fmt"

	apperrors "github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/models"
)

const entryColumns = "id, habit_name, date, timestamp"

func (s *Store) InsertEntry(entry models.HabitEntry) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO habits (habit_name, date, timestamp) VALUES (?, ?, ?)",
		entry.HabitName, entry.Date, entry.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("%w: insert entry: %w", apperrors.ErrStorage, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: read inserted id: %w", apperrors.ErrStorage, err)
	}
	return id, nil
}

func (s *Store) GetEntriesByDate(date string) ([]models.HabitEntry, error) {
	return s.queryEntries("entries by date",
		"SELECT "+entryColumns+" FROM habits WHERE date = ? ORDER BY timestamp DESC, id DESC", date)
}

func (s *Store) GetEntriesByHabitName(name string) ([]models.HabitEntry, error) {
	return s.queryEntries("entries by habit",
		"SELECT "+entryColumns+" FROM habits WHERE habit_name = ? ORDER BY date DESC, timestamp DESC, id DESC", name)
}

func (s *Store) GetAllEntries() ([]models.HabitEntry, error) {
	return s.queryEntries("all entries",
		"SELECT "+entryColumns+" FROM habits ORDER BY timestamp DESC, id DESC")
}

func (s *Store) DeleteEntry(id int64) (int64, error) {
	return s.deleteEntries("entry", "DELETE FROM habits WHERE id = ?", id)
}

func (s *Store) DeleteEntriesByHabitName(name string) (int64, error) {
	return s.deleteEntries("habit entries", "DELETE FROM habits WHERE habit_name = ?", name)
}

func (s *Store) DeleteAllEntries() (int64, error) {
	return s.deleteEntries("all entries", "DELETE FROM habits")
}

func (s *Store) queryEntries(what, query string, args ...any) ([]models.HabitEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", apperrors.ErrStorage, what, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrStorage, what, err)
	}
	return entries, nil
}

func (s *Store) deleteEntries(what, query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: delete %s: %w", apperrors.ErrStorage, what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: delete %s: %w", apperrors.ErrStorage, what, err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]models.HabitEntry, error) {
	entries := []models.HabitEntry{}
	for rows.Next() {
		var e models.HabitEntry
		if err := rows.Scan(&e.ID, &e.HabitName, &e.Date, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
