package storage

import "github.com/julianstephens/habitlog/internal/models"

// Provider is the entry store. Entries are only ever inserted or deleted.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	InsertEntry(models.HabitEntry) (int64, error)
	// GetEntriesByDate returns the entries for one YYYY-MM-DD date, newest first.
	GetEntriesByDate(date string) ([]models.HabitEntry, error)
	// GetEntriesByHabitName returns every entry for an exact habit name, most
	// recent date first.
	GetEntriesByHabitName(name string) ([]models.HabitEntry, error)
	GetAllEntries() ([]models.HabitEntry, error)
	// Deletes report how many entries were removed; zero is not an error.
	DeleteEntry(id int64) (int64, error)
	DeleteEntriesByHabitName(name string) (int64, error)
	DeleteAllEntries() (int64, error)

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by stores that can report and apply schema migrations.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}
