package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/notifier"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/tracker"
)

type Context struct {
	Store storage.Provider
	// Out receives command output. Nil means stdout.
	Out io.Writer
	// Now overrides the clock, for tests.
	Now func() time.Time
}

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	OKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Settings loads the stored settings, falling back to defaults when the
// settings table is empty.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Tracker builds a tracker configured from the stored settings.
func (c *Context) Tracker() *tracker.Tracker {
	settings := c.Settings()
	opts := []tracker.Option{
		tracker.WithLocation(settings.Location()),
		tracker.WithNotifier(notifier.FromSettings(settings, os.Stderr)),
	}
	if c.Now != nil {
		opts = append(opts, tracker.WithClock(c.Now))
	}
	return tracker.New(c.Store, opts...)
}

// Confirm asks a yes/no question unless assumeYes is set.
func (c *Context) Confirm(title, description string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatEntryLine renders one entry as "  #id  03:04 PM  Name".
func FormatEntryLine(e models.HabitEntry, loc *time.Location) string {
	return fmt.Sprintf("  %s  %s  %s",
		MutedStyle.Render(fmt.Sprintf("#%-4d", e.ID)),
		e.FormattedTime(loc),
		e.HabitName)
}

// FormatDate renders a YYYY-MM-DD date with the given layout, returning the
// raw value when it does not parse.
func FormatDate(date, layout string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}
