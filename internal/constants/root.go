package constants

import "time"

const (
	AppName            = "habitlog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitlog/habitlog.db"
	Version            = "v1.0.0"

	// DateFormat is the date format used for entry grouping (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeOfDayFormat renders an entry's timestamp as a time of day
	TimeOfDayFormat = "03:04 PM"

	// DisplayDateFormat renders a date for history listings
	DisplayDateFormat = "Jan 02, 2006"

	// CalendarDateFormat renders a calendar group heading
	CalendarDateFormat = "Jan 02, 2006 (Mon)"

	// Presentation windows for calendar grouping
	CalendarWindow = 30
	SummaryWindow  = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitlog-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "habitlog-notifier.lock"
	NotificationDurationMs = 5000
	NotifyTimeout          = 2 * time.Second
	TrayAppIdentifier      = "com.julianstephens.habitlog"
	TrayExecutablePrefix   = "habitlog-tray"

	// Feedback backends
	FeedbackBell = "bell"
	FeedbackTray = "tray"
	FeedbackOff  = "off"

	ProfileQuote = "You are wanted in this space. So take it"
)

// CommonHabits are offered as quick picks when adding a habit.
var CommonHabits = []string{
	"Exercise",
	"Reading",
	"Meditation",
	"Drink Water",
	"Sleep 8 Hours",
	"Healthy Eating",
}
