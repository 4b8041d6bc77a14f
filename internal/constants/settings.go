package constants

const (
	SettingNotificationsEnabled = "notifications_enabled"
	SettingDarkMode             = "dark_mode"
	SettingFeedback             = "feedback"
	SettingTimezone             = "timezone"

	DefaultNotificationsEnabled = true
	DefaultDarkMode             = false
	DefaultFeedback             = FeedbackBell
	DefaultTimezone             = "Local" // Use system local timezone by default
)
