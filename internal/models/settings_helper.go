package models

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Missing keys keep their default values.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingDarkMode:
			settings.DarkMode = value == "true"
		case constants.SettingFeedback:
			settings.Feedback = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingDarkMode:             fmt.Sprintf("%v", settings.DarkMode),
		constants.SettingFeedback:             settings.Feedback,
		constants.SettingTimezone:             settings.Timezone,
	}
}
