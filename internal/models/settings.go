package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	apperrors "github.com/julianstephens/habitlog/internal/errors"
)

// Settings represents user preferences persisted alongside the entries
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"` // daily reminder when nothing was logged
	DarkMode             bool   `json:"dark_mode"`             // TUI palette
	Feedback             string `json:"feedback"`              // "bell", "tray" or "off"
	Timezone             string `json:"timezone"`              // IANA timezone name or "Local"
}

// DefaultSettings returns the settings seeded into a fresh store.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		DarkMode:             constants.DefaultDarkMode,
		Feedback:             constants.DefaultFeedback,
		Timezone:             constants.DefaultTimezone,
	}
}

// Location resolves the configured timezone, falling back to the system zone.
func (s Settings) Location() *time.Location {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Validate checks enumerated and zone values.
func (s Settings) Validate() error {
	switch s.Feedback {
	case constants.FeedbackBell, constants.FeedbackTray, constants.FeedbackOff:
	default:
		return fmt.Errorf("%w: invalid feedback %q: must be one of %s, %s, %s",
			apperrors.ErrValidation, s.Feedback, constants.FeedbackBell, constants.FeedbackTray, constants.FeedbackOff)
	}
	if s.Timezone != "" && s.Timezone != "Local" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("%w: invalid timezone %q: %v", apperrors.ErrValidation, s.Timezone, err)
		}
	}
	return nil
}
