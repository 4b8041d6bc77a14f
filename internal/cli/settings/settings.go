package settings

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable daily reminders."`
	DarkMode             *bool   `help:"Use the dark TUI theme."`
	Feedback             *string `help:"Feedback when habits are added or deleted (bell, tray, off)."`
	Timezone             *string `help:"IANA time zone used to date entries, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.Printf("  Dark Mode:             %v\n", settings.DarkMode)
		ctx.Printf("  Feedback:              %s\n", settings.Feedback)
		ctx.Printf("  Timezone:              %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.DarkMode != nil {
		settings.DarkMode = *c.DarkMode
		updated = true
	}
	if c.Feedback != nil {
		settings.Feedback = *c.Feedback
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if c.Feedback != nil {
		ctx.Tracker().Confirm()
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
