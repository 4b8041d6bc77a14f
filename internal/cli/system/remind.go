package system

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/notifier"
)

const reminderText = "You haven't tracked any habits today. Take a moment to log one!"

type sender interface {
	Send(text string) error
}

var newSender = func() sender { return notifier.NewTray() }

// RemindCmd sends a desktop reminder when nothing has been logged today.
// It is meant to be run from cron or a similar scheduler.
type RemindCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			ctx.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	entries, err := ctx.Tracker().Today()
	if err != nil {
		return fmt.Errorf("failed to load today's habits: %w", err)
	}
	if len(entries) > 0 {
		if c.DryRun {
			ctx.Printf("%d habit(s) already logged today.\n", len(entries))
		}
		return nil
	}

	if c.DryRun {
		ctx.Println("[DryRun] " + reminderText)
		return nil
	}

	if err := newSender().Send(reminderText); err != nil {
		logger.Warn("Failed to send reminder", "error", err)
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	logger.Info("Reminder sent")
	return nil
}
