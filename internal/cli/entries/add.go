package entries

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/tui"
)

type AddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name. Prompts with common habits when omitted."`
	Date string `help:"Date to log the habit on (YYYY-MM-DD). Defaults to today."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	name := c.Name
	if strings.TrimSpace(name) == "" {
		picked, err := promptHabitName(ctx.Settings().DarkMode)
		if err != nil {
			return err
		}
		name = picked
	}

	tr := ctx.Tracker()
	var (
		entry models.HabitEntry
		err   error
	)
	if c.Date != "" {
		entry, err = tr.AddOn(name, c.Date)
	} else {
		entry, err = tr.Add(name)
	}
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}

	ctx.Printf("%s Logged %s on %s at %s (ID: %d)\n",
		cli.OKStyle.Render("✓"),
		entry.HabitName,
		cli.FormatDate(entry.Date, constants.DisplayDateFormat),
		entry.FormattedTime(tr.Location()),
		entry.ID)
	return nil
}

// promptHabitName offers the common habits as quick picks, falling back to
// free text.
func promptHabitName(dark bool) (string, error) {
	var form tui.HabitFormModel
	if err := tui.NewHabitForm(&form, dark).Run(); err != nil {
		return "", err
	}
	return form.Name(), nil
}
