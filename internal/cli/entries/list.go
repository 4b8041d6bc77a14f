package entries

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/tracker"
)

type TodayCmd struct {
	Date string `short:"d" help:"Show another date instead (YYYY-MM-DD)."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	tr := ctx.Tracker()
	if c.Date != "" && c.Date != tr.TodayDate() {
		return c.runOn(ctx, tr)
	}

	entries, err := tr.Today()
	if err != nil {
		return fmt.Errorf("failed to load today's habits: %w", err)
	}

	today := tr.TodayDate()
	ctx.Println(cli.HeaderStyle.Render("Today, " + cli.FormatDate(today, constants.DisplayDateFormat)))
	if len(entries) == 0 {
		ctx.Println("No habits logged yet today. Use 'habitlog add' to log one.")
		return nil
	}
	for _, e := range entries {
		ctx.Println(cli.FormatEntryLine(e, tr.Location()))
	}
	ctx.Printf("\n%d habit(s) logged today.\n", len(entries))
	return nil
}

func (c *TodayCmd) runOn(ctx *cli.Context, tr *tracker.Tracker) error {
	entries, err := tr.OnDate(c.Date)
	if err != nil {
		return fmt.Errorf("failed to load habits for %s: %w", c.Date, err)
	}

	ctx.Println(cli.HeaderStyle.Render(cli.FormatDate(c.Date, constants.CalendarDateFormat)))
	if len(entries) == 0 {
		ctx.Println("No habits logged on this day.")
		return nil
	}
	for _, e := range entries {
		ctx.Println(cli.FormatEntryLine(e, tr.Location()))
	}
	ctx.Printf("\n%d habit(s) logged.\n", len(entries))
	return nil
}

type HistoryCmd struct {
	Name string `arg:"" help:"Habit name to show entries for."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	tr := ctx.Tracker()
	entries, err := tr.History(c.Name)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		ctx.Printf("No entries found for %q.\n", c.Name)
		return nil
	}

	ctx.Println(cli.HeaderStyle.Render(fmt.Sprintf("%s (%d entries)", entries[0].HabitName, len(entries))))
	loc := tr.Location()
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s  %s",
			cli.MutedStyle.Render(fmt.Sprintf("#%-4d", e.ID)),
			cli.FormatDate(e.Date, constants.DisplayDateFormat),
			e.FormattedTime(loc))
		// backdated entries
		if e.Time().In(loc).Format(constants.DateFormat) != e.Date {
			line += cli.MutedStyle.Render("  (logged " + e.FormattedDate(loc) + ")")
		}
		ctx.Println(line)
	}
	return nil
}
