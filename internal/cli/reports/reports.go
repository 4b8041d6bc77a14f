package reports

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/stats"
)

type CalendarCmd struct {
	Days int `help:"Number of most recent active days to show. Zero shows every day." default:"30"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	tr := ctx.Tracker()
	groups, err := tr.Calendar(c.Days)
	if err != nil {
		return fmt.Errorf("failed to load calendar: %w", err)
	}

	if len(groups) == 0 {
		ctx.Println("No habits logged yet.")
		return nil
	}

	for i, g := range groups {
		if i > 0 {
			ctx.Println()
		}
		ctx.Println(cli.HeaderStyle.Render(cli.FormatDate(g.Date, constants.CalendarDateFormat)))
		for _, e := range g.Entries {
			ctx.Println(cli.FormatEntryLine(e, tr.Location()))
		}
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Tracker().Statistics()
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	ctx.Println(cli.HeaderStyle.Render("Statistics"))
	ctx.Printf("  Total entries:  %d\n", summary.Total)
	ctx.Printf("  Unique habits:  %d\n", summary.UniqueHabits)
	if summary.MostFrequent != nil {
		ctx.Printf("  Most frequent:  %s (%d)\n", summary.MostFrequent.HabitName, summary.MostFrequent.Count)
	}
	if summary.LeastFrequent != nil {
		ctx.Printf("  Least frequent: %s (%d)\n", summary.LeastFrequent.HabitName, summary.LeastFrequent.Count)
	}

	if len(summary.Counts) == 0 {
		ctx.Println("\nNo habits logged yet.")
		return nil
	}

	ctx.Println()
	ctx.Println(cli.HeaderStyle.Render("Habit Breakdown"))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage())
	for _, hc := range summary.Counts {
		pct := stats.Percentage(hc.Count, summary.Total)
		ctx.Printf("  %-20s %s %3d%%  (%d)\n", hc.HabitName, bar.ViewAs(float64(pct)/100), pct, hc.Count)
	}
	return nil
}

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Tracker().Statistics()
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	ctx.Println(cli.HeaderStyle.Render("Profile"))
	ctx.Printf("  Current streak: %d day(s)\n", summary.Streak)
	ctx.Printf("  Active days:    %d\n", summary.ActiveDays)
	ctx.Printf("  Total entries:  %d\n", summary.Total)
	ctx.Printf("  Unique habits:  %d\n", summary.UniqueHabits)
	ctx.Println()
	ctx.Println(cli.MutedStyle.Render(fmt.Sprintf("%q", constants.ProfileQuote)))
	return nil
}
