package entries

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/cli"
)

type DeleteCmd struct {
	ID  int64 `arg:"" help:"Entry ID to delete."`
	Yes bool  `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Confirm(
		fmt.Sprintf("Delete entry %d?", c.ID),
		"This cannot be undone.",
		c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	n, err := ctx.Tracker().Delete(c.ID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if n == 0 {
		ctx.Printf("No entry with ID %d.\n", c.ID)
		return nil
	}
	ctx.Printf("Deleted entry %d\n", c.ID)
	return nil
}

type ForgetCmd struct {
	Name string `arg:"" help:"Habit name whose entries should all be deleted."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ForgetCmd) Run(ctx *cli.Context) error {
	tr := ctx.Tracker()
	entries, err := tr.History(c.Name)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		ctx.Printf("No entries found for %q.\n", c.Name)
		return nil
	}

	ok, err := ctx.Confirm(
		fmt.Sprintf("Delete all %d entries of %s?", len(entries), entries[0].HabitName),
		"This cannot be undone.",
		c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	n, err := tr.DeleteHabit(c.Name)
	if err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	ctx.Printf("Deleted %d entries of %s\n", n, entries[0].HabitName)
	return nil
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Confirm(
		"Clear all data?",
		"Every habit entry will be deleted. Settings are kept.",
		c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Clear cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	n, err := ctx.Tracker().ClearAll()
	if err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	ctx.Printf("Deleted %d entries\n", n)
	return nil
}
