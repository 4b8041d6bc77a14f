package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

const customHabitOption = "Something else..."

// HabitFormModel holds the add-habit form values.
type HabitFormModel struct {
	Choice string
	Custom string
}

// Name is the habit the form resolved to.
func (f *HabitFormModel) Name() string {
	if f.Choice == customHabitOption {
		return f.Custom
	}
	return f.Choice
}

// NewHabitForm offers the common habits as quick picks with a free text
// fallback.
func NewHabitForm(f *HabitFormModel, dark bool) *huh.Form {
	options := make([]huh.Option[string], 0, len(constants.CommonHabits)+1)
	for _, h := range constants.CommonHabits {
		options = append(options, huh.NewOption(h, h))
	}
	options = append(options, huh.NewOption(customHabitOption, customHabitOption))

	theme := huh.ThemeCharm()
	if dark {
		theme = huh.ThemeDracula()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What did you do?").
				Options(options...).
				Value(&f.Choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Placeholder("e.g. Stretching").
				Validate(func(s string) error {
					_, err := models.NormalizeHabitName(s)
					return err
				}).
				Value(&f.Custom),
		).WithHideFunc(func() bool { return f.Choice != customHabitOption }),
	).WithTheme(theme)
}
