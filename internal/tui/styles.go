package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	header      lipgloss.Style
	muted       lipgloss.Style
	danger      lipgloss.Style
	warning     lipgloss.Style
	status      lipgloss.Style
	quote       lipgloss.Style
	doc         lipgloss.Style
}

// newStyles builds the palette for the configured theme.
func newStyles(dark bool) styles {
	accent, tabBg, muted, text := lipgloss.Color("205"), lipgloss.Color("254"), lipgloss.Color("244"), lipgloss.Color("235")
	if dark {
		accent, tabBg, muted, text = lipgloss.Color("212"), lipgloss.Color("236"), lipgloss.Color("240"), lipgloss.Color("252")
	}

	return styles{
		activeTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(tabBg).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		muted: lipgloss.NewStyle().Foreground(muted),
		danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		status: lipgloss.NewStyle().Foreground(text).Italic(true),
		quote: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(muted).
			PaddingLeft(1),
		doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
