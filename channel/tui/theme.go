package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the presentation state handed from the App down to every panel.
// Nothing outside the App's own view is touched when it changes.
type Theme struct {
	Name  string // "light" or "dark", also the glamour standard style
	Glyph string // sun or moon shown in the header

	Root           lipgloss.Style
	Header         lipgloss.Style
	Separator      lipgloss.Style
	User           lipgloss.Style
	Bot            lipgloss.Style
	Typing         lipgloss.Style
	Prompt         lipgloss.Style
	PromptSelected lipgloss.Style
	Muted          lipgloss.Style
	Robot          lipgloss.Style
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	var (
		bg     = lipgloss.Color("255")
		fg     = lipgloss.Color("235")
		accent = lipgloss.Color("33")
		muted  = lipgloss.Color("245")
	)
	return Theme{
		Name:           "light",
		Glyph:          "☀",
		Root:           lipgloss.NewStyle().Background(bg).Foreground(fg),
		Header:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 1),
		Separator:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		User:           lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bot:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		Typing:         lipgloss.NewStyle().Foreground(muted).Italic(true),
		Prompt:         lipgloss.NewStyle().Foreground(fg),
		PromptSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accent),
		Muted:          lipgloss.NewStyle().Foreground(muted),
		Robot:          lipgloss.NewStyle().Foreground(accent),
	}
}

func darkTheme() Theme {
	var (
		bg     = lipgloss.Color("234")
		fg     = lipgloss.Color("252")
		accent = lipgloss.Color("141")
		muted  = lipgloss.Color("240")
	)
	return Theme{
		Name:           "dark",
		Glyph:          "☾",
		Root:           lipgloss.NewStyle().Background(bg).Foreground(fg),
		Header:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("234")).Background(accent).Padding(0, 1),
		Separator:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		User:           lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bot:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		Typing:         lipgloss.NewStyle().Foreground(muted).Italic(true),
		Prompt:         lipgloss.NewStyle().Foreground(fg),
		PromptSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("234")).Background(accent),
		Muted:          lipgloss.NewStyle().Foreground(muted),
		Robot:          lipgloss.NewStyle().Foreground(accent),
	}
}
