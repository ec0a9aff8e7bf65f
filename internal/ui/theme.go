package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Success       string
	Warning       string
	Danger        string
	SelectionBg   string
	SelectionText string
	BarBg         string
}

var themes = []Theme{
	{
		Name:          "Midnight",
		Text:          "#e0e0e0",
		Muted:         "#7a7a8c",
		Accent:        "#7aa2f7",
		Success:       "#9ece6a",
		Warning:       "#e0af68",
		Danger:        "#f7768e",
		SelectionBg:   "#283457",
		SelectionText: "#c0caf5",
		BarBg:         "#1a1b26",
	},
	{
		Name:          "Paper",
		Text:          "#2e2e2e",
		Muted:         "#8a8a8a",
		Accent:        "#005f87",
		Success:       "#2e7d32",
		Warning:       "#b26a00",
		Danger:        "#c62828",
		SelectionBg:   "#d7e3f4",
		SelectionText: "#1a1a1a",
		BarBg:         "#eeeeee",
	},
	{
		Name:          "Dracula",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		BarBg:         "#282a36",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first
// theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the Lipgloss styles derived from a theme.
type Styles struct {
	Logo     lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Bar      lipgloss.Style
	Notice   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BarBg)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}
