package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the side panel.
type Theme struct {
	Name   string
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Graph  lipgloss.Color
	Alert  lipgloss.Color
}

var Themes = []Theme{
	{
		Name:   "neon",
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Border: lipgloss.Color("#444466"),
		Graph:  lipgloss.Color("#00ffff"),
		Alert:  lipgloss.Color("#ff4444"),
	},
	{
		Name:   "minimal",
		Accent: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
		Graph:  lipgloss.Color("#0088ff"),
		Alert:  lipgloss.Color("#ffaa00"),
	},
	{
		Name:   "sunset",
		Accent: lipgloss.Color("#ff6b6b"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Border: lipgloss.Color("#5a3b5c"),
		Graph:  lipgloss.Color("#feca57"),
		Alert:  lipgloss.Color("#ff4757"),
	},
}

// ThemeIndex returns the position of the named theme, or 0.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

type Styles struct {
	Panel  lipgloss.Style
	Header lipgloss.Style
	Status lipgloss.Style
	Rec    lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Graph  lipgloss.Style
	Help   lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(panelWidth - 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Status: lipgloss.NewStyle().Bold(true).Foreground(t.Graph),
		Rec:    lipgloss.NewStyle().Bold(true).Foreground(t.Alert),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Graph:  lipgloss.NewStyle().Foreground(t.Graph),
		Help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}
