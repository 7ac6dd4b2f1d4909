package styles

import "github.com/charmbracelet/lipgloss"

var paletteColors = map[Palette]lipgloss.Color{
	Standard:  lipgloss.Color("#cdd6f4"),
	Primary:   lipgloss.Color("#89b4fa"),
	Secondary: lipgloss.Color("#b4befe"),
	Success:   lipgloss.Color("#a6e3a1"),
	Info:      lipgloss.Color("#89dceb"),
	Link:      lipgloss.Color("#74c7ec"),
	Warning:   lipgloss.Color("#f9e2af"),
	Danger:    lipgloss.Color("#f38ba8"),
}

var surface = lipgloss.Color("#1e1e2e")

// Color returns the terminal color for a palette.
func (p Palette) Color() lipgloss.Color { return paletteColors[p.OrDefault()] }

// Terminal maps a palette and style onto a lipgloss style, the terminal
// counterpart of the class tokens used in HTML.
func Terminal(p Palette, s Style) lipgloss.Style {
	c := p.Color()
	base := lipgloss.NewStyle().Padding(0, 1)

	switch s.OrDefault() {
	case Light:
		return base.Foreground(c).Faint(true)
	case Outline:
		return base.Foreground(c).Border(lipgloss.RoundedBorder()).BorderForeground(c)
	default:
		return base.Foreground(surface).Background(c).Bold(true)
	}
}

// TerminalWidth maps a size onto a text input width in cells.
func TerminalWidth(s Size) int {
	switch s.OrDefault() {
	case Small:
		return 16
	case Big:
		return 40
	default:
		return 28
	}
}
