package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// DefaultTagColor is offered for new tags.
const DefaultTagColor = "#6BCB77"

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as help and the command palette.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// LaneStyle frames one swimlane.
var LaneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// FocusedLaneStyle frames the swimlane holding the cursor.
var FocusedLaneStyle = LaneStyle.
	BorderForeground(ColorBlue)

// LaneTitleStyle renders a member name above its cards.
var LaneTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// CardStyle is the base style for a task card.
var CardStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedCardStyle highlights the card under the cursor.
var SelectedCardStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DimmedStyle renders finished cards and secondary text.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// NoticeStyle renders transient status messages.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Italic(true)

// StatusStyle returns a color-coded style for a task status.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case "todo":
		return base.Foreground(ColorBlue)
	case "done":
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// TagColor converts a stored CSS color to a terminal color. Only hex
// colors translate; anything else renders gray.
func TagColor(css string) lipgloss.TerminalColor {
	c := strings.TrimSpace(css)
	if strings.HasPrefix(c, "#") && (len(c) == 4 || len(c) == 7) {
		return lipgloss.Color(c)
	}
	return ColorGray
}

// TagStyle returns a chip style for a tag with the given CSS color.
func TagStyle(css string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(TagColor(css)).
		Bold(true)
}
