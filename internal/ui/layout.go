// Package ui holds the frame shared by every view: header, content area,
// status bar and the swimlane column arithmetic.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/theme"
)

// MinLaneWidth is the narrowest a swimlane column is drawn.
const MinLaneWidth = 28

// StatusMsg carries a transient line for the status bar.
type StatusMsg string

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// LaneColumns returns how many swimlanes of at least MinLaneWidth fit in
// width, and the width each of them gets. At least one lane is always
// shown.
func LaneColumns(width, lanes int) (visible, laneWidth int) {
	if lanes <= 0 {
		return 0, width
	}
	visible = width / MinLaneWidth
	if visible < 1 {
		visible = 1
	}
	if visible > lanes {
		visible = lanes
	}
	return visible, width / visible
}

// LaneWindow returns the half-open range [start, end) of lanes to draw so
// that focus stays visible.
func LaneWindow(lanes, visible, focus int) (start, end int) {
	if visible >= lanes {
		return 0, lanes
	}
	start = focus - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > lanes {
		start = lanes - visible
	}
	return start, start + visible
}

// RenderHeader renders the top header bar with a title and a right-aligned
// summary such as the active tag filter.
func (l Layout) RenderHeader(title string, summary string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	summaryRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(summary)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(summaryRendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		summaryRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	body := lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}
