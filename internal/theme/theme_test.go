package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTagColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), TagColor("#ff0000"))
	assert.Equal(t, lipgloss.Color("#f00"), TagColor(" #f00 "))
	assert.Equal(t, ColorGray, TagColor("rgb(255, 0, 0)"))
	assert.Equal(t, ColorGray, TagColor(""))
}
