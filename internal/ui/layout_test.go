package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
}

func TestLaneColumns(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		lanes     int
		visible   int
		laneWidth int
	}{
		{"no lanes", 100, 0, 0, 100},
		{"all fit", 120, 3, 3, 40},
		{"some fit", 120, 6, 4, 30},
		{"too narrow", 20, 2, 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, w := LaneColumns(tt.width, tt.lanes)
			assert.Equal(t, tt.visible, visible)
			assert.Equal(t, tt.laneWidth, w)
		})
	}
}

func TestLaneWindowKeepsFocusVisible(t *testing.T) {
	start, end := LaneWindow(3, 5, 2)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	for focus := 0; focus < 10; focus++ {
		start, end := LaneWindow(10, 3, focus)
		assert.Equal(t, 3, end-start)
		assert.GreaterOrEqual(t, focus, start)
		assert.Less(t, focus, end)
	}
}
