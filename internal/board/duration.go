package board

import (
	"fmt"
	"time"

	"github.com/nhle/teamboard/internal/model"
)

// Elapsed is how long a task has been open: up to now while it is todo,
// up to its completion once done. Negative spans are clamped to zero.
func Elapsed(t model.Task, now time.Time) time.Duration {
	end := now
	if c := t.Completed(); c != nil {
		end = *c
	}
	d := end.Sub(t.Created())
	if d < 0 {
		return 0
	}
	return d
}

// FormatDuration renders d the way task cards show it: "2h 5m", "3m 12s"
// or "40s".
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
