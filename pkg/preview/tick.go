package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickEvent asks the model to advance the status bar by one tick.
type TickEvent struct {
	Time time.Time
}

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration. This drives the preview's update cycle at the bar interval.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// tickNow delivers a TickEvent immediately so the first frame does not wait
// a whole interval.
func tickNow() tea.Msg {
	return TickEvent{Time: time.Now()}
}
