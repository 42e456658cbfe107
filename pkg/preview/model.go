// Package preview shows the status bar in a terminal instead of streaming
// i3bar JSON. It drives the same scheduler at the same interval and paints
// each segment in its own color, which makes it handy for checking widget
// output without reloading the bar.
package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/i3bar"
)

var (
	pvHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	pvTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
)

// Model is the bubbletea model for the preview.
type Model struct {
	ctx      context.Context
	bar      i3bar.Ticker
	interval time.Duration

	segs   []components.Segment
	failed bool
	ticks  int
	width  int
}

// NewModel creates a preview of bar updating every interval.
func NewModel(ctx context.Context, bar i3bar.Ticker, interval time.Duration) Model {
	if interval <= 0 {
		interval = i3bar.DefaultInterval
	}
	return Model{ctx: ctx, bar: bar, interval: interval}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickNow
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickEvent:
		segs, err := m.bar.Tick(m.ctx)
		m.failed = err != nil
		if err != nil {
			segs = i3bar.ErrorSegments(err)
		}
		m.segs = segs
		m.ticks++
		return m, TickCmd(m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(pvTitleStyle.Render("pulse-bar preview"))
	b.WriteString("\n\n")

	segs := m.segs
	if m.width > 0 {
		segs = components.TruncateSegments(segs, m.width, "…")
	}
	b.WriteString(RenderSegments(segs))
	b.WriteString("\n\n")

	help := fmt.Sprintf("tick %d · every %s · q to quit", m.ticks, m.interval)
	b.WriteString(pvHelpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Segments returns the segments shown by the last tick.
func (m Model) Segments() []components.Segment {
	return m.segs
}

// Failed reports whether the last tick showed an error.
func (m Model) Failed() bool {
	return m.failed
}

// RenderSegments paints each segment with its foreground color and joins
// them into one line.
func RenderSegments(segs []components.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(s.Text))
	}
	return b.String()
}

// Run starts the preview program and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, bar i3bar.Ticker, interval time.Duration) error {
	p := tea.NewProgram(NewModel(ctx, bar, interval), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
