// ABOUTME: MessagePaneModel shows the visible message traces with a timeline scrub bar.
// ABOUTME: Only traces whose effects are applied to the displayed state appear in the viewport.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/bradysimon/snowscape/preview"
)

// MessagePaneModel is the Messages tab: a scrollable trace list plus a
// timeline bar for stateful previews.
type MessagePaneModel struct {
	viewport viewport.Model
	width    int
	height   int
}

// NewMessagePaneModel creates a message pane with a default-sized viewport.
func NewMessagePaneModel() MessagePaneModel {
	return MessagePaneModel{viewport: viewport.New(80, 8)}
}

// SetSize sets the pane's available dimensions.
func (m *MessagePaneModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	vpWidth := w - 2
	vpHeight := h - 3
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
}

// View renders the visible traces and timeline for the given preview.
func (m MessagePaneModel) View(p preview.Preview) string {
	traces := p.VisibleMessages()

	var lines []string
	for i, trace := range traces {
		lines = append(lines, fmt.Sprintf("%s %s",
			GroupStyle.Render(fmt.Sprintf("%3d", i+1)), trace))
	}

	if len(lines) == 0 {
		m.viewport.SetContent("No messages recorded yet")
	} else {
		m.viewport.SetContent(strings.Join(lines, "\n"))
		m.viewport.GotoBottom()
	}

	content := m.viewport.View()
	if tl, ok := p.Timeline(); ok {
		content = timelineBar(tl, m.width-4) + "\n" + content
	}

	return content
}

// timelineBar renders a scrub bar like [====|----] 3/8 with a live marker.
func timelineBar(tl preview.Timeline, width int) string {
	barWidth := width - 16
	if barWidth < 8 {
		barWidth = 8
	}

	filled := 0
	if tl.Count > 0 {
		filled = tl.Position * barWidth / tl.Count
	}
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"

	label := fmt.Sprintf("%s %d/%d", bar, tl.Position, tl.Count)
	if tl.IsLive() {
		return TimelineLiveStyle.Render(label + " live")
	}
	return TimelineHistoricalStyle.Render(label + " past")
}
