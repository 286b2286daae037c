// ABOUTME: Renders the Performance tab: view/update stats grids and the combined indicator.
// ABOUTME: Stats come from the preview's recorder; previews without tracking show a notice.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bradysimon/snowscape/preview"
)

// performancePane renders latency statistics for the given preview.
// Durations at or above threshold are marked slow in the grid.
func performancePane(p preview.Preview, threshold time.Duration) string {
	perf := p.Performance()
	if perf == nil {
		return "Performance metrics are not available for this preview."
	}

	viewStats := perf.ViewStats()
	updateStats := perf.UpdateStats()

	if viewStats.Count == 0 && updateStats.Count == 0 {
		return "No performance data recorded yet. Interact with the preview to see metrics."
	}

	var b strings.Builder
	indicator := perf.Overall()
	b.WriteString(LabelStyle.Render("Status"))
	b.WriteString(StyleForIndicator(indicator).Render(indicator.String()))
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("View Function"))
	b.WriteString("\n")
	if viewStats.Count > 0 {
		b.WriteString(statsGrid(viewStats, threshold))
	} else {
		b.WriteString("No view data recorded.\n")
	}

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Update Function"))
	b.WriteString("\n")
	if updateStats.Count > 0 {
		b.WriteString(statsGrid(updateStats, threshold))
	} else {
		b.WriteString("No update data recorded (stateless preview or no interactions).\n")
	}

	return b.String()
}

// statsGrid renders one Stats value as label/value rows, marking durations
// at or above the display threshold.
func statsGrid(s preview.Stats, threshold time.Duration) string {
	rows := []struct {
		label string
		value string
	}{
		{"Calls", fmt.Sprintf("%d", s.Count)},
		{"Last", formatLatency(s.Last, threshold)},
		{"Average", formatLatency(s.Avg, threshold)},
		{"Min / Max", formatLatency(s.Min, threshold) + " / " + formatLatency(s.Max, threshold)},
		{"p50", formatLatency(s.P50, threshold)},
		{"p90", formatLatency(s.P90, threshold)},
		{"p99", formatLatency(s.P99, threshold)},
		{"Slow calls", fmt.Sprintf("%d", s.SlowCalls)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(LabelStyle.Render(row.label))
		b.WriteString(ValueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return b.String()
}

// formatLatency renders a duration, flagging it when it breaches the
// display threshold.
func formatLatency(d, threshold time.Duration) string {
	if threshold > 0 && d >= threshold {
		return formatDuration(d) + " " + SevereStyle.Render("slow")
	}
	return formatDuration(d)
}

// formatDuration renders a duration with sub-millisecond precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d.Microseconds()))
	}
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
