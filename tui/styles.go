// ABOUTME: Defines lipgloss style constants for the sidebar, preview area, config pane, and indicators.
// ABOUTME: Provides StyleForIndicator to map performance indicators to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bradysimon/snowscape/preview"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Sidebar list items
	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("62"))
	ItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	GroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Config pane labels and values
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Timeline bar
	TimelineLiveStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	TimelineHistoricalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Parameter editing
	ParamCursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	ParamEditingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Performance indicators
	HealthyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	DegradedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	SevereStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	UnknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Footer key help
	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StyleForIndicator returns the appropriate lipgloss style for a performance indicator.
func StyleForIndicator(i preview.Indicator) lipgloss.Style {
	switch i {
	case preview.IndicatorHealthy:
		return HealthyStyle
	case preview.IndicatorDegraded:
		return DegradedStyle
	case preview.IndicatorSevere:
		return SevereStyle
	default:
		return UnknownStyle
	}
}
