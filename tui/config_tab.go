// ABOUTME: ConfigTab enumerates the tabs of the configuration pane under the preview area.
// ABOUTME: Tabs cycle About -> Messages -> Parameters -> Performance.
package tui

// ConfigTab identifies which configuration tab is visible.
type ConfigTab int

const (
	TabAbout ConfigTab = iota
	TabMessages
	TabParameters
	TabPerformance
)

// String returns the tab's display name.
func (t ConfigTab) String() string {
	switch t {
	case TabAbout:
		return "About"
	case TabMessages:
		return "Messages"
	case TabParameters:
		return "Parameters"
	case TabPerformance:
		return "Performance"
	default:
		return "About"
	}
}

// Next cycles to the following tab, wrapping around after Performance.
func (t ConfigTab) Next() ConfigTab {
	switch t {
	case TabAbout:
		return TabMessages
	case TabMessages:
		return TabParameters
	case TabParameters:
		return TabPerformance
	default:
		return TabAbout
	}
}
