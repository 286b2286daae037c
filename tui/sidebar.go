// ABOUTME: SidebarModel renders the searchable preview list and tracks search input focus.
// ABOUTME: Filtering is delegated to the registry's metadata matching.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bradysimon/snowscape/preview"
)

// SidebarModel is the searchable list of registered previews.
type SidebarModel struct {
	search textinput.Model
	width  int
	height int
}

// NewSidebarModel creates a sidebar with an unfocused search input.
func NewSidebarModel() SidebarModel {
	input := textinput.New()
	input.Placeholder = "Search previews ('/' to focus)"
	input.CharLimit = 64
	return SidebarModel{search: input}
}

// Query returns the current search text.
func (m SidebarModel) Query() string {
	return m.search.Value()
}

// Focused reports whether the search input has keyboard focus.
func (m SidebarModel) Focused() bool {
	return m.search.Focused()
}

// Focus gives the search input keyboard focus.
func (m *SidebarModel) Focus() {
	m.search.Focus()
}

// Blur removes keyboard focus from the search input.
func (m *SidebarModel) Blur() {
	m.search.Blur()
}

// SetSize sets the sidebar's available dimensions.
func (m *SidebarModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = w - 6
}

// Update forwards a message to the search input while focused.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View renders the search input and the filtered preview list, marking the
// selected preview.
func (m SidebarModel) View(items []preview.Item, selected int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Previews (%d)", len(items))))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(GroupStyle.Render("No previews found"))
	}

	group := ""
	for _, item := range items {
		if item.Meta.Group != "" && item.Meta.Group != group {
			group = item.Meta.Group
			b.WriteString(GroupStyle.Render(group))
			b.WriteString("\n")
		}
		line := item.Meta.Label
		if item.Index == selected {
			line = SelectedItemStyle.Render("> " + line)
		} else {
			line = ItemStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(b.String())
}
