// ABOUTME: AppModel is the Bubble Tea host: sidebar, preview area, and tabbed config pane.
// ABOUTME: Routes key input into uniform preview messages and publishes registry snapshots.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bradysimon/snowscape/preview"
)

// Publisher receives registry snapshots after each host update. The HTTP
// inspector implements this; a nil publisher disables publishing.
type Publisher interface {
	Publish([]preview.Info)
}

// AppModel is the root Bubble Tea model for the preview host.
type AppModel struct {
	registry  *preview.Registry
	cfg       Config
	publisher Publisher

	sidebar  SidebarModel
	messages MessagePaneModel
	params   ParamsPaneModel
	tab      ConfigTab

	width  int
	height int
}

// NewAppModel creates the host model over a registry. publisher may be nil.
func NewAppModel(registry *preview.Registry, cfg Config, publisher Publisher) AppModel {
	return AppModel{
		registry:  registry,
		cfg:       cfg,
		publisher: publisher,
		sidebar:   NewSidebarModel(),
		messages:  NewMessagePaneModel(),
		params:    NewParamsPaneModel(),
	}
}

// Init starts the cursor blink for the search input.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages: window sizing, key input, and uniform preview
// messages re-entering the loop from component commands.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar.SetSize(m.cfg.SidebarWidth, m.height)
		paneWidth := m.width - m.cfg.SidebarWidth
		m.messages.SetSize(paneWidth, m.cfg.ConfigPaneHeight)
		m.params.SetSize(paneWidth, m.cfg.ConfigPaneHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case preview.ComponentMsg:
		// A component command completed; deliver its message.
		cmd := m.dispatch(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

// handleKey routes a key press by focus, then tab, then global bindings,
// then the selected preview's own key bindings.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sidebar.Focused() {
		switch msg.Type {
		case tea.KeyEscape, tea.KeyEnter:
			m.sidebar.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}

	if m.tab == TabParameters {
		if p, ok := m.registry.Selected(); ok {
			if m.params.Editing() {
				var out tea.Msg
				m.params, out = m.params.HandleKey(msg, p.Params())
				return m, m.dispatchIf(out)
			}
			switch msg.String() {
			case "up", "down", "j", "k", "+", "=", "-", " ", "enter", "e", "c", "0":
				var out tea.Msg
				m.params, out = m.params.HandleKey(msg, p.Params())
				return m, m.dispatchIf(out)
			}
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.sidebar.Focus()
		return m, textinput.Blink
	case "tab":
		m.tab = m.tab.Next()
		return m, nil
	case "r":
		return m, m.dispatch(preview.ResetPreviewMsg{})
	case "up", "k":
		return m, m.moveSelection(-1)
	case "down", "j":
		return m, m.moveSelection(1)
	case "left":
		return m, m.timeTravel(-1)
	case "right":
		return m, m.timeTravel(1)
	case "home":
		return m, m.dispatch(preview.TimeTravelMsg{Position: 0})
	case "end":
		return m, m.dispatch(preview.JumpToPresentMsg{})
	}

	// Component-declared bindings on the selected preview. Bindings avoids
	// View so the lookup does not record a spurious view sample.
	if p, ok := m.registry.Selected(); ok {
		for _, binding := range p.Bindings() {
			if binding.Press == msg.String() {
				return m, m.dispatch(binding.Msg)
			}
		}
	}

	return m, nil
}

// moveSelection steps the sidebar selection through the filtered item list
// and dispatches the resulting SelectPreviewMsg.
func (m *AppModel) moveSelection(direction int) tea.Cmd {
	items := m.registry.Items(m.sidebar.Query())
	if len(items) == 0 {
		return nil
	}

	current := -1
	for i, item := range items {
		if item.Index == m.registry.SelectedIndex() {
			current = i
			break
		}
	}

	next := current + direction
	if current < 0 {
		// Selection filtered out; jump to an end of the visible list.
		next = 0
		if direction < 0 {
			next = len(items) - 1
		}
	}
	if next < 0 || next >= len(items) {
		return nil
	}
	return m.dispatch(preview.SelectPreviewMsg{Index: items[next].Index})
}

// timeTravel steps the selected preview's timeline position by one.
func (m *AppModel) timeTravel(direction int) tea.Cmd {
	p, ok := m.registry.Selected()
	if !ok {
		return nil
	}
	tl, ok := p.Timeline()
	if !ok {
		return nil
	}
	return m.dispatch(preview.TimeTravelMsg{Position: tl.Position + direction})
}

// dispatch routes a uniform message through the registry and publishes the
// refreshed snapshot.
func (m *AppModel) dispatch(msg tea.Msg) tea.Cmd {
	cmd := m.registry.Update(msg)
	if m.publisher != nil {
		m.publisher.Publish(m.registry.Snapshot())
	}
	return cmd
}

func (m *AppModel) dispatchIf(msg tea.Msg) tea.Cmd {
	if msg == nil {
		return nil
	}
	return m.dispatch(msg)
}

// View composes the sidebar, preview area, and config pane.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sidebar := m.sidebar.View(m.registry.Items(m.sidebar.Query()), m.registry.SelectedIndex())

	paneWidth := m.width - m.cfg.SidebarWidth
	previewHeight := m.height - m.cfg.ConfigPaneHeight
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.previewArea(paneWidth, previewHeight),
		m.configPane(paneWidth),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)
}

// previewArea renders the selected preview's body with its key help footer.
func (m AppModel) previewArea(width, height int) string {
	p, ok := m.registry.Selected()
	if !ok {
		return BorderStyle.Width(width - 2).Height(height - 2).
			Render("No previews registered.")
	}

	el := p.View()
	body := el.Body

	if len(el.Keys) > 0 {
		var helps []string
		for _, k := range el.Keys {
			helps = append(helps, fmt.Sprintf("%s %s", k.Press, k.Help))
		}
		body += "\n\n" + HelpStyle.Render(strings.Join(helps, " · "))
	}

	return BorderStyle.Width(width - 2).Height(height - 2).Render(body)
}

// configPane renders the tab bar and the active tab's content.
func (m AppModel) configPane(width int) string {
	var tabs []string
	for _, t := range []ConfigTab{TabAbout, TabMessages, TabParameters, TabPerformance} {
		label := " " + t.String() + " "
		if t == m.tab {
			tabs = append(tabs, SelectedItemStyle.Render(label))
		} else {
			tabs = append(tabs, ItemStyle.Render(label))
		}
	}
	bar := strings.Join(tabs, " ")

	content := "No previews registered."
	if p, ok := m.registry.Selected(); ok {
		switch m.tab {
		case TabAbout:
			content = aboutPane(p.Metadata())
		case TabMessages:
			content = m.messages.View(p)
		case TabParameters:
			content = m.params.View(p.Params())
		case TabPerformance:
			content = performancePane(p, m.cfg.SlowCallThreshold())
		}
	}

	return BorderStyle.Width(width - 2).Height(m.cfg.ConfigPaneHeight - 2).
		Render(bar + "\n\n" + content)
}
