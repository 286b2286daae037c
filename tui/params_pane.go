// ABOUTME: ParamsPaneModel renders and edits the selected preview's parameter list.
// ABOUTME: Key handling emits ChangeParamMsg/ResetParamsMsg; malformed numeric input is a no-op.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bradysimon/snowscape/preview"
)

// ParamsPaneModel is the Parameters tab: a cursor over the parameter list
// with per-kind adjustment keys and a text input for freeform editing.
type ParamsPaneModel struct {
	cursor  int
	channel int // active color channel: 0=R 1=G 2=B 3=A
	editing bool
	input   textinput.Model
	width   int
	height  int
}

// NewParamsPaneModel creates a parameters pane.
func NewParamsPaneModel() ParamsPaneModel {
	input := textinput.New()
	input.CharLimit = 64
	return ParamsPaneModel{input: input}
}

// SetSize sets the pane's available dimensions.
func (m *ParamsPaneModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = w - 10
}

// Editing reports whether the pane is capturing freeform text input.
func (m ParamsPaneModel) Editing() bool {
	return m.editing
}

// HandleKey processes a key press against the given parameter list. It
// returns the updated pane and, when the key changes a parameter, the
// control message to dispatch into the preview runtime.
func (m ParamsPaneModel) HandleKey(msg tea.KeyMsg, params []preview.Param) (ParamsPaneModel, tea.Msg) {
	if len(params) == 0 {
		return m, nil
	}
	if m.cursor >= len(params) {
		m.cursor = len(params) - 1
	}

	if m.editing {
		return m.handleEditKey(msg, params)
	}

	current := params[m.cursor].Value

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
		return m, nil
	case "0":
		return m, preview.ResetParamsMsg{}
	case "e":
		switch current.Kind {
		case preview.KindText:
			m.editing = true
			m.input.SetValue(current.Text)
			m.input.Focus()
		case preview.KindInt:
			m.editing = true
			m.input.SetValue(fmt.Sprintf("%d", current.Int))
			m.input.Focus()
		}
		return m, nil
	case "c":
		if current.Kind == preview.KindColor {
			m.channel = (m.channel + 1) % 4
		}
		return m, nil
	case " ", "enter":
		switch current.Kind {
		case preview.KindBool:
			return m, preview.ChangeParamMsg{Index: m.cursor, Value: preview.BoolValue(!current.Bool)}
		case preview.KindSelect:
			return m, m.cycleSelect(current, 1)
		}
		return m, nil
	case "+", "=":
		return m, m.adjust(current, 1)
	case "-":
		return m, m.adjust(current, -1)
	}

	return m, nil
}

// handleEditKey routes keys while the text input is active. Enter commits;
// esc cancels. A numeric parse failure simply exits edit mode with no message.
func (m ParamsPaneModel) handleEditKey(msg tea.KeyMsg, params []preview.Param) (ParamsPaneModel, tea.Msg) {
	switch msg.Type {
	case tea.KeyEscape:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		text := m.input.Value()
		switch params[m.cursor].Value.Kind {
		case preview.KindText:
			return m, preview.ChangeParamMsg{Index: m.cursor, Value: preview.TextValue(text)}
		case preview.KindInt:
			n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
			if err != nil {
				return m, nil
			}
			return m, preview.ChangeParamMsg{Index: m.cursor, Value: preview.IntValue(int32(n))}
		}
		return m, nil
	}

	m.input, _ = m.input.Update(msg)
	return m, nil
}

// adjust produces the ChangeParamMsg for a +/- step on the current parameter.
func (m ParamsPaneModel) adjust(current preview.Value, direction int) tea.Msg {
	switch current.Kind {
	case preview.KindInt:
		return preview.ChangeParamMsg{Index: m.cursor, Value: preview.IntValue(current.Int + int32(direction))}
	case preview.KindSlider:
		step := (current.Max - current.Min) / 20
		if step <= 0 {
			step = 1
		}
		return preview.ChangeParamMsg{
			Index: m.cursor,
			Value: preview.SliderValue(current.Current+float64(direction)*step, current.Min, current.Max),
		}
	case preview.KindSelect:
		return m.cycleSelect(current, direction)
	case preview.KindColor:
		channels := [4]float64{current.R, current.G, current.B, current.A}
		channels[m.channel] += float64(direction) * 0.05
		return preview.ChangeParamMsg{
			Index: m.cursor,
			Value: preview.ColorValue(channels[0], channels[1], channels[2], channels[3]),
		}
	}
	return nil
}

// cycleSelect steps a select parameter through its options with wrap-around.
func (m ParamsPaneModel) cycleSelect(current preview.Value, direction int) tea.Msg {
	if len(current.Options) == 0 {
		return nil
	}
	next := (current.Selected + direction + len(current.Options)) % len(current.Options)
	return preview.ChangeParamMsg{Index: m.cursor, Value: preview.SelectValue(next, current.Options)}
}

// View renders the parameter list with the cursor and per-kind value display.
func (m ParamsPaneModel) View(params []preview.Param) string {
	if len(params) == 0 {
		return "This preview has no adjustable parameters."
	}

	var b strings.Builder
	for i, param := range params {
		marker := "  "
		style := ValueStyle
		if i == m.cursor {
			marker = "> "
			style = ParamCursorStyle
		}
		b.WriteString(style.Render(marker + param.Name))
		b.WriteString("  ")
		if i == m.cursor && m.editing {
			b.WriteString(ParamEditingStyle.Render(m.input.View()))
		} else {
			b.WriteString(formatValue(param.Value, m.channel))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("j/k move · +/- adjust · space toggle/cycle · e edit · c channel · 0 reset"))
	return b.String()
}

// formatValue renders one parameter value for display.
func formatValue(v preview.Value, activeChannel int) string {
	switch v.Kind {
	case preview.KindBool:
		if v.Bool {
			return "on"
		}
		return "off"
	case preview.KindText:
		return fmt.Sprintf("%q", v.Text)
	case preview.KindInt:
		return fmt.Sprintf("%d", v.Int)
	case preview.KindSelect:
		if v.Selected >= 0 && v.Selected < len(v.Options) {
			return fmt.Sprintf("%s (%d/%d)", v.Options[v.Selected], v.Selected+1, len(v.Options))
		}
		return "-"
	case preview.KindSlider:
		return fmt.Sprintf("%.2f [%.1f..%.1f]", v.Current, v.Min, v.Max)
	case preview.KindColor:
		hex := colorful.Color{R: v.R, G: v.G, B: v.B}.Hex()
		names := [4]string{"R", "G", "B", "A"}
		return fmt.Sprintf("%s a=%.2f (%s)", hex, v.A, names[activeChannel])
	default:
		return "-"
	}
}
