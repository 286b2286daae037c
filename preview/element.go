// ABOUTME: Content[M] is the typed render result of a component view: a body plus key bindings.
// ABOUTME: MapContent and MapCmd rewrap typed messages into the uniform envelope for the host loop.
package preview

import tea "github.com/charmbracelet/bubbletea"

// Key is an interactive binding in a component's rendered content: pressing
// Press emits Msg into the component's update function.
type Key[M any] struct {
	Press string // key name as reported by tea.KeyMsg.String()
	Help  string
	Msg   M
}

// Content is what a component's view function produces: rendered text plus
// the typed messages its interactive regions emit.
type Content[M any] struct {
	Body string
	Keys []Key[M]
}

// Binding is the uniform counterpart of Key: its message is already wrapped
// for dispatch through the host.
type Binding struct {
	Press string
	Help  string
	Msg   tea.Msg
}

// Element is the uniform renderable handed to the host: a body plus bindings
// whose messages the host can dispatch without knowing the component's types.
type Element struct {
	Body string
	Keys []Binding
}

// Cmd is a typed outgoing task: a deferred computation yielding one message
// of the component's own type. A nil Cmd means no follow-up work.
type Cmd[M any] func() M

// MapContent rewraps a typed Content into a uniform Element, boxing every
// emitted message in a ComponentMsg envelope.
func MapContent[M any](c Content[M]) Element {
	el := Element{Body: c.Body}
	for _, k := range c.Keys {
		el.Keys = append(el.Keys, Binding{
			Press: k.Press,
			Help:  k.Help,
			Msg:   Component(k.Msg),
		})
	}
	return el
}

// MapCmd converts a typed Cmd into a tea.Cmd whose yielded message re-enters
// the host loop as a ComponentMsg.
func MapCmd[M any](c Cmd[M]) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return Component(c())
	}
}
