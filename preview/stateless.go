// ABOUTME: Stateless preview: owned immutable data plus a view function over it.
// ABOUTME: Incoming component messages are recorded for display only; there is no state to mutate.
package preview

import tea "github.com/charmbracelet/bubbletea"

// Stateless renders a view function over optional owned data. It has no
// mutable state, so component messages it emits are only ever recorded in
// history for display, never fed back in.
type Stateless[Data any, M any] struct {
	data    Data
	viewFn  func(Data) Content[M]
	history History[M]
	perf    Performance
	meta    Metadata
}

// NewStateless creates a stateless preview from a plain view function.
func NewStateless[M any](label string, viewFn func() Content[M]) *Stateless[struct{}, M] {
	return NewStatelessWith(label, struct{}{}, func(struct{}) Content[M] {
		return viewFn()
	})
}

// NewStatelessWith creates a stateless preview whose view function borrows
// from owned data, useful for inline fixtures like a list of items.
func NewStatelessWith[Data any, M any](label string, data Data, viewFn func(Data) Content[M]) *Stateless[Data, M] {
	return &Stateless[Data, M]{
		data:   data,
		viewFn: viewFn,
		meta:   NewMetadata(label),
	}
}

// WithDescription sets the preview's description.
func (s *Stateless[Data, M]) WithDescription(description string) *Stateless[Data, M] {
	s.meta.Description = description
	return s
}

// WithGroup sets the preview's group.
func (s *Stateless[Data, M]) WithGroup(group string) *Stateless[Data, M] {
	s.meta.Group = group
	return s
}

// WithTags sets the preview's tags.
func (s *Stateless[Data, M]) WithTags(tags ...string) *Stateless[Data, M] {
	s.meta.Tags = tags
	return s
}

func (s *Stateless[Data, M]) Metadata() Metadata {
	return s.meta
}

func (s *Stateless[Data, M]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ComponentMsg:
		if m, ok := Unwrap[M](msg.Payload); ok {
			s.history.Push(m)
		}
	case ResetPreviewMsg:
		s.history.Reset()
		s.perf.Reset()
	}
	return nil
}

func (s *Stateless[Data, M]) render() Element {
	return MapContent(s.viewFn(s.data))
}

func (s *Stateless[Data, M]) View() Element {
	return RecordView(&s.perf, s.render)
}

// Bindings returns the current key bindings without recording a view sample.
func (s *Stateless[Data, M]) Bindings() []Binding {
	return s.render().Keys
}

func (s *Stateless[Data, M]) MessageCount() int {
	return s.history.Len()
}

func (s *Stateless[Data, M]) VisibleMessages() []string {
	return s.history.Traces()
}

func (s *Stateless[Data, M]) VisibleEntries() []Entry {
	return s.history.Entries()
}

// Timeline reports absent: a stateless preview has nothing to replay.
func (s *Stateless[Data, M]) Timeline() (Timeline, bool) {
	return Timeline{}, false
}

func (s *Stateless[Data, M]) Params() []Param {
	return nil
}

func (s *Stateless[Data, M]) Performance() *Performance {
	return &s.perf
}
