// ABOUTME: Stateful preview with a full boot/update/view cycle, history recording, and time travel.
// ABOUTME: Replay is a deterministic fold of recorded messages over a freshly booted state.
package preview

import tea "github.com/charmbracelet/bubbletea"

// Stateful owns a boot closure, current state, and the component's update and
// view functions. Component messages are recorded in history while live and
// replayed deterministically on time travel.
type Stateful[State any, M any] struct {
	boot     func() State
	state    State
	updateFn func(*State, M) Cmd[M]
	viewFn   func(*State) Content[M]
	history  History[M]
	perf     Performance
	meta     Metadata
}

// NewStateful creates a stateful preview. The boot closure produces a fresh
// initial state; update and view are the component's own functions.
func NewStateful[State any, M any](
	label string,
	boot func() State,
	updateFn func(*State, M) Cmd[M],
	viewFn func(*State) Content[M],
) *Stateful[State, M] {
	return &Stateful[State, M]{
		boot:     boot,
		state:    boot(),
		updateFn: updateFn,
		viewFn:   viewFn,
		meta:     NewMetadata(label),
	}
}

// WithDescription sets the preview's description.
func (s *Stateful[State, M]) WithDescription(description string) *Stateful[State, M] {
	s.meta.Description = description
	return s
}

// WithGroup sets the preview's group.
func (s *Stateful[State, M]) WithGroup(group string) *Stateful[State, M] {
	s.meta.Group = group
	return s
}

// WithTags sets the preview's tags.
func (s *Stateful[State, M]) WithTags(tags ...string) *Stateful[State, M] {
	s.meta.Tags = tags
	return s
}

func (s *Stateful[State, M]) Metadata() Metadata {
	return s.meta
}

func (s *Stateful[State, M]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ComponentMsg:
		// Never record while historical: the live state machine would fork.
		if !s.history.IsLive() {
			return nil
		}
		m, ok := Unwrap[M](msg.Payload)
		if !ok {
			return nil
		}
		s.history.Push(m)
		cmd := RecordUpdate(&s.perf, func() Cmd[M] {
			return s.updateFn(&s.state, m)
		})
		return MapCmd(cmd)

	case ResetPreviewMsg:
		s.state = s.boot()
		s.history.Reset()
		s.perf.Reset()
		return nil

	case TimeTravelMsg:
		s.history.ChangePosition(msg.Position)
		s.replayTo(s.history.Position())
		return nil

	case JumpToPresentMsg:
		if s.history.IsLive() {
			return nil
		}
		s.history.GoLive()
		s.replayTo(s.history.Position())
		return nil
	}

	return nil
}

// replayTo rebuilds state from boot and folds the first position recorded
// messages forward, in original order. Commands produced by replayed updates
// are discarded, and no durations are recorded, so replay neither re-issues
// side effects nor corrupts the performance samples.
func (s *Stateful[State, M]) replayTo(position int) {
	s.state = s.boot()
	for _, m := range s.history.Messages()[:position] {
		_ = s.updateFn(&s.state, m)
	}
}

func (s *Stateful[State, M]) render() Element {
	return MapContent(s.viewFn(&s.state))
}

func (s *Stateful[State, M]) View() Element {
	return RecordView(&s.perf, s.render)
}

// Bindings returns the current key bindings without recording a view sample.
func (s *Stateful[State, M]) Bindings() []Binding {
	return s.render().Keys
}

func (s *Stateful[State, M]) MessageCount() int {
	return s.history.Len()
}

func (s *Stateful[State, M]) VisibleMessages() []string {
	return s.history.VisibleTraces()
}

func (s *Stateful[State, M]) VisibleEntries() []Entry {
	return s.history.VisibleEntries()
}

func (s *Stateful[State, M]) Timeline() (Timeline, bool) {
	return s.history.Timeline(), true
}

func (s *Stateful[State, M]) Params() []Param {
	return nil
}

func (s *Stateful[State, M]) Performance() *Performance {
	return &s.perf
}
