// ABOUTME: Dynamic previews compose an extractable parameter set with an inner preview.
// ABOUTME: ChangeParam/ResetParams are intercepted here; everything else delegates inward.
package preview

import tea "github.com/charmbracelet/bubbletea"

// Dynamic wraps an inner preview with adjustable parameters. On every
// parameter change it regenerates the inner preview from the freshly
// extracted values; the previous render is discarded.
type Dynamic[V any] struct {
	params       Extractor[V]
	cachedParams []Param
	generate     func(V) Preview
	inner        Preview
}

// NewDynamic creates a dynamic preview from a parameter set and a generator
// that builds the inner preview from extracted values. Combine it with
// NewStateless or NewStateful for the inner preview.
func NewDynamic[V any](params Extractor[V], generate func(V) Preview) *Dynamic[V] {
	return &Dynamic[V]{
		params:       params,
		cachedParams: params.ToParams(),
		generate:     generate,
		inner:        generate(params.Extract()),
	}
}

// NewDynamicStateless creates a dynamic preview whose inner preview is a
// stateless render of the extracted values.
func NewDynamicStateless[V any, M any](label string, params Extractor[V], viewFn func(V) Content[M]) *Dynamic[V] {
	return NewDynamic(params, func(values V) Preview {
		return NewStatelessWith(label, values, viewFn)
	})
}

func (d *Dynamic[V]) Metadata() Metadata {
	return d.inner.Metadata()
}

func (d *Dynamic[V]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ChangeParamMsg:
		d.params.UpdateAt(msg.Index, msg.Value)
		d.regenerate()
		return nil
	case ResetParamsMsg:
		d.params.Reset()
		d.regenerate()
		return nil
	}
	return d.inner.Update(msg)
}

func (d *Dynamic[V]) regenerate() {
	d.cachedParams = d.params.ToParams()
	d.inner = d.generate(d.params.Extract())
}

func (d *Dynamic[V]) View() Element {
	return d.inner.View()
}

func (d *Dynamic[V]) Bindings() []Binding {
	return d.inner.Bindings()
}

func (d *Dynamic[V]) MessageCount() int {
	return d.inner.MessageCount()
}

func (d *Dynamic[V]) VisibleMessages() []string {
	return d.inner.VisibleMessages()
}

func (d *Dynamic[V]) VisibleEntries() []Entry {
	return d.inner.VisibleEntries()
}

func (d *Dynamic[V]) Timeline() (Timeline, bool) {
	return d.inner.Timeline()
}

func (d *Dynamic[V]) Params() []Param {
	return d.cachedParams
}

func (d *Dynamic[V]) Performance() *Performance {
	return d.inner.Performance()
}

// DynamicStateful is a stateful preview whose boot and view functions are
// parameterized by the extracted values. A parameter change re-caches the
// values without touching state; a reset boots with the current selection,
// so resetting preserves the chosen parameters.
type DynamicStateful[State any, M any, V any] struct {
	params       Extractor[V]
	cachedParams []Param
	cachedValues V
	boot         func(V) State
	state        State
	updateFn     func(*State, M) Cmd[M]
	viewFn       func(*State, V) Content[M]
	history      History[M]
	perf         Performance
	meta         Metadata
}

// NewDynamicStateful creates a parameter-driven stateful preview.
func NewDynamicStateful[State any, M any, V any](
	label string,
	params Extractor[V],
	boot func(V) State,
	updateFn func(*State, M) Cmd[M],
	viewFn func(*State, V) Content[M],
) *DynamicStateful[State, M, V] {
	values := params.Extract()
	return &DynamicStateful[State, M, V]{
		params:       params,
		cachedParams: params.ToParams(),
		cachedValues: values,
		boot:         boot,
		state:        boot(values),
		updateFn:     updateFn,
		viewFn:       viewFn,
		meta:         NewMetadata(label),
	}
}

// WithDescription sets the preview's description.
func (d *DynamicStateful[State, M, V]) WithDescription(description string) *DynamicStateful[State, M, V] {
	d.meta.Description = description
	return d
}

// WithGroup sets the preview's group.
func (d *DynamicStateful[State, M, V]) WithGroup(group string) *DynamicStateful[State, M, V] {
	d.meta.Group = group
	return d
}

// WithTags sets the preview's tags.
func (d *DynamicStateful[State, M, V]) WithTags(tags ...string) *DynamicStateful[State, M, V] {
	d.meta.Tags = tags
	return d
}

func (d *DynamicStateful[State, M, V]) Metadata() Metadata {
	return d.meta
}

func (d *DynamicStateful[State, M, V]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ComponentMsg:
		if !d.history.IsLive() {
			return nil
		}
		m, ok := Unwrap[M](msg.Payload)
		if !ok {
			return nil
		}
		d.history.Push(m)
		cmd := RecordUpdate(&d.perf, func() Cmd[M] {
			return d.updateFn(&d.state, m)
		})
		return MapCmd(cmd)

	case ChangeParamMsg:
		d.params.UpdateAt(msg.Index, msg.Value)
		d.recache()
		return nil

	case ResetParamsMsg:
		d.params.Reset()
		d.recache()
		return nil

	case ResetPreviewMsg:
		d.state = d.boot(d.cachedValues)
		d.history.Reset()
		d.perf.Reset()
		return nil

	case TimeTravelMsg:
		d.history.ChangePosition(msg.Position)
		d.replayTo(d.history.Position())
		return nil

	case JumpToPresentMsg:
		if d.history.IsLive() {
			return nil
		}
		d.history.GoLive()
		d.replayTo(d.history.Position())
		return nil
	}

	return nil
}

func (d *DynamicStateful[State, M, V]) recache() {
	d.cachedParams = d.params.ToParams()
	d.cachedValues = d.params.Extract()
}

// replayTo rebuilds state from boot with the current parameter values and
// folds the recorded prefix forward, discarding replayed commands.
func (d *DynamicStateful[State, M, V]) replayTo(position int) {
	d.state = d.boot(d.cachedValues)
	for _, m := range d.history.Messages()[:position] {
		_ = d.updateFn(&d.state, m)
	}
}

func (d *DynamicStateful[State, M, V]) render() Element {
	return MapContent(d.viewFn(&d.state, d.cachedValues))
}

func (d *DynamicStateful[State, M, V]) View() Element {
	return RecordView(&d.perf, d.render)
}

// Bindings returns the current key bindings without recording a view sample.
func (d *DynamicStateful[State, M, V]) Bindings() []Binding {
	return d.render().Keys
}

func (d *DynamicStateful[State, M, V]) MessageCount() int {
	return d.history.Len()
}

func (d *DynamicStateful[State, M, V]) VisibleMessages() []string {
	return d.history.VisibleTraces()
}

func (d *DynamicStateful[State, M, V]) VisibleEntries() []Entry {
	return d.history.VisibleEntries()
}

func (d *DynamicStateful[State, M, V]) Timeline() (Timeline, bool) {
	return d.history.Timeline(), true
}

func (d *DynamicStateful[State, M, V]) Params() []Param {
	return d.cachedParams
}

func (d *DynamicStateful[State, M, V]) Performance() *Performance {
	return &d.perf
}
