// ABOUTME: The closed parameter value union (Value) and the typed adapters backing each kind.
// ABOUTME: Adapters are the source of truth; Param is the display/edit projection handed to the UI.
package preview

import "fmt"

// ValueKind discriminates the closed set of parameter value kinds.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindText
	KindInt
	KindSelect
	KindSlider
	KindColor
)

// String returns the kind's display name.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindInt:
		return "number"
	case KindSelect:
		return "select"
	case KindSlider:
		return "slider"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the closed set of adjustable parameter kinds.
// Only the fields for the active Kind are meaningful.
type Value struct {
	Kind ValueKind

	// KindBool
	Bool bool
	// KindText
	Text string
	// KindInt
	Int int32
	// KindSelect
	Selected int
	Options  []string
	// KindSlider
	Current float64
	Min     float64
	Max     float64
	// KindColor, each channel in [0, 1]
	R, G, B, A float64
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// TextValue creates a text Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IntValue creates a number Value.
func IntValue(n int32) Value {
	return Value{Kind: KindInt, Int: n}
}

// SelectValue creates a selection Value from a selected index and its option labels.
func SelectValue(selected int, options []string) Value {
	return Value{Kind: KindSelect, Selected: selected, Options: options}
}

// SliderValue creates a slider Value with current clamped into [min, max].
func SliderValue(current, min, max float64) Value {
	return Value{Kind: KindSlider, Current: clamp(current, min, max), Min: min, Max: max}
}

// ColorValue creates a color Value with each channel clamped into [0, 1].
func ColorValue(r, g, b, a float64) Value {
	return Value{
		Kind: KindColor,
		R:    clamp(r, 0, 1),
		G:    clamp(g, 0, 1),
		B:    clamp(b, 0, 1),
		A:    clamp(a, 0, 1),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Param is a named current value for UI display and positional editing.
type Param struct {
	Name  string
	Value Value
}

// Adapter is a single typed parameter. It owns the typed value, projects it
// as a Param for the UI, and applies position-routed Value updates. Apply
// ignores values whose kind does not match the adapter's kind.
//
// Every adapter also satisfies ParamSet, so a lone adapter can serve as a
// one-element parameter set.
type Adapter[T any] interface {
	Name() string
	ToParam() Param
	Apply(Value)
	Reset()
	Value() T
}

// TextParam is a text parameter producing string values.
type TextParam struct {
	name    string
	value   string
	initial string
}

// Text creates a text parameter with the given name and default value.
func Text(name, value string) *TextParam {
	return &TextParam{name: name, value: value, initial: value}
}

func (p *TextParam) Name() string { return p.name }

func (p *TextParam) ToParam() Param {
	return Param{Name: p.name, Value: TextValue(p.value)}
}

func (p *TextParam) Apply(v Value) {
	if v.Kind == KindText {
		p.value = v.Text
	}
}

func (p *TextParam) Reset() { p.value = p.initial }

func (p *TextParam) Value() string { return p.value }

func (p *TextParam) ToParams() []Param { return []Param{p.ToParam()} }

func (p *TextParam) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *TextParam) Extract() string { return p.value }

// NumberParam is a numeric parameter producing int32 values.
type NumberParam struct {
	name    string
	value   int32
	initial int32
}

// Number creates a numeric parameter with the given name and default value.
func Number(name string, value int32) *NumberParam {
	return &NumberParam{name: name, value: value, initial: value}
}

func (p *NumberParam) Name() string { return p.name }

func (p *NumberParam) ToParam() Param {
	return Param{Name: p.name, Value: IntValue(p.value)}
}

func (p *NumberParam) Apply(v Value) {
	if v.Kind == KindInt {
		p.value = v.Int
	}
}

func (p *NumberParam) Reset() { p.value = p.initial }

func (p *NumberParam) Value() int32 { return p.value }

func (p *NumberParam) ToParams() []Param { return []Param{p.ToParam()} }

func (p *NumberParam) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *NumberParam) Extract() int32 { return p.value }

// BoolParam is a boolean parameter producing bool values.
type BoolParam struct {
	name    string
	value   bool
	initial bool
}

// Boolean creates a boolean parameter with the given name and default value.
func Boolean(name string, value bool) *BoolParam {
	return &BoolParam{name: name, value: value, initial: value}
}

func (p *BoolParam) Name() string { return p.name }

func (p *BoolParam) ToParam() Param {
	return Param{Name: p.name, Value: BoolValue(p.value)}
}

func (p *BoolParam) Apply(v Value) {
	if v.Kind == KindBool {
		p.value = v.Bool
	}
}

func (p *BoolParam) Reset() { p.value = p.initial }

func (p *BoolParam) Value() bool { return p.value }

func (p *BoolParam) ToParams() []Param { return []Param{p.ToParam()} }

func (p *BoolParam) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *BoolParam) Extract() bool { return p.value }

// SelectParam is a selection over a fixed list of options, producing the
// selected option value.
type SelectParam[T comparable] struct {
	name     string
	options  []T
	labels   []string
	selected int
	initial  int
}

// Select creates a selection parameter. The provided default must be one of
// the supplied options; anything else is a programming error and panics at
// construction rather than surfacing as a runtime failure.
func Select[T comparable](name string, options []T, value T) *SelectParam[T] {
	labels := make([]string, len(options))
	selected := -1
	for i, opt := range options {
		labels[i] = fmt.Sprint(opt)
		if opt == value {
			selected = i
		}
	}
	if selected < 0 {
		panic(fmt.Sprintf("preview: select %q default %v is not among its options", name, value))
	}
	return &SelectParam[T]{
		name:     name,
		options:  options,
		labels:   labels,
		selected: selected,
		initial:  selected,
	}
}

func (p *SelectParam[T]) Name() string { return p.name }

func (p *SelectParam[T]) ToParam() Param {
	return Param{Name: p.name, Value: SelectValue(p.selected, p.labels)}
}

// Apply updates the selection when the value is a select with an index valid
// for this adapter's own options. Out-of-range indices are ignored.
func (p *SelectParam[T]) Apply(v Value) {
	if v.Kind != KindSelect {
		return
	}
	if v.Selected < 0 || v.Selected >= len(p.options) {
		return
	}
	p.selected = v.Selected
}

func (p *SelectParam[T]) Reset() { p.selected = p.initial }

func (p *SelectParam[T]) Value() T { return p.options[p.selected] }

func (p *SelectParam[T]) ToParams() []Param { return []Param{p.ToParam()} }

func (p *SelectParam[T]) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *SelectParam[T]) Extract() T { return p.Value() }

// SliderParam is a bounded float parameter producing float64 values.
type SliderParam struct {
	name    string
	value   float64
	initial float64
	min     float64
	max     float64
}

// Slider creates a slider parameter over [min, max]. The default and every
// later update are clamped into the range; out-of-range input is corrected,
// not rejected.
func Slider(name string, min, max, value float64) *SliderParam {
	value = clamp(value, min, max)
	return &SliderParam{name: name, value: value, initial: value, min: min, max: max}
}

func (p *SliderParam) Name() string { return p.name }

func (p *SliderParam) ToParam() Param {
	return Param{Name: p.name, Value: SliderValue(p.value, p.min, p.max)}
}

// Apply clamps the incoming current value into this adapter's own range,
// ignoring whatever range the message carried.
func (p *SliderParam) Apply(v Value) {
	if v.Kind == KindSlider {
		p.value = clamp(v.Current, p.min, p.max)
	}
}

func (p *SliderParam) Reset() { p.value = p.initial }

func (p *SliderParam) Value() float64 { return p.value }

// Range returns the slider's [min, max] bounds.
func (p *SliderParam) Range() (min, max float64) { return p.min, p.max }

func (p *SliderParam) ToParams() []Param { return []Param{p.ToParam()} }

func (p *SliderParam) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *SliderParam) Extract() float64 { return p.value }

// RGBA is a color with float channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// ColorParam is a color parameter producing RGBA values.
type ColorParam struct {
	name    string
	value   RGBA
	initial RGBA
}

// Color creates a color parameter, clamping every channel into [0, 1].
func Color(name string, value RGBA) *ColorParam {
	value = clampRGBA(value)
	return &ColorParam{name: name, value: value, initial: value}
}

func clampRGBA(c RGBA) RGBA {
	return RGBA{
		R: clamp(c.R, 0, 1),
		G: clamp(c.G, 0, 1),
		B: clamp(c.B, 0, 1),
		A: clamp(c.A, 0, 1),
	}
}

func (p *ColorParam) Name() string { return p.name }

func (p *ColorParam) ToParam() Param {
	return Param{Name: p.name, Value: ColorValue(p.value.R, p.value.G, p.value.B, p.value.A)}
}

func (p *ColorParam) Apply(v Value) {
	if v.Kind == KindColor {
		p.value = clampRGBA(RGBA{R: v.R, G: v.G, B: v.B, A: v.A})
	}
}

func (p *ColorParam) Reset() { p.value = p.initial }

func (p *ColorParam) Value() RGBA { return p.value }

func (p *ColorParam) ToParams() []Param { return []Param{p.ToParam()} }

func (p *ColorParam) UpdateAt(index int, v Value) {
	if index == 0 {
		p.Apply(v)
	}
}

func (p *ColorParam) Extract() RGBA { return p.value }
