// ABOUTME: Envelope is a type-erased, clonable carrier for one component-specific message value.
// ABOUTME: Wrap boxes a concrete message; Unwrap recovers it by type identity, never by coercion.
package preview

import "fmt"

// Cloner lets message types with reference fields provide a deep copy.
// Plain value types do not need it; assignment already copies them.
type Cloner interface {
	CloneValue() any
}

// Envelope wraps exactly one concrete message value. It is created when a
// component's view emits a message and is owned by the dispatch path until
// consumed by exactly one Update call.
type Envelope struct {
	value any
}

// Wrap boxes a concrete message value into an Envelope.
func Wrap[M any](value M) Envelope {
	return Envelope{value: value}
}

// Unwrap recovers the original value if the envelope holds an M.
// The second return is false when the underlying type does not match.
func Unwrap[M any](e Envelope) (M, bool) {
	v, ok := e.value.(M)
	return v, ok
}

// Clone copies the envelope's payload, not the box. Nested envelopes are
// cloned by recursing into the concrete value so repeated cloning never
// grows the nesting depth.
func (e Envelope) Clone() Envelope {
	switch v := e.value.(type) {
	case Envelope:
		return Envelope{value: v.Clone()}
	case Cloner:
		return Envelope{value: v.CloneValue()}
	default:
		return Envelope{value: e.value}
	}
}

// String renders the payload for trace purposes.
func (e Envelope) String() string {
	if inner, ok := e.value.(Envelope); ok {
		return fmt.Sprintf("Envelope(%s)", inner.String())
	}
	return fmt.Sprintf("%+v", e.value)
}
