// ABOUTME: Uniform control messages the host dispatches into the preview runtime via Update.
// ABOUTME: Each type satisfies tea.Msg; ComponentMsg carries a type-erased component message.
package preview

// SelectPreviewMsg switches the registry's selected preview by index.
// Out-of-range indices are ignored.
type SelectPreviewMsg struct {
	Index int
}

// ResetPreviewMsg resets the selected preview's state, history, and metrics.
type ResetPreviewMsg struct{}

// ChangeParamMsg applies a new value to the parameter at the given position
// of a dynamic preview. Mismatched value kinds are ignored.
type ChangeParamMsg struct {
	Index int
	Value Value
}

// ResetParamsMsg restores a dynamic preview's parameters to their defaults.
type ResetParamsMsg struct{}

// TimeTravelMsg rewinds the selected preview's history to a past position.
// Out-of-range positions are ignored.
type TimeTravelMsg struct {
	Position int
}

// JumpToPresentMsg returns the selected preview to the live edge of its history.
type JumpToPresentMsg struct{}

// ComponentMsg carries a message emitted by the active preview's component,
// type-erased so the host can dispatch it uniformly.
type ComponentMsg struct {
	Payload Envelope
}

// Component wraps a concrete component message into a ComponentMsg.
func Component[M any](msg M) ComponentMsg {
	return ComponentMsg{Payload: Wrap(msg)}
}
