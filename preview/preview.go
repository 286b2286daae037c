// ABOUTME: The uniform Preview capability set implemented by stateless, stateful, and dynamic variants.
// ABOUTME: Everything is total: wrong-type messages and out-of-range requests are silent no-ops.
package preview

import tea "github.com/charmbracelet/bubbletea"

// Preview is the uniform dynamic interface over heterogeneous components.
// The registry holds previews through this interface only; each variant
// recovers its own concrete message type from the envelope inside Update.
type Preview interface {
	// Metadata returns the preview's display information.
	Metadata() Metadata

	// Update processes a uniform message. Component messages destined for a
	// different concrete type are dropped silently; control messages mutate
	// the preview's own bookkeeping. The returned command, if any, yields
	// messages already wrapped back into the uniform type.
	Update(msg tea.Msg) tea.Cmd

	// View renders the preview's current state as a uniform Element.
	View() Element

	// Bindings returns the key bindings of the current state without
	// recording a view duration sample, for hosts that need to look up a
	// binding outside of rendering.
	Bindings() []Binding

	// MessageCount returns the number of recorded messages.
	MessageCount() int

	// VisibleMessages returns the traces whose effects are reflected in the
	// currently displayed state.
	VisibleMessages() []string

	// VisibleEntries returns the visible traces paired with their stable
	// message IDs, for external viewers that address individual messages.
	VisibleEntries() []Entry

	// Timeline returns the history projection for UI scrubbing. The second
	// return is false for previews without time travel.
	Timeline() (Timeline, bool)

	// Params returns the adjustable parameter list, empty unless the preview
	// is parameter-driven.
	Params() []Param

	// Performance returns the latency recorder, or nil where not tracked.
	Performance() *Performance
}
