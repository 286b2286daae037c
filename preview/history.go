// ABOUTME: History is an append-only, position-indexed log of a preview's emitted messages.
// ABOUTME: Implements the live/historical state machine backing time travel and replay.
package preview

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Entry is one recorded message as exposed to external viewers: a stable ID
// for addressing plus the human-readable trace.
type Entry struct {
	ID    string
	Trace string
}

// History records every message a preview has emitted along with a trace of
// each, and tracks the position the user is currently viewing. The history is
// live when position equals the number of messages; it is historical when the
// position is behind the most recent message.
//
// Push is only legal while live. The dispatch layer enforces this by dropping
// component messages that arrive while historical, so History itself does not
// re-check it.
type History[M any] struct {
	messages []M
	traces   []string
	ids      []string
	position int
}

// Push appends a message and its trace, keeping the history live.
func (h *History[M]) Push(msg M) {
	h.messages = append(h.messages, msg)
	h.traces = append(h.traces, fmt.Sprintf("%+v", msg))
	h.ids = append(h.ids, ulid.Make().String())
	h.position = len(h.messages)
}

// Len returns the number of recorded messages.
func (h *History[M]) Len() int {
	return len(h.messages)
}

// Position returns the currently viewed position, in [0, Len()].
func (h *History[M]) Position() int {
	return h.position
}

// IsLive reports whether the history is at its live edge.
func (h *History[M]) IsLive() bool {
	return h.position == len(h.messages)
}

// ChangePosition rewinds or advances the viewed position. Out-of-range
// positions are ignored and leave the history unchanged.
func (h *History[M]) ChangePosition(position int) {
	if position < 0 || position > len(h.messages) {
		return
	}
	h.position = position
}

// GoLive jumps the position forward to the live edge.
func (h *History[M]) GoLive() {
	h.position = len(h.messages)
}

// Reset clears all recorded messages, returning to the empty live state.
func (h *History[M]) Reset() {
	h.messages = nil
	h.traces = nil
	h.ids = nil
	h.position = 0
}

// Messages returns the full recorded message list, oldest first. Callers use
// it for deterministic replay and must not mutate it.
func (h *History[M]) Messages() []M {
	return h.messages
}

// Traces returns the traces of every recorded message.
func (h *History[M]) Traces() []string {
	return h.traces
}

// VisibleTraces returns only the traces whose effects are reflected in the
// currently displayed state: all of them while live, the first position
// entries while historical.
func (h *History[M]) VisibleTraces() []string {
	return h.traces[:h.position]
}

// Entries returns every recorded trace paired with its stable ID.
func (h *History[M]) Entries() []Entry {
	entries := make([]Entry, 0, len(h.traces))
	for i := range h.traces {
		entries = append(entries, Entry{ID: h.ids[i], Trace: h.traces[i]})
	}
	return entries
}

// VisibleEntries returns the visible traces paired with their stable IDs.
func (h *History[M]) VisibleEntries() []Entry {
	entries := make([]Entry, 0, h.position)
	for i := 0; i < h.position; i++ {
		entries = append(entries, Entry{ID: h.ids[i], Trace: h.traces[i]})
	}
	return entries
}

// Timeline returns the read-only UI projection of this history.
func (h *History[M]) Timeline() Timeline {
	return NewTimeline(h.position, len(h.messages))
}
