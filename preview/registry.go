// ABOUTME: Registry holds the uniform collection of previews, tracks selection, and routes messages.
// ABOUTME: Info snapshots expose registry state to external read-only viewers like the inspector.
package preview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Descriptor pairs a registered preview with a stable ID for external addressing.
type Descriptor struct {
	ID      string
	Preview Preview
}

// Registry is the host-side collection of previews. It forwards uniform
// messages to the selected preview and owns which preview is selected.
type Registry struct {
	entries  []Descriptor
	selected int
}

// NewRegistry creates an empty registry with nothing selected.
func NewRegistry() *Registry {
	return &Registry{selected: -1}
}

// Add registers a preview, assigning it a fresh ID. The first preview added
// becomes the selection. Returns the registry for chaining.
func (r *Registry) Add(p Preview) *Registry {
	r.entries = append(r.entries, Descriptor{ID: uuid.NewString(), Preview: p})
	if r.selected < 0 {
		r.selected = 0
	}
	return r
}

// Len returns the number of registered previews.
func (r *Registry) Len() int {
	return len(r.entries)
}

// SelectedIndex returns the index of the selected preview, or -1 when empty.
func (r *Registry) SelectedIndex() int {
	return r.selected
}

// Selected returns the selected preview, or false when the registry is empty.
func (r *Registry) Selected() (Preview, bool) {
	if r.selected < 0 || r.selected >= len(r.entries) {
		return nil, false
	}
	return r.entries[r.selected].Preview, true
}

// At returns the preview at the given index, or false when out of range.
func (r *Registry) At(index int) (Preview, bool) {
	if index < 0 || index >= len(r.entries) {
		return nil, false
	}
	return r.entries[index].Preview, true
}

// Update routes a uniform message. SelectPreviewMsg mutates the selection
// (out-of-range indices are ignored); every other message is forwarded to the
// selected preview's Update. Switching the selection simply stops delivering
// messages to the previous preview.
func (r *Registry) Update(msg tea.Msg) tea.Cmd {
	if sel, ok := msg.(SelectPreviewMsg); ok {
		if sel.Index >= 0 && sel.Index < len(r.entries) {
			r.selected = sel.Index
		}
		return nil
	}

	p, ok := r.Selected()
	if !ok {
		return nil
	}
	return p.Update(msg)
}

// Item is a sidebar listing entry: the preview's registry index, ID, and metadata.
type Item struct {
	Index int
	ID    string
	Meta  Metadata
}

// Items returns the previews matching the search query, in registration order.
func (r *Registry) Items(query string) []Item {
	var items []Item
	for i, d := range r.entries {
		if d.Preview.Metadata().Matches(query) {
			items = append(items, Item{Index: i, ID: d.ID, Meta: d.Preview.Metadata()})
		}
	}
	return items
}

// Info is an immutable snapshot of one preview's externally visible state,
// safe to hand to readers outside the host goroutine.
type Info struct {
	ID              string
	Selected        bool
	Metadata        Metadata
	MessageCount    int
	VisibleMessages []string
	Entries         []Entry
	Timeline        *Timeline
	Params          []Param
	ViewStats       Stats
	UpdateStats     Stats
	Indicator       Indicator
}

// Snapshot captures the externally visible state of every registered preview.
func (r *Registry) Snapshot() []Info {
	infos := make([]Info, 0, len(r.entries))
	for i, d := range r.entries {
		p := d.Preview
		info := Info{
			ID:           d.ID,
			Selected:     i == r.selected,
			Metadata:     p.Metadata(),
			MessageCount: p.MessageCount(),
			Params:       p.Params(),
		}
		// Copy the trace slice: the preview keeps appending to its backing array.
		info.VisibleMessages = append([]string(nil), p.VisibleMessages()...)
		info.Entries = p.VisibleEntries()
		if tl, ok := p.Timeline(); ok {
			info.Timeline = &tl
		}
		if perf := p.Performance(); perf != nil {
			info.ViewStats = perf.ViewStats()
			info.UpdateStats = perf.UpdateStats()
			info.Indicator = perf.Overall()
		}
		infos = append(infos, info)
	}
	return infos
}
