// ABOUTME: Timeline is the read-only UI projection of a History: current position and message count.
// ABOUTME: Position 0 is the initial state; position Count is the live edge.
package preview

// Timeline describes where in a preview's history the user currently is.
type Timeline struct {
	// Position is the index of the currently viewed state, in [0, Count].
	Position int
	// Count is the number of recorded messages.
	Count int
}

// NewTimeline creates a Timeline, clamping position into [0, count].
func NewTimeline(position, count int) Timeline {
	if count < 0 {
		count = 0
	}
	if position < 0 {
		position = 0
	}
	if position > count {
		position = count
	}
	return Timeline{Position: position, Count: count}
}

// IsLive reports whether the timeline is at the most recent state.
func (t Timeline) IsLive() bool {
	return t.Position == t.Count
}
