// ABOUTME: Tests for the stateful preview: dispatch, recording, time travel, and replay determinism.
// ABOUTME: Uses a small counter component as the canonical stateful fixture.
package preview

import "testing"

// counterState and counterMsg form the test component used across preview tests.
type counterState struct {
	Count int
}

type counterMsg struct {
	Delta int
}

func counterUpdate(s *counterState, msg counterMsg) Cmd[counterMsg] {
	s.Count += msg.Delta
	return nil
}

func counterView(s *counterState) Content[counterMsg] {
	return Content[counterMsg]{
		Body: "count",
		Keys: []Key[counterMsg]{
			{Press: "+", Help: "increment", Msg: counterMsg{Delta: 1}},
			{Press: "-", Help: "decrement", Msg: counterMsg{Delta: -1}},
		},
	}
}

func newCounterPreview() *Stateful[counterState, counterMsg] {
	return NewStateful("Counter",
		func() counterState { return counterState{} },
		counterUpdate,
		counterView,
	)
}

func TestStateful_Update_AppliesComponentMessage(t *testing.T) {
	p := newCounterPreview()

	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 1}))

	if p.state.Count != 2 {
		t.Errorf("count = %d, want 2", p.state.Count)
	}
	if p.MessageCount() != 2 {
		t.Errorf("message count = %d, want 2", p.MessageCount())
	}
}

func TestStateful_Update_DropsMismatchedComponentMessage(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component("not a counter message"))

	if p.state.Count != 0 || p.MessageCount() != 0 {
		t.Errorf("state/history changed by mismatched message: count=%d messages=%d",
			p.state.Count, p.MessageCount())
	}
}

func TestStateful_TimeTravel_RebuildsStateFromBoot(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 10}))
	p.Update(Component(counterMsg{Delta: 100}))

	p.Update(TimeTravelMsg{Position: 2})
	if p.state.Count != 11 {
		t.Errorf("count at position 2 = %d, want 11", p.state.Count)
	}

	p.Update(TimeTravelMsg{Position: 0})
	if p.state.Count != 0 {
		t.Errorf("count at position 0 = %d, want 0", p.state.Count)
	}
}

func TestStateful_TimeTravel_OutOfRangeIgnored(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 1}))

	p.Update(TimeTravelMsg{Position: 9})
	tl, ok := p.Timeline()
	if !ok {
		t.Fatal("expected a timeline")
	}
	if tl.Position != 2 || p.state.Count != 2 {
		t.Errorf("position/count = %d/%d, want 2/2 unchanged", tl.Position, p.state.Count)
	}
}

func TestStateful_Update_IgnoresComponentMessagesWhileHistorical(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(TimeTravelMsg{Position: 1})

	p.Update(Component(counterMsg{Delta: 100}))

	if p.MessageCount() != 2 {
		t.Errorf("message count = %d, want 2 (no recording while historical)", p.MessageCount())
	}
	if p.state.Count != 1 {
		t.Errorf("count = %d, want 1 (message dropped while historical)", p.state.Count)
	}
}

func TestStateful_JumpToPresent_ReplaysToLiveEdge(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 10}))
	p.Update(TimeTravelMsg{Position: 0})

	p.Update(JumpToPresentMsg{})

	tl, _ := p.Timeline()
	if !tl.IsLive() {
		t.Error("expected live after jump to present")
	}
	if p.state.Count != 11 {
		t.Errorf("count = %d, want 11", p.state.Count)
	}
}

func TestStateful_ReplayDeterminism(t *testing.T) {
	p := newCounterPreview()
	deltas := []int{1, 2, 3, 4, 5}
	for _, d := range deltas {
		p.Update(Component(counterMsg{Delta: d}))
	}
	before := p.state

	p.Update(TimeTravelMsg{Position: 2})
	p.Update(JumpToPresentMsg{})

	if p.state != before {
		t.Errorf("state after rewind+replay = %+v, want %+v", p.state, before)
	}
}

func TestStateful_VisibleMessages_WindowFollowsPosition(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 2}))

	p.Update(TimeTravelMsg{Position: 1})
	visible := p.VisibleMessages()
	if len(visible) != 1 {
		t.Fatalf("visible = %d traces, want 1", len(visible))
	}
	if visible[0] != "{Delta:1}" {
		t.Errorf("visible[0] = %q, want {Delta:1}", visible[0])
	}

	p.Update(JumpToPresentMsg{})
	if len(p.VisibleMessages()) != 2 {
		t.Errorf("visible after jump = %d traces, want 2", len(p.VisibleMessages()))
	}
}

func TestStateful_Reset_ClearsStateHistoryAndMetrics(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 5}))
	p.View()

	p.Update(ResetPreviewMsg{})

	if p.state.Count != 0 || p.MessageCount() != 0 {
		t.Errorf("count/messages after reset = %d/%d, want 0/0", p.state.Count, p.MessageCount())
	}
	perf := p.Performance()
	if perf.ViewCount() != 0 || perf.UpdateCount() != 0 {
		t.Errorf("perf counts after reset = %d/%d, want 0/0", perf.ViewCount(), perf.UpdateCount())
	}
}

func TestStateful_Update_MapsOutgoingCommandIntoEnvelope(t *testing.T) {
	type echoState struct{}
	type echoMsg struct {
		Text string
	}
	p := NewStateful("Echo",
		func() echoState { return echoState{} },
		func(_ *echoState, msg echoMsg) Cmd[echoMsg] {
			return func() echoMsg { return echoMsg{Text: msg.Text + "!"} }
		},
		func(*echoState) Content[echoMsg] { return Content[echoMsg]{Body: "echo"} },
	)

	cmd := p.Update(Component(echoMsg{Text: "hi"}))
	if cmd == nil {
		t.Fatal("expected an outgoing command")
	}
	out, ok := cmd().(ComponentMsg)
	if !ok {
		t.Fatalf("command yielded %T, want ComponentMsg", cmd())
	}
	inner, ok := Unwrap[echoMsg](out.Payload)
	if !ok || inner.Text != "hi!" {
		t.Errorf("yielded payload = (%+v, %v), want ({hi!}, true)", inner, ok)
	}
}

func TestStateful_Replay_DoesNotRecordPerformance(t *testing.T) {
	p := newCounterPreview()
	p.Update(Component(counterMsg{Delta: 1}))
	p.Update(Component(counterMsg{Delta: 1}))
	recorded := p.Performance().UpdateCount()

	p.Update(TimeTravelMsg{Position: 0})
	p.Update(JumpToPresentMsg{})

	if p.Performance().UpdateCount() != recorded {
		t.Errorf("update samples after replay = %d, want %d (replay must not record)",
			p.Performance().UpdateCount(), recorded)
	}
}

func TestStateful_View_RecordsSampleAndMapsKeys(t *testing.T) {
	p := newCounterPreview()
	el := p.View()

	if el.Body != "count" {
		t.Errorf("body = %q, want count", el.Body)
	}
	if len(el.Keys) != 2 {
		t.Fatalf("keys = %d, want 2", len(el.Keys))
	}
	msg, ok := el.Keys[0].Msg.(ComponentMsg)
	if !ok {
		t.Fatalf("key message is %T, want ComponentMsg", el.Keys[0].Msg)
	}
	if inner, ok := Unwrap[counterMsg](msg.Payload); !ok || inner.Delta != 1 {
		t.Errorf("key payload = (%+v, %v), want ({1}, true)", inner, ok)
	}
	if p.Performance().ViewCount() != 1 {
		t.Errorf("view samples = %d, want 1", p.Performance().ViewCount())
	}
}

func TestStateful_Metadata_Builders(t *testing.T) {
	p := newCounterPreview().
		WithDescription("A counter that increments when the button is pressed").
		WithGroup("Widgets").
		WithTags("counter", "stateful")

	meta := p.Metadata()
	if meta.Label != "Counter" || meta.Group != "Widgets" {
		t.Errorf("metadata = %+v, want label Counter group Widgets", meta)
	}
	if len(meta.Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", meta.Tags)
	}
	if !meta.Matches("stateful") {
		t.Error("expected tag search to match")
	}
}
