// ABOUTME: Tests for dynamic previews: regeneration on parameter change and the stateful variant.
// ABOUTME: Validates param caching, reset semantics, and delegation to the inner preview.
package preview

import "testing"

func newDynamicLabel() *Dynamic[string] {
	return NewDynamicStateless("Label", Text("Content", "Editable"),
		func(content string) Content[labelMsg] {
			return Content[labelMsg]{Body: content}
		})
}

func TestDynamic_ChangeParam_RegeneratesInnerPreview(t *testing.T) {
	d := newDynamicLabel()
	if d.View().Body != "Editable" {
		t.Fatalf("initial body = %q, want Editable", d.View().Body)
	}

	d.Update(ChangeParamMsg{Index: 0, Value: TextValue("Changed")})

	if d.View().Body != "Changed" {
		t.Errorf("body = %q, want Changed", d.View().Body)
	}
	params := d.Params()
	if len(params) != 1 || params[0].Value.Text != "Changed" {
		t.Errorf("cached params = %+v, want one text param Changed", params)
	}
}

func TestDynamic_ChangeParam_MismatchedKindIsNoOp(t *testing.T) {
	d := newDynamicLabel()
	d.Update(ChangeParamMsg{Index: 0, Value: IntValue(3)})
	if d.View().Body != "Editable" {
		t.Errorf("body = %q, want Editable unchanged", d.View().Body)
	}
}

func TestDynamic_ChangeParam_OutOfRangeIndexIsNoOp(t *testing.T) {
	d := newDynamicLabel()
	d.Update(ChangeParamMsg{Index: 5, Value: TextValue("nope")})
	if d.View().Body != "Editable" {
		t.Errorf("body = %q, want Editable unchanged", d.View().Body)
	}
}

func TestDynamic_ResetParams_RestoresDefaults(t *testing.T) {
	d := newDynamicLabel()
	d.Update(ChangeParamMsg{Index: 0, Value: TextValue("Changed")})

	d.Update(ResetParamsMsg{})

	if d.View().Body != "Editable" {
		t.Errorf("body after reset = %q, want Editable", d.View().Body)
	}
}

func TestDynamic_DelegatesOtherMessagesToInner(t *testing.T) {
	d := newDynamicLabel()
	d.Update(Component(labelMsg{Clicked: true}))
	if d.MessageCount() != 1 {
		t.Errorf("message count = %d, want 1 after delegation", d.MessageCount())
	}
	if _, ok := d.Timeline(); ok {
		t.Error("timeline should be absent for a stateless inner preview")
	}
	if d.Performance() == nil {
		t.Error("performance should delegate to the inner preview")
	}
}

func TestDynamic_TupleParams_PositionalUpdate(t *testing.T) {
	d := NewDynamicStateless("Badge",
		Tuple2[string, int32](Text("Label", "Items"), Number("Count", 3)),
		func(v Values2[string, int32]) Content[labelMsg] {
			return Content[labelMsg]{Body: v.V0}
		})

	d.Update(ChangeParamMsg{Index: 1, Value: IntValue(9)})

	params := d.Params()
	if params[0].Value.Text != "Items" {
		t.Errorf("param 0 = %+v, want unchanged Items", params[0].Value)
	}
	if params[1].Value.Int != 9 {
		t.Errorf("param 1 = %+v, want 9", params[1].Value)
	}
}

func newAdjustableCounter() *DynamicStateful[counterState, counterMsg, Values2[string, int32]] {
	return NewDynamicStateful("Adjustable counter",
		Tuple2[string, int32](Text("Label", "Count"), Number("Start", 0)),
		func(v Values2[string, int32]) counterState {
			return counterState{Count: int(v.V1)}
		},
		counterUpdate,
		func(s *counterState, v Values2[string, int32]) Content[counterMsg] {
			return Content[counterMsg]{Body: v.V0}
		},
	)
}

func TestDynamicStateful_ChangeParam_PreservesState(t *testing.T) {
	d := newAdjustableCounter()
	d.Update(Component(counterMsg{Delta: 5}))

	d.Update(ChangeParamMsg{Index: 0, Value: TextValue("Total")})

	if d.state.Count != 5 {
		t.Errorf("count = %d, want 5 preserved across param change", d.state.Count)
	}
	if d.View().Body != "Total" {
		t.Errorf("body = %q, want Total", d.View().Body)
	}
}

func TestDynamicStateful_Reset_BootsWithCurrentParams(t *testing.T) {
	d := newAdjustableCounter()
	d.Update(ChangeParamMsg{Index: 1, Value: IntValue(10)})
	d.Update(Component(counterMsg{Delta: 5}))

	d.Update(ResetPreviewMsg{})

	// Boot runs with the chosen start value, not the original default.
	if d.state.Count != 10 {
		t.Errorf("count after reset = %d, want 10", d.state.Count)
	}
	if d.MessageCount() != 0 {
		t.Errorf("message count after reset = %d, want 0", d.MessageCount())
	}
	if d.Params()[1].Value.Int != 10 {
		t.Errorf("param preserved = %+v, want 10", d.Params()[1].Value)
	}
}

func TestDynamicStateful_TimeTravel_ReplaysWithCurrentParams(t *testing.T) {
	d := newAdjustableCounter()
	d.Update(ChangeParamMsg{Index: 1, Value: IntValue(100)})
	d.Update(ResetPreviewMsg{})
	d.Update(Component(counterMsg{Delta: 1}))
	d.Update(Component(counterMsg{Delta: 2}))

	d.Update(TimeTravelMsg{Position: 1})
	if d.state.Count != 101 {
		t.Errorf("count at position 1 = %d, want 101 (boot 100 + first message)", d.state.Count)
	}

	d.Update(JumpToPresentMsg{})
	if d.state.Count != 103 {
		t.Errorf("count at live edge = %d, want 103", d.state.Count)
	}
}

func TestDynamicStateful_IgnoresComponentMessagesWhileHistorical(t *testing.T) {
	d := newAdjustableCounter()
	d.Update(Component(counterMsg{Delta: 1}))
	d.Update(Component(counterMsg{Delta: 1}))
	d.Update(TimeTravelMsg{Position: 1})

	d.Update(Component(counterMsg{Delta: 50}))

	if d.MessageCount() != 2 || d.state.Count != 1 {
		t.Errorf("messages/count = %d/%d, want 2/1", d.MessageCount(), d.state.Count)
	}
}

func TestDynamicStateful_ResetParams_RecachesAndKeepsState(t *testing.T) {
	d := newAdjustableCounter()
	d.Update(ChangeParamMsg{Index: 0, Value: TextValue("Total")})
	d.Update(Component(counterMsg{Delta: 2}))

	d.Update(ResetParamsMsg{})

	if d.Params()[0].Value.Text != "Count" {
		t.Errorf("param after reset = %+v, want default Count", d.Params()[0].Value)
	}
	if d.state.Count != 2 {
		t.Errorf("count = %d, want 2 (state untouched by param reset)", d.state.Count)
	}
}
