// ABOUTME: Tests for the parameters pane: key handling per value kind and edit mode.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bradysimon/snowscape/preview"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func showcaseParams() []preview.Param {
	set := preview.Tuple6[bool, int32, float64, string, string, preview.RGBA](
		preview.Boolean("enabled", false),
		preview.Number("count", 5),
		preview.Slider("scale", 0, 10, 5),
		preview.Select("mode", []string{"a", "b", "c"}, "a"),
		preview.Text("label", "hello"),
		preview.Color("tint", preview.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}),
	)
	return set.ToParams()
}

func TestParamsPane_EmptyParamListIgnoresKeys(t *testing.T) {
	pane := NewParamsPaneModel()
	_, msg := pane.HandleKey(runeKey('+'), nil)
	if msg != nil {
		t.Errorf("expected nil message for empty params, got %#v", msg)
	}
}

func TestParamsPane_SpaceTogglesBool(t *testing.T) {
	pane := NewParamsPaneModel()
	_, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, showcaseParams())

	change, ok := msg.(preview.ChangeParamMsg)
	if !ok {
		t.Fatalf("expected ChangeParamMsg, got %#v", msg)
	}
	if change.Index != 0 || change.Value.Kind != preview.KindBool || !change.Value.Bool {
		t.Errorf("change = %+v, want bool true at index 0", change)
	}
}

func TestParamsPane_PlusMinusStepsNumber(t *testing.T) {
	pane := NewParamsPaneModel()
	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, showcaseParams())

	_, msg := pane.HandleKey(runeKey('+'), showcaseParams())
	change, ok := msg.(preview.ChangeParamMsg)
	if !ok {
		t.Fatalf("expected ChangeParamMsg, got %#v", msg)
	}
	if change.Index != 1 || change.Value.Int != 6 {
		t.Errorf("change = %+v, want int 6 at index 1", change)
	}

	_, msg = pane.HandleKey(runeKey('-'), showcaseParams())
	if got := msg.(preview.ChangeParamMsg).Value.Int; got != 4 {
		t.Errorf("decrement = %d, want 4", got)
	}
}

func TestParamsPane_SliderStepsByTwentiethOfRange(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)

	_, msg := pane.HandleKey(runeKey('+'), params)
	change, ok := msg.(preview.ChangeParamMsg)
	if !ok {
		t.Fatalf("expected ChangeParamMsg, got %#v", msg)
	}
	if change.Value.Kind != preview.KindSlider {
		t.Fatalf("kind = %v, want slider", change.Value.Kind)
	}
	// Range 0..10, step 0.5.
	if change.Value.Current != 5.5 {
		t.Errorf("current = %v, want 5.5", change.Value.Current)
	}
}

func TestParamsPane_SelectCyclesWithWrapAround(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	for i := 0; i < 3; i++ {
		pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	}

	_, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, params)
	change := msg.(preview.ChangeParamMsg)
	if change.Value.Selected != 1 {
		t.Fatalf("selected = %d, want 1", change.Value.Selected)
	}

	// From the last option, stepping back wraps to the end.
	_, msg = pane.HandleKey(runeKey('-'), params)
	change = msg.(preview.ChangeParamMsg)
	if change.Value.Selected != 2 {
		t.Errorf("selected = %d, want wrap to 2", change.Value.Selected)
	}
}

func TestParamsPane_ZeroEmitsResetParams(t *testing.T) {
	pane := NewParamsPaneModel()
	_, msg := pane.HandleKey(runeKey('0'), showcaseParams())
	if _, ok := msg.(preview.ResetParamsMsg); !ok {
		t.Errorf("expected ResetParamsMsg, got %#v", msg)
	}
}

func TestParamsPane_ColorChannelCycleAndAdjust(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	for i := 0; i < 5; i++ {
		pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	}

	// Move the active channel to green, then adjust it.
	pane, _ = pane.HandleKey(runeKey('c'), params)
	_, msg := pane.HandleKey(runeKey('+'), params)

	change := msg.(preview.ChangeParamMsg)
	if change.Value.Kind != preview.KindColor {
		t.Fatalf("kind = %v, want color", change.Value.Kind)
	}
	if change.Value.G != 0.55 {
		t.Errorf("G = %v, want 0.55", change.Value.G)
	}
	if change.Value.R != 0.5 {
		t.Errorf("R = %v, want untouched 0.5", change.Value.R)
	}
}

func TestParamsPane_EditCommitsParsedNumber(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)

	pane, _ = pane.HandleKey(runeKey('e'), params)
	if !pane.Editing() {
		t.Fatal("expected edit mode after 'e' on a number param")
	}

	pane.input.SetValue("42")
	pane, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, params)
	if pane.Editing() {
		t.Error("expected edit mode to end on enter")
	}
	change, ok := msg.(preview.ChangeParamMsg)
	if !ok {
		t.Fatalf("expected ChangeParamMsg, got %#v", msg)
	}
	if change.Value.Int != 42 {
		t.Errorf("value = %d, want 42", change.Value.Int)
	}
}

func TestParamsPane_EditWithUnparsableNumberIsNoOp(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)

	pane, _ = pane.HandleKey(runeKey('e'), params)
	pane.input.SetValue("not a number")
	pane, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, params)

	if pane.Editing() {
		t.Error("expected edit mode to end even on parse failure")
	}
	if msg != nil {
		t.Errorf("expected no message on parse failure, got %#v", msg)
	}
}

func TestParamsPane_EditCommitsText(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	for i := 0; i < 4; i++ {
		pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	}

	pane, _ = pane.HandleKey(runeKey('e'), params)
	pane.input.SetValue("goodbye")
	_, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, params)

	change := msg.(preview.ChangeParamMsg)
	if change.Index != 4 || change.Value.Text != "goodbye" {
		t.Errorf("change = %+v, want text goodbye at index 4", change)
	}
}

func TestParamsPane_EscapeCancelsEdit(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()
	for i := 0; i < 4; i++ {
		pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	}

	pane, _ = pane.HandleKey(runeKey('e'), params)
	pane.input.SetValue("discarded")
	pane, msg := pane.HandleKey(tea.KeyMsg{Type: tea.KeyEscape}, params)

	if pane.Editing() {
		t.Error("expected edit mode to end on escape")
	}
	if msg != nil {
		t.Errorf("expected no message on cancel, got %#v", msg)
	}
}

func TestParamsPane_CursorClampsAtListEnds(t *testing.T) {
	pane := NewParamsPaneModel()
	params := showcaseParams()

	pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, params)
	if pane.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", pane.cursor)
	}

	for i := 0; i < 10; i++ {
		pane, _ = pane.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, params)
	}
	if pane.cursor != len(params)-1 {
		t.Errorf("cursor = %d, want clamped to %d", pane.cursor, len(params)-1)
	}
}
