// ABOUTME: Demo preview registrations: stateless banners, counters, and parameter showcases.
// ABOUTME: Exercises every preview variant and every parameter kind in one registry.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bradysimon/snowscape/preview"
)

// counterMsg drives the counter component.
type counterMsg struct {
	Delta int
}

// counterState is the counter component's model.
type counterState struct {
	Value int
}

func counterUpdate(s *counterState, msg counterMsg) preview.Cmd[counterMsg] {
	s.Value += msg.Delta
	return nil
}

func counterView(s *counterState) preview.Content[counterMsg] {
	return preview.Content[counterMsg]{
		Body: fmt.Sprintf("Counter: %d", s.Value),
		Keys: []preview.Key[counterMsg]{
			{Press: "+", Help: "increment", Msg: counterMsg{Delta: 1}},
			{Press: "-", Help: "decrement", Msg: counterMsg{Delta: -1}},
		},
	}
}

// demoRegistry builds the registry served by the demo binary.
func demoRegistry() *preview.Registry {
	r := preview.NewRegistry()

	r.Add(preview.NewStateless("Welcome", func() preview.Content[struct{}] {
		return preview.Content[struct{}]{
			Body: "Welcome to snowscape.\n\nPick a preview from the sidebar to explore it.",
		}
	}).WithDescription("A static banner with **no** interaction.").WithGroup("Basics"))

	r.Add(preview.NewStateful("Counter",
		func() counterState { return counterState{} },
		counterUpdate,
		counterView,
	).WithDescription("A counter with full message history and time travel.").
		WithGroup("Basics").
		WithTags("stateful", "history"))

	r.Add(preview.NewDynamicStateless("Greeting",
		preview.Tuple2[string, bool](
			preview.Text("name", "world"),
			preview.Boolean("shout", false),
		),
		func(v preview.Values2[string, bool]) preview.Content[struct{}] {
			greeting := fmt.Sprintf("Hello, %s!", v.V0)
			if v.V1 {
				greeting = strings.ToUpper(greeting)
			}
			return preview.Content[struct{}]{Body: greeting}
		},
	).WithDescription("A stateless view regenerated from its parameters.").
		WithGroup("Dynamic"))

	r.Add(preview.NewDynamicStateful("Adjustable Counter",
		preview.Number("start", 100),
		func(start int32) counterState { return counterState{Value: int(start)} },
		counterUpdate,
		func(s *counterState, start int32) preview.Content[counterMsg] {
			content := counterView(s)
			content.Body = fmt.Sprintf("%s (boots at %d)", content.Body, start)
			return content
		},
	).WithDescription("A counter whose boot value is a live parameter.").
		WithGroup("Dynamic").
		WithTags("stateful", "params"))

	r.Add(preview.NewDynamicStateless("Style Showcase",
		preview.Tuple6[string, bool, int32, string, float64, preview.RGBA](
			preview.Text("text", "snowscape"),
			preview.Boolean("bold", true),
			preview.Number("repeat", 1),
			preview.Select("align", []string{"left", "center", "right"}, "left"),
			preview.Slider("padding", 0, 10, 2),
			preview.Color("foreground", preview.RGBA{R: 0.6, G: 0.8, B: 1, A: 1}),
		),
		styleShowcase,
	).WithDescription("Every parameter kind driving one rendered view.").
		WithGroup("Dynamic").
		WithTags("params", "styles"))

	return r
}

// styleShowcase renders text styled by all six parameter kinds.
func styleShowcase(v preview.Values6[string, bool, int32, string, float64, preview.RGBA]) preview.Content[struct{}] {
	hex := colorful.Color{R: v.V5.R, G: v.V5.G, B: v.V5.B}.Hex()

	align := lipgloss.Left
	switch v.V3 {
	case "center":
		align = lipgloss.Center
	case "right":
		align = lipgloss.Right
	}

	repeat := int(v.V2)
	if repeat < 1 {
		repeat = 1
	}
	lines := make([]string, repeat)
	for i := range lines {
		lines[i] = v.V0
	}

	style := lipgloss.NewStyle().
		Bold(v.V1).
		Foreground(lipgloss.Color(hex)).
		Padding(0, int(v.V4)).
		Width(40).
		Align(align)

	return preview.Content[struct{}]{
		Body: style.Render(strings.Join(lines, "\n")),
	}
}
