// ABOUTME: Renders the About tab: the selected preview's label, description, group, and tags.
package tui

import (
	"strings"

	"github.com/bradysimon/snowscape/preview"
)

// aboutPane renders a preview's metadata as label/value rows.
func aboutPane(meta preview.Metadata) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Label"))
	b.WriteString(ValueStyle.Render(meta.Label))
	b.WriteString("\n")

	if meta.Description != "" {
		b.WriteString(LabelStyle.Render("Description"))
		b.WriteString(ValueStyle.Render(meta.Description))
		b.WriteString("\n")
	}
	if meta.Group != "" {
		b.WriteString(LabelStyle.Render("Group"))
		b.WriteString(ValueStyle.Render(meta.Group))
		b.WriteString("\n")
	}
	if len(meta.Tags) > 0 {
		b.WriteString(LabelStyle.Render("Tags"))
		b.WriteString(ValueStyle.Render(strings.Join(meta.Tags, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}
