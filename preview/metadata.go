// ABOUTME: Metadata describes a registered preview: label, optional description, group, and tags.
// ABOUTME: Matches implements the sidebar search filter over all metadata fields.
package preview

import "strings"

// Metadata holds display information associated with a preview.
type Metadata struct {
	// Label is the name of the preview shown in the sidebar.
	Label string
	// Description optionally explains what the preview demonstrates.
	Description string
	// Group categorizes related previews together in the UI.
	Group string
	// Tags are free-form labels used for search filtering.
	Tags []string
}

// NewMetadata creates a Metadata with the given label and empty other fields.
func NewMetadata(label string) Metadata {
	return Metadata{Label: label}
}

// Matches reports whether the metadata matches a lowercase search query.
// An empty query matches everything.
func (m Metadata) Matches(query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Label), query) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Group), query) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
