package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*ReleaseNotesExtractor)(nil)

// ReleaseNotesExtractor extracts release-note pages.
type ReleaseNotesExtractor struct {
	contentExtractor
}

// NewReleaseNotesExtractor creates a new ReleaseNotesExtractor.
func NewReleaseNotesExtractor() *ReleaseNotesExtractor {
	return &ReleaseNotesExtractor{contentExtractor{
		name: "release_notes",
		selectors: []string{
			".release-notes-content",
			"#release-notes",
			".doc-content",
			"main article",
		},
		chrome: []string{
			".release-picker",
			".version-selector",
		},
	}}
}
