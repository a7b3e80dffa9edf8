package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*FAQExtractor)(nil)

// FAQExtractor extracts FAQ pages, including ones that render answers
// inside collapsed accordion sections.
type FAQExtractor struct {
	contentExtractor
}

// NewFAQExtractor creates a new FAQExtractor.
func NewFAQExtractor() *FAQExtractor {
	return &FAQExtractor{contentExtractor{
		name: "faq",
		selectors: []string{
			".faq-content",
			".slds-accordion",
			"main article",
			"main",
		},
	}}
}
