package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*APIReferenceExtractor)(nil)

// APIReferenceExtractor extracts developer documentation pages. Code
// samples live inside the content container, so nothing code-related is
// stripped as chrome.
type APIReferenceExtractor struct {
	contentExtractor
}

// NewAPIReferenceExtractor creates a new APIReferenceExtractor.
func NewAPIReferenceExtractor() *APIReferenceExtractor {
	return &APIReferenceExtractor{contentExtractor{
		name: "api_reference",
		selectors: []string{
			".doc-content",
			".reference-content",
			"#topic-content",
			"main article",
		},
		chrome: []string{
			".doc-breadcrumbs",
			".doc-feedback",
		},
	}}
}
