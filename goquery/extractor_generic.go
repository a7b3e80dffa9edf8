package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*GenericExtractor)(nil)

// GenericExtractor extracts pages no specific strategy claims. It tries
// the common semantic containers and otherwise leans on the shared
// largest-text-block fallback.
type GenericExtractor struct {
	contentExtractor
}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{contentExtractor{
		name: "generic",
		selectors: []string{
			"main article",
			"main",
			"article",
			".content",
		},
	}}
}
