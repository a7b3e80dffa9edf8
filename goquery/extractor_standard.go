package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*StandardHelpExtractor)(nil)

// StandardHelpExtractor extracts Lightning help articles, the
// /s/articleView pages that make up most of the help portal.
type StandardHelpExtractor struct {
	contentExtractor
}

// NewStandardHelpExtractor creates a new StandardHelpExtractor.
func NewStandardHelpExtractor() *StandardHelpExtractor {
	return &StandardHelpExtractor{contentExtractor{
		name: "standard_help",
		selectors: []string{
			".article-body",
			"#article-body",
			".slds-article",
			"c-hc-article-detail",
			"main article",
		},
		chrome: []string{
			".article-feedback",
			".article-footer",
			".hc-related-articles",
		},
	}}
}
