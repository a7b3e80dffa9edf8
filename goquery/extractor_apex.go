package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Extractor = (*ApexHelpExtractor)(nil)

// ApexHelpExtractor extracts legacy Visualforce help pages
// (/apex/HTViewHelpDoc). These predate Lightning and use a simple
// table-based layout with a single help content container.
type ApexHelpExtractor struct {
	contentExtractor
}

// NewApexHelpExtractor creates a new ApexHelpExtractor.
func NewApexHelpExtractor() *ApexHelpExtractor {
	return &ApexHelpExtractor{contentExtractor{
		name: "apex_help",
		selectors: []string{
			".helpContent",
			"#content",
			"td.messageCell",
		},
		chrome: []string{
			".helpHeader",
			".feedback",
		},
	}}
}
