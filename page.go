package sfcrawl

// PageType classifies a fetched page by its structural family. The type
// determines which extraction strategy runs and which frontmatter fields
// are populated.
type PageType string

// Page types recognized by the classifier.
const (
	// PageStandardHelp covers help-portal article views
	// (help.salesforce.com/s/articleView and the legacy articleView form).
	PageStandardHelp PageType = "standard_help"

	// PageApexHelp covers apex/HTViewHelpDoc help documents.
	PageApexHelp PageType = "apex_help"

	// PageTrailhead covers Trailhead learning content (modules, units,
	// projects under /content/learn/).
	PageTrailhead PageType = "trailhead"

	// PageReleaseNotes covers release-note documents.
	PageReleaseNotes PageType = "release_notes"

	// PageAPIReference covers developer reference documentation
	// (developer.salesforce.com/docs, docs.mulesoft.com).
	PageAPIReference PageType = "api_reference"

	// PageFAQ covers FAQ-style articles.
	PageFAQ PageType = "faq"

	// PageGeneric is the default when no pattern or heuristic matches.
	PageGeneric PageType = "generic"
)

// Classifier assigns exactly one PageType to a fetched page.
// Classification must be a pure function of (URL, rendered HTML):
// the same input always yields the same PageType, because downstream
// extraction correctness depends on stable branching.
type Classifier interface {
	Classify(url string, html string) PageType
}

// DocumentMeta holds the metadata carried from crawl into frontmatter.
type DocumentMeta struct {
	Product   string
	Category  string
	Depth     int
	SourceURL string

	// Date is the crawl start date, shared by every page of a run so
	// rendering stays deterministic within the run.
	Date string

	// Extra holds page-family specific fields (e.g. Trailhead module
	// and unit titles). Keys appear in frontmatter in sorted order.
	Extra map[string]string
}

// ExtractedDocument is the output of an extraction strategy for a single
// fetched page. It is consumed once by the renderer and not retained
// after the markdown file is written.
type ExtractedDocument struct {
	Title string

	// ContentHTML is the isolated document body with navigation, chrome,
	// and cookie-consent blocks removed. Relative links are resolved.
	ContentHTML string

	// Links are the same-page-body links discovered during extraction,
	// candidates for the frontier.
	Links []DiscoveredLink

	// LowConfidence marks documents produced by the soft-fallback path,
	// used when the expected structural anchors were absent. Consumed
	// only by logging; never blocks the pipeline.
	LowConfidence bool

	Meta DocumentMeta
}

// DiscoveredLink is a URL found in a page body, with its anchor text and
// the area of the page it came from.
type DiscoveredLink struct {
	URL    string
	Text   string
	Source string // "content", "toc", "nav", "fallback"
}

// Extractor isolates the semantic document body for one page family.
// Strategies fail soft: when expected structure is absent they fall back
// to a generic largest-body heuristic and set LowConfidence, raising an
// error only when even the fallback yields empty content.
type Extractor interface {
	// Extract processes the rendered HTML of a page. The url is used to
	// resolve relative links. Returns ENOTFOUND for removed pages and
	// EINVALID when no content can be recovered at all.
	Extract(url string, html string) (*ExtractedDocument, error)

	// Name returns the strategy's identifier (e.g. "trailhead").
	Name() string
}

// ExtractorRegistry maps page types to extraction strategies, selected
// once after classification.
type ExtractorRegistry interface {
	// Get returns the strategy for a page type, falling back to the
	// generic strategy when no dedicated one is registered.
	Get(pageType PageType) Extractor

	// Register adds a strategy for a page type, replacing any existing one.
	Register(pageType PageType, extractor Extractor)

	// List returns all registered page types.
	List() []PageType
}
