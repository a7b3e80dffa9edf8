package goquery

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.ExtractorRegistry = (*Registry)(nil)

// Registry maps page types to extraction strategies. Get never returns
// nil: unknown page types fall back to the fallback extractor, so the
// worker can always extract something from a classified page.
type Registry struct {
	fallback   sfcrawl.Extractor
	extractors map[sfcrawl.PageType]sfcrawl.Extractor
}

// NewRegistry creates a Registry with the given fallback extractor.
func NewRegistry(fallback sfcrawl.Extractor) *Registry {
	return &Registry{
		fallback:   fallback,
		extractors: make(map[sfcrawl.PageType]sfcrawl.Extractor),
	}
}

// NewDefaultRegistry creates a Registry with every page-type strategy
// registered and the given extractor handling generic pages.
func NewDefaultRegistry(fallback sfcrawl.Extractor) *Registry {
	r := NewRegistry(fallback)
	r.Register(sfcrawl.PageStandardHelp, NewStandardHelpExtractor())
	r.Register(sfcrawl.PageApexHelp, NewApexHelpExtractor())
	r.Register(sfcrawl.PageTrailhead, NewTrailheadExtractor())
	r.Register(sfcrawl.PageReleaseNotes, NewReleaseNotesExtractor())
	r.Register(sfcrawl.PageAPIReference, NewAPIReferenceExtractor())
	r.Register(sfcrawl.PageFAQ, NewFAQExtractor())
	return r
}

// Get returns the extractor for a page type, or the fallback when none
// is registered.
func (r *Registry) Get(pageType sfcrawl.PageType) sfcrawl.Extractor {
	if e, ok := r.extractors[pageType]; ok {
		return e
	}
	return r.fallback
}

// Register adds an extractor for a page type, replacing any existing one.
func (r *Registry) Register(pageType sfcrawl.PageType, extractor sfcrawl.Extractor) {
	r.extractors[pageType] = extractor
}

// List returns all registered page types.
func (r *Registry) List() []sfcrawl.PageType {
	types := make([]sfcrawl.PageType, 0, len(r.extractors))
	for t := range r.extractors {
		types = append(types, t)
	}
	return types
}
