package mock

import "github.com/jkoenig72/sfcrawl"

var _ sfcrawl.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of sfcrawl.Classifier.
// An unset ClassifyFn returns PageGeneric.
type Classifier struct {
	ClassifyFn func(url string, html string) sfcrawl.PageType
}

func (c *Classifier) Classify(url string, html string) sfcrawl.PageType {
	if c.ClassifyFn == nil {
		return sfcrawl.PageGeneric
	}
	return c.ClassifyFn(url, html)
}

var _ sfcrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sfcrawl.Extractor.
type Extractor struct {
	ExtractFn func(url string, html string) (*sfcrawl.ExtractedDocument, error)
	NameFn    func() string
}

func (e *Extractor) Extract(url string, html string) (*sfcrawl.ExtractedDocument, error) {
	return e.ExtractFn(url, html)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

var _ sfcrawl.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of sfcrawl.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn      func(pageType sfcrawl.PageType) sfcrawl.Extractor
	RegisterFn func(pageType sfcrawl.PageType, extractor sfcrawl.Extractor)
	ListFn     func() []sfcrawl.PageType
}

func (r *ExtractorRegistry) Get(pageType sfcrawl.PageType) sfcrawl.Extractor {
	return r.GetFn(pageType)
}

func (r *ExtractorRegistry) Register(pageType sfcrawl.PageType, extractor sfcrawl.Extractor) {
	if r.RegisterFn != nil {
		r.RegisterFn(pageType, extractor)
	}
}

func (r *ExtractorRegistry) List() []sfcrawl.PageType {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
