package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkoenig72/sfcrawl"
)

// contentExtractor is the shared extraction pipeline behind every page
// type: detect soft 404s, collect links before stripping chrome, then
// try the type's content selectors in priority order. When none match,
// the largest text block is used and the result is flagged low
// confidence so the caller can tell a clean extraction from a rescue.
type contentExtractor struct {
	name      string
	selectors []string
	chrome    []string

	// meta, when set, pulls page-type specific fields into Meta.Extra.
	meta func(doc *goquery.Document, extra map[string]string)
}

func (e *contentExtractor) Name() string {
	return e.name
}

// Extract implements sfcrawl.Extractor.
func (e *contentExtractor) Extract(pageURL string, html string) (*sfcrawl.ExtractedDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	if isNotFoundPage(doc) {
		return nil, sfcrawl.Errorf(sfcrawl.ENOTFOUND, "page reports not found")
	}

	// Links are collected before chrome is stripped: the crawl traverses
	// the site through its navigation.
	links, err := collectLinks(doc, pageURL)
	if err != nil {
		return nil, err
	}

	title := pageTitle(doc)
	extra := make(map[string]string)
	if e.meta != nil {
		e.meta(doc, extra)
	}

	stripChrome(doc, e.chrome)

	content, lowConfidence := e.content(doc)
	if content == "" {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "no content found in page")
	}

	return &sfcrawl.ExtractedDocument{
		Title:         title,
		ContentHTML:   content,
		Links:         links,
		LowConfidence: lowConfidence,
		Meta:          sfcrawl.DocumentMeta{Extra: extra},
	}, nil
}

// content returns the first matching selector's outer HTML, or the
// largest text block with the low-confidence flag set.
func (e *contentExtractor) content(doc *goquery.Document) (string, bool) {
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 || strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			continue
		}
		return html, false
	}

	if html := largestTextBlock(doc); html != "" {
		return html, true
	}
	return "", false
}
