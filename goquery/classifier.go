// Package goquery implements page classification and content extraction
// using CSS selectors. Classification tries URL patterns first and falls
// back to DOM markers; extraction runs one selector strategy per page
// type with a shared largest-text-block fallback.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.Classifier = (*Classifier)(nil)

// Classifier identifies the page type of a fetched documentation page.
// URL patterns are checked first because they are cheap and stable;
// DOM markers only decide when the URL is inconclusive. Classification
// is deterministic: the same URL and HTML always yield the same type.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the page type for a URL and its rendered HTML.
// Unrecognized pages classify as PageGeneric, never as an error.
func (c *Classifier) Classify(pageURL string, html string) sfcrawl.PageType {
	if pageType, ok := classifyByURL(pageURL); ok {
		return pageType
	}
	return classifyByDOM(html)
}

// classifyByURL matches the URL against the known help-portal layouts.
func classifyByURL(pageURL string) (sfcrawl.PageType, bool) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return sfcrawl.PageGeneric, false
	}

	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.Path)
	query := strings.ToLower(u.RawQuery)

	switch {
	// Legacy Visualforce help pages: /apex/HTViewHelpDoc?id=...
	case strings.Contains(path, "/apex/htviewhelpdoc"):
		return sfcrawl.PageApexHelp, true

	// Lightning help articles: /s/articleView?id=... and the legacy
	// articleView variant.
	case strings.Contains(path, "articleview"):
		return sfcrawl.PageStandardHelp, true

	case strings.Contains(host, "trailhead") || strings.Contains(path, "/content/learn/"):
		return sfcrawl.PageTrailhead, true

	case strings.Contains(path, "release-notes") || strings.Contains(query, "release_notes"):
		return sfcrawl.PageReleaseNotes, true

	case strings.Contains(host, "developer.") && strings.Contains(path, "/docs"):
		return sfcrawl.PageAPIReference, true

	case strings.Contains(path, "faq"):
		return sfcrawl.PageFAQ, true
	}

	return sfcrawl.PageGeneric, false
}

// classifyByDOM inspects the rendered DOM for markers the URL does not
// carry, e.g. articles reached through vanity URLs.
func classifyByDOM(html string) sfcrawl.PageType {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return sfcrawl.PageGeneric
	}

	title := strings.ToLower(strings.TrimSpace(doc.Find("title").First().Text()))

	switch {
	case doc.Find("meta[property='og:site_name'][content='Trailhead']").Length() > 0:
		return sfcrawl.PageTrailhead

	case strings.Contains(title, "release notes"):
		return sfcrawl.PageReleaseNotes

	case strings.Contains(title, "faq") || strings.Contains(title, "frequently asked"):
		return sfcrawl.PageFAQ

	// Lightning pages carry SLDS utility classes; classic help articles
	// use an article-body container.
	case doc.Find(".article-body, #article-body, .slds-article").Length() > 0:
		return sfcrawl.PageStandardHelp

	case doc.Find(".helpContent, .helpHead1").Length() > 0:
		return sfcrawl.PageApexHelp

	case doc.Find(".doc-content, .reference-content").Length() > 0:
		return sfcrawl.PageAPIReference
	}

	return sfcrawl.PageGeneric
}
