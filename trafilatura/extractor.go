// Package trafilatura implements content extraction for pages no
// selector strategy claims, using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/jkoenig72/sfcrawl"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ sfcrawl.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of arbitrary pages. Where the
// selector strategies know their page layout, this one scores text
// density to find the dominant content block, which makes it the
// natural fallback for generic pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract implements sfcrawl.Extractor.
func (e *Extractor) Extract(pageURL string, rawHTML string) (*sfcrawl.ExtractedDocument, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "invalid page URL: %v", err)
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	if isNotFoundPage(root) {
		return nil, sfcrawl.Errorf(sfcrawl.ENOTFOUND, "page reports not found")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    base,
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "content extraction failed: %v", err)
	}
	if result.ContentNode == nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "no content found in page")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINTERNAL, "rendering content: %v", err)
	}

	return &sfcrawl.ExtractedDocument{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Links:       collectLinks(root, base),
		Meta:        sfcrawl.DocumentMeta{Extra: make(map[string]string)},
	}, nil
}

// collectLinks walks the full document tree for anchors. Trafilatura
// discards navigation as boilerplate, but the crawl traverses the site
// through exactly those links, so they come from the raw tree instead.
func collectLinks(root *html.Node, base *url.URL) []sfcrawl.DiscoveredLink {
	seen := make(map[string]bool)
	var links []sfcrawl.DiscoveredLink

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attrValue(n, "href"); href != "" && !isNonHTTPLink(href) {
				if resolved := resolveURL(base, href); resolved != "" && !seen[resolved] {
					seen[resolved] = true
					links = append(links, sfcrawl.DiscoveredLink{
						URL:    resolved,
						Text:   strings.TrimSpace(nodeText(n)),
						Source: "page",
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return links
}

// isNotFoundPage detects soft 404s served with HTTP 200.
func isNotFoundPage(root *html.Node) bool {
	if title := findElementText(root, "title"); strings.Contains(strings.ToLower(title), "404") {
		return true
	}
	h1 := findElementText(root, "h1")
	return strings.Contains(strings.ToLower(h1), "not found")
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if resolved.String() == baseNoFragment.String() {
		return ""
	}
	return resolved.String()
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findElementText returns the text of the first element with the given
// tag name, depth first.
func findElementText(root *html.Node, tag string) string {
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = nodeText(n)
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
