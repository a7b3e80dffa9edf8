package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkoenig72/sfcrawl"
)

// chromeSelectors are page furniture stripped before content extraction.
// Cookie and consent containers are included so banner text never leaks
// into the markdown output.
const chromeSelectors = "script, style, noscript, iframe, svg, " +
	"nav, header, footer, " +
	"#onetrust-consent-sdk, .onetrust-pc-dark-filter, " +
	"[id*='cookie'], [class*='cookie-banner'], [class*='consent']"

// collectLinks gathers every anchor in the document in document order,
// deduplicated by resolved URL. Navigation and sidebar anchors are kept:
// the frontier needs them to traverse the site. Scope filtering is the
// frontier's job, so cross-subdomain links are returned as found.
func collectLinks(doc *goquery.Document, pageURL string) ([]sfcrawl.DiscoveredLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "invalid page URL: %v", err)
	}

	seen := make(map[string]bool)
	var links []sfcrawl.DiscoveredLink

	collect := func(selector string, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}
			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true

			links = append(links, sfcrawl.DiscoveredLink{
				URL:    resolved,
				Text:   strings.TrimSpace(sel.Text()),
				Source: source,
			})
		})
	}

	collect("nav a[href], aside a[href], .sidebar a[href]", "nav")
	collect("main a[href], article a[href]", "content")
	collect("a[href]", "page")

	return links, nil
}

// resolveURL resolves a relative href against the page URL.
// Returns empty string for unparseable hrefs and for self-referential
// links (anchor-only links pointing back at the same page).
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

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// stripChrome removes page furniture in place.
func stripChrome(doc *goquery.Document, extra []string) {
	doc.Find(chromeSelectors).Remove()
	for _, sel := range extra {
		doc.Find(sel).Remove()
	}
}

// pageTitle returns the first h1 text, falling back to the title tag.
func pageTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// isNotFoundPage detects soft 404s: the portal serves removed articles
// with HTTP 200 and an error page body.
func isNotFoundPage(doc *goquery.Document) bool {
	title := strings.ToLower(doc.Find("title").First().Text())
	if strings.Contains(title, "404") {
		return true
	}

	notFound := false
	doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), "not found") {
			notFound = true
			return false
		}
		return true
	})
	return notFound
}

// largestTextBlock returns the outer HTML of the div with the most text.
// Used as the soft fallback when no selector strategy matches.
func largestTextBlock(doc *goquery.Document) string {
	var best *goquery.Selection
	bestLen := 0

	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		n := len(strings.TrimSpace(sel.Text()))
		if n > bestLen {
			best = sel
			bestLen = n
		}
	})

	if best == nil || bestLen == 0 {
		return ""
	}
	html, err := goquery.OuterHtml(best)
	if err != nil {
		return ""
	}
	return html
}
