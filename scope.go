package sfcrawl

import (
	"net/url"
	"strings"
)

// Scope restricts which URLs a product's crawl may visit. A URL is in
// scope when its host belongs to the allowed-domain list and, if the
// product has configured prefixes, the URL contains at least one of them.
// Scope is read once at startup and immutable during a run.
type Scope struct {
	// AllowedDomains lists hosts the crawler may fetch from
	// (e.g. "help.salesforce.com").
	AllowedDomains []string `yaml:"allowed_domains"`

	// ProductPrefixes maps a product to URL fragments identifying its
	// content (path prefixes or query markers such as "id=sales").
	ProductPrefixes map[string][]string `yaml:"product_prefixes"`
}

// AllowsDomain reports whether the URL's host is in the allowed-domain list.
func (s *Scope) AllowsDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, d := range s.AllowedDomains {
		if host == strings.ToLower(d) {
			return true
		}
	}
	return false
}

// Allows reports whether a URL is in scope for a product. Seeds bypass
// the prefix check via the frontier, not here.
func (s *Scope) Allows(product, rawURL string) bool {
	if !s.AllowsDomain(rawURL) {
		return false
	}
	prefixes := s.ProductPrefixes[product]
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.Contains(rawURL, p) {
			return true
		}
	}
	return false
}
