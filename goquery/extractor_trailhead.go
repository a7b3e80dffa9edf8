package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.Extractor = (*TrailheadExtractor)(nil)

// TrailheadExtractor extracts Trailhead learning content. Module and
// unit titles are captured into Meta.Extra so the frontmatter can carry
// the learning-path position alongside the page content.
type TrailheadExtractor struct {
	contentExtractor
}

// NewTrailheadExtractor creates a new TrailheadExtractor.
func NewTrailheadExtractor() *TrailheadExtractor {
	return &TrailheadExtractor{contentExtractor{
		name: "trailhead",
		selectors: []string{
			".unit-content",
			"th-unit-view",
			".slds-container--center main",
			"main",
		},
		chrome: []string{
			".th-challenge",
			".quiz-container",
		},
		meta: trailheadMeta,
	}}
}

func trailheadMeta(doc *goquery.Document, extra map[string]string) {
	if module := firstText(doc, ".module-title, .th-module-title, [data-module-title]"); module != "" {
		extra["module"] = module
	}
	if unit := firstText(doc, ".unit-title, .th-unit-title, h1"); unit != "" {
		extra["unit"] = unit
	}
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
