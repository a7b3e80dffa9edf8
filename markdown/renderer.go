// Package markdown renders extracted documents into markdown files with
// YAML frontmatter and a generated table of contents.
package markdown

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jkoenig72/sfcrawl"
	"gopkg.in/yaml.v3"
)

var _ sfcrawl.Renderer = (*Renderer)(nil)

// Renderer assembles the markdown artifact: frontmatter, title heading,
// table of contents, and the converted body. Output is deterministic
// for a given document, so re-crawling an unchanged page rewrites a
// byte-identical file.
type Renderer struct {
	converter sfcrawl.Converter
}

// NewRenderer creates a Renderer using the given HTML-to-Markdown converter.
func NewRenderer(converter sfcrawl.Converter) *Renderer {
	return &Renderer{converter: converter}
}

// frontmatter field order is fixed; map-typed extras marshal after it
// in sorted key order, keeping the whole header deterministic.
type frontmatter struct {
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Tag        string `yaml:"tag"`
	Category   string `yaml:"category"`
	TOC        bool   `yaml:"toc"`
	DepthLevel int    `yaml:"depth_level"`
	SourceURL  string `yaml:"source_url"`
}

// Render implements sfcrawl.Renderer.
func (r *Renderer) Render(doc *sfcrawl.ExtractedDocument) (*sfcrawl.MarkdownArtifact, error) {
	if doc == nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "nil document")
	}

	body, err := r.converter.Convert(doc.ContentHTML)
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "document converted to empty markdown")
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = doc.Meta.SourceURL
	}

	sections := sfcrawl.ExtractSections(body)

	fm := frontmatter{
		Title:      title,
		Date:       doc.Meta.Date,
		Tag:        doc.Meta.Product,
		Category:   doc.Meta.Category,
		TOC:        len(sections) > 0,
		DepthLevel: doc.Meta.Depth,
		SourceURL:  doc.Meta.SourceURL,
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINTERNAL, "marshaling frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	if len(doc.Meta.Extra) > 0 {
		// yaml.v3 sorts map keys on encode, so extras are stable too.
		extras, err := yaml.Marshal(doc.Meta.Extra)
		if err != nil {
			return nil, sfcrawl.Errorf(sfcrawl.EINTERNAL, "marshaling extra frontmatter: %v", err)
		}
		b.Write(extras)
	}
	b.WriteString("---\n\n")

	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(sections) > 0 {
		b.WriteString("## Table of Contents\n\n")
		b.WriteString(sfcrawl.BuildTOC(sections))
		b.WriteString("\n\n")
	}

	b.WriteString(body)
	b.WriteString("\n")

	content := b.String()
	return &sfcrawl.MarkdownArtifact{
		Filename:    Filename(doc.Meta.SourceURL),
		Product:     doc.Meta.Product,
		Content:     content,
		ContentHash: hashContent(content),
	}, nil
}

func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
