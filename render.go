package sfcrawl

import "context"

// MarkdownArtifact is the final rendered file: YAML frontmatter, a
// generated table of contents, and the markdown body. Artifacts are
// written once and never mutated; the filename is a deterministic slug
// of the source URL so re-crawls overwrite rather than duplicate.
type MarkdownArtifact struct {
	// Filename is the slugged file name, without directory.
	Filename string

	// Product selects the output directory.
	Product string

	// Content is the complete file content.
	Content string

	// ContentHash is a stable hash of Content, used for change
	// detection in logs.
	ContentHash string
}

// Renderer converts an extracted document into a markdown artifact.
// Rendering is idempotent: the same ExtractedDocument always produces
// byte-identical output.
type Renderer interface {
	Render(doc *ExtractedDocument) (*MarkdownArtifact, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into
	// Markdown, preserving heading hierarchy, tables, and lists.
	Convert(html string) (string, error)
}

// ArtifactWriter persists markdown artifacts. The write path is
// partitioned by product directory, so workers of different products
// never contend on the same files.
type ArtifactWriter interface {
	WriteArtifact(ctx context.Context, artifact *MarkdownArtifact) error
}

// SkipLogger records URLs that were skipped, with a reason. The skip log
// is a line-oriented side channel, not part of the output contract.
type SkipLogger interface {
	LogSkip(url string, reason string)
}
