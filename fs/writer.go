// Package fs provides the file-based output side of a crawl: the
// per-product markdown tree, the skip log, the run summary, and the
// YAML configuration loaders.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.ArtifactWriter = (*Writer)(nil)

// Writer persists markdown artifacts under <baseDir>/<product>/.
// Product directories partition the writes, so worker pools of
// different products never touch the same files.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArtifact writes an artifact to disk, creating the product
// directory on first use. An existing file for the same URL is
// overwritten, which is what makes re-crawls idempotent on disk.
func (w *Writer) WriteArtifact(ctx context.Context, artifact *sfcrawl.MarkdownArtifact) error {
	if artifact.Filename == "" {
		return sfcrawl.Errorf(sfcrawl.EINVALID, "artifact has no filename")
	}
	if artifact.Product == "" {
		return sfcrawl.Errorf(sfcrawl.EINVALID, "artifact has no product")
	}

	dir := filepath.Join(w.baseDir, artifact.Product)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "creating product directory: %v", err)
	}

	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, []byte(artifact.Content), 0644); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "writing artifact: %v", err)
	}
	return nil
}
