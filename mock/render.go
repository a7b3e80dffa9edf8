package mock

import (
	"context"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of sfcrawl.Renderer.
type Renderer struct {
	RenderFn func(doc *sfcrawl.ExtractedDocument) (*sfcrawl.MarkdownArtifact, error)
}

func (r *Renderer) Render(doc *sfcrawl.ExtractedDocument) (*sfcrawl.MarkdownArtifact, error) {
	return r.RenderFn(doc)
}

var _ sfcrawl.Converter = (*Converter)(nil)

// Converter is a mock implementation of sfcrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ sfcrawl.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of sfcrawl.ArtifactWriter.
// An unset WriteArtifactFn succeeds silently.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, artifact *sfcrawl.MarkdownArtifact) error
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, artifact *sfcrawl.MarkdownArtifact) error {
	if w.WriteArtifactFn == nil {
		return nil
	}
	return w.WriteArtifactFn(ctx, artifact)
}

var _ sfcrawl.SkipLogger = (*SkipLogger)(nil)

// SkipLogger is a mock implementation of sfcrawl.SkipLogger.
// An unset LogSkipFn discards entries.
type SkipLogger struct {
	LogSkipFn func(url string, reason string)
}

func (l *SkipLogger) LogSkip(url string, reason string) {
	if l.LogSkipFn != nil {
		l.LogSkipFn(url, reason)
	}
}

var _ sfcrawl.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of sfcrawl.SummaryWriter.
// An unset WriteSummaryFn succeeds silently.
type SummaryWriter struct {
	WriteSummaryFn func(runID string, snapshots []sfcrawl.MetricsSnapshot) error
}

func (w *SummaryWriter) WriteSummary(runID string, snapshots []sfcrawl.MetricsSnapshot) error {
	if w.WriteSummaryFn == nil {
		return nil
	}
	return w.WriteSummaryFn(runID, snapshots)
}
