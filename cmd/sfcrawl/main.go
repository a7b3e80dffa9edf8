package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jkoenig72/sfcrawl"
	"github.com/jkoenig72/sfcrawl/crawl"
	"github.com/jkoenig72/sfcrawl/fs"
	"github.com/jkoenig72/sfcrawl/goquery"
	"github.com/jkoenig72/sfcrawl/htmltomarkdown"
	sfhttp "github.com/jkoenig72/sfcrawl/http"
	"github.com/jkoenig72/sfcrawl/markdown"
	"github.com/jkoenig72/sfcrawl/rod"
	sflog "github.com/jkoenig72/sfcrawl/slog"
	"github.com/jkoenig72/sfcrawl/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Sessions overrides the browser session factory. Set by end-to-end
	// tests to crawl without a real Chrome.
	Sessions sfcrawl.SessionFactory

	// Seeds overrides the sitemap seed discoverer used with --sitemap.
	Seeds sfcrawl.SeedDiscoverer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sfcrawl"),
		kong.Description("Crawl Salesforce documentation portals to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := stdslog.LevelInfo
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	config, err := fs.LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	applyOverrides(config, cli)

	manifest, err := fs.LoadManifest(cli.Manifest)
	if err != nil {
		return err
	}

	// Wire the browser driver unless a test injected one.
	sessions := m.Sessions
	if sessions == nil {
		factory, err := rod.NewFactory()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer factory.Close()
		sessions = factory
	}

	summary := fs.NewSummary(config.OutputDir)

	coordinator := &crawl.Coordinator{
		Config:     config,
		Sessions:   rod.NewLoggingFactory(sessions, logger),
		Classifier: sflog.NewLoggingClassifier(goquery.NewClassifier(), logger),
		Extractors: sflog.NewLoggingRegistry(goquery.NewDefaultRegistry(trafilatura.NewExtractor()), logger),
		Renderer:   markdown.NewRenderer(htmltomarkdown.NewConverter()),
		Writer:     fs.NewWriter(config.OutputDir),
		SkipLog:    fs.NewSkipLog(config.OutputDir),
		Summary:    summary,
		Limiter:    crawl.NewDomainLimiter(config.RequestsPerSecond),
		Logger:     logger,
	}

	if cli.Sitemap {
		seeds := m.Seeds
		if seeds == nil {
			seeds = sfhttp.NewSeedDiscoverer(nil)
		}
		coordinator.Seeds = sflog.NewLoggingSeedDiscoverer(seeds, logger)
	}

	snapshots, err := coordinator.Run(ctx, manifest)
	if err != nil {
		return err
	}

	total := 0
	for _, snap := range snapshots {
		total += snap.PagesWritten
	}
	fmt.Fprintf(stdout, "Crawled %d pages across %d products\n", total, len(snapshots))
	fmt.Fprintf(stdout, "Summary written to %s\n", summary.Path())

	if total == 0 {
		return fmt.Errorf("no pages were written. Check the skip log and seed URLs")
	}
	return nil
}

// applyOverrides lets command-line flags win over the config file.
func applyOverrides(config *sfcrawl.Config, cli *CLI) {
	if cli.Output != "" {
		config.OutputDir = cli.Output
	}
	if cli.Workers > 0 {
		config.WorkersPerProduct = cli.Workers
	}
	if cli.MaxPages > 0 {
		config.MaxPagesPerProduct = cli.MaxPages
	}
	if cli.MaxDepth > 0 {
		config.MaxLinkLevel = cli.MaxDepth
	}
	if cli.RPS > 0 {
		config.RequestsPerSecond = cli.RPS
	}
}
