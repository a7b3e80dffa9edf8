package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.SummaryWriter = (*Summary)(nil)

// Summary writes the end-of-run report to summary.log in the output
// directory: one block per product plus run totals.
type Summary struct {
	path string
}

// NewSummary creates a Summary writing to <baseDir>/summary.log.
func NewSummary(baseDir string) *Summary {
	return &Summary{path: filepath.Join(baseDir, "summary.log")}
}

// WriteSummary renders all product snapshots and overwrites the summary
// file. Products are sorted by name so the report is stable across runs.
func (s *Summary) WriteSummary(runID string, snapshots []sfcrawl.MetricsSnapshot) error {
	sorted := append([]sfcrawl.MetricsSnapshot(nil), snapshots...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Product < sorted[j].Product })

	var b strings.Builder
	fmt.Fprintf(&b, "crawl run %s\n", runID)
	fmt.Fprintf(&b, "products: %d\n\n", len(sorted))

	var totalWritten, totalFetched, totalErrors int
	for _, snap := range sorted {
		fmt.Fprintf(&b, "[%s]\n", snap.Product)
		fmt.Fprintf(&b, "  pages_fetched:     %d\n", snap.PagesFetched)
		fmt.Fprintf(&b, "  pages_written:     %d\n", snap.PagesWritten)
		fmt.Fprintf(&b, "  links_found:       %d\n", snap.LinksFound)
		fmt.Fprintf(&b, "  skipped_depth:     %d\n", snap.SkippedDepth)
		fmt.Fprintf(&b, "  skipped_filter:    %d\n", snap.SkippedFilter)
		fmt.Fprintf(&b, "  skipped_duplicate: %d\n", snap.SkippedDuplicate)
		fmt.Fprintf(&b, "  low_confidence:    %d\n", snap.LowConfidence)
		fmt.Fprintf(&b, "  max_depth_reached: %d\n", snap.MaxDepthReached)
		fmt.Fprintf(&b, "  elapsed:           %s\n", snap.Elapsed.Round(time.Millisecond))

		if snap.HitPageCeiling {
			fmt.Fprintf(&b, "  page_ceiling_hit:  true\n")
		}
		if snap.HitDepthCeiling {
			fmt.Fprintf(&b, "  depth_ceiling_hit: true\n")
		}

		if len(snap.Errors) > 0 {
			categories := make([]string, 0, len(snap.Errors))
			for c := range snap.Errors {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Fprintf(&b, "  errors_%s: %d\n", c, snap.Errors[c])
			}
		}
		b.WriteString("\n")

		totalWritten += snap.PagesWritten
		totalFetched += snap.PagesFetched
		totalErrors += snap.TotalErrors()
	}

	fmt.Fprintf(&b, "total_pages_fetched: %d\n", totalFetched)
	fmt.Fprintf(&b, "total_pages_written: %d\n", totalWritten)
	fmt.Fprintf(&b, "total_errors:        %d\n", totalErrors)

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "writing summary: %v", err)
	}
	return nil
}

// Path returns the summary file location.
func (s *Summary) Path() string {
	return s.path
}
