package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.SkipLogger = (*SkipLog)(nil)

// SkipLog appends skipped URLs to skipped_404.log in the output
// directory. Entries from concurrent workers are serialized by a mutex;
// a skip log that cannot be written degrades to losing the entry rather
// than failing the page.
type SkipLog struct {
	mu   sync.Mutex
	path string
}

// NewSkipLog creates a SkipLog writing to <baseDir>/skipped_404.log.
func NewSkipLog(baseDir string) *SkipLog {
	return &SkipLog{path: filepath.Join(baseDir, "skipped_404.log")}
}

// LogSkip appends one line: <url>\t<reason>.
func (l *SkipLog) LogSkip(url string, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s\t%s\n", url, reason)
}

// Path returns the log file location.
func (l *SkipLog) Path() string {
	return l.path
}
