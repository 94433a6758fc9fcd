package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"exifsort/internal/services"
)

// baseLayout renders a capture timestamp as the canonical destination
// basename, e.g. 2023-01-01_10-00-00.
const baseLayout = "2006-01-02_15-04-05"

const destExt = ".jpg"

// maxAttempts bounds collision probing so a pathological directory produces
// an error instead of an unbounded loop.
const maxAttempts = 10000

// ClaimSet tracks destination basenames allocated during a single run so
// concurrent tasks never resolve to the same path.
type ClaimSet struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewClaimSet returns an empty claim set.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{names: make(map[string]struct{})}
}

// Resolve computes a unique destination path in outDir for the given capture
// timestamp. The base name is the formatted timestamp; on collision a _1, _2,
// ... suffix is appended until a name is found that is neither claimed by an
// earlier task in this run nor already present on disk. The existence check
// and the claim happen inside one critical section, so resolution is race-free
// and deterministic given the set of prior claims.
func (c *ClaimSet) Resolve(outDir string, taken time.Time) (string, error) {
	base := taken.Format(baseLayout)

	c.mu.Lock()
	defer c.mu.Unlock()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		name := base + destExt
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d%s", base, attempt, destExt)
		}
		if _, claimed := c.names[name]; claimed {
			continue
		}
		candidate := filepath.Join(outDir, name)
		if _, err := os.Stat(candidate); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return "", services.Wrap(services.ErrIO, "resolve", "probe destination", "", err)
			}
			c.names[name] = struct{}{}
			return candidate, nil
		}
	}
	return "", services.Wrap(services.ErrIO, "resolve", "allocate filename",
		fmt.Sprintf("exhausted %d filename slots for %s in %s", maxAttempts, base, outDir), nil)
}

// Len reports how many names this run has claimed so far.
func (c *ClaimSet) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names)
}
