// Package workspace owns the current search root for a session. The registry
// validates candidate roots and swaps the stored value atomically; a failed
// swap never leaves a partial update behind.
package workspace

import (
	"sync"

	"github.com/Cyclone1070/finch/internal/pathutil"
)

// Registry holds the active search root for one session. It is safe for
// concurrent use; readers never observe a half-updated root.
type Registry struct {
	mu   sync.RWMutex
	root string
	cwd  string
}

// NewRegistry creates a registry whose default root is cwd. The cwd is also
// the base for resolving relative root paths and the reset target for Set("").
func NewRegistry(cwd string) *Registry {
	return &Registry{root: cwd, cwd: cwd}
}

// Set validates and swaps the search root. An empty path resets to the
// working directory. Relative paths and a leading ~ are expanded, symlinks
// resolved; the result must exist and be a directory. On failure the stored
// root is unchanged.
func (r *Registry) Set(path string) (string, error) {
	if path == "" {
		r.mu.Lock()
		r.root = r.cwd
		r.mu.Unlock()
		return r.cwd, nil
	}

	resolved, err := pathutil.CanonicaliseRoot(path, r.cwd)
	if err != nil {
		return "", &InvalidRootError{Path: path, Cause: err}
	}

	r.mu.Lock()
	r.root = resolved
	r.mu.Unlock()
	return resolved, nil
}

// Current returns the last successfully set root. It is never empty.
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}
