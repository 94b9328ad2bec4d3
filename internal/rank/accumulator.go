// Package rank collects raw enumeration output into a bounded, ordered
// candidate list. The default order is the tool's native output order; a
// pluggable scorer can re-rank on top of it.
package rank

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/finch/internal/pathutil"
)

// Accumulator gathers raw path lines up to a cap. Once the cap is reached
// further lines are ignored and the consumer should stop enumeration.
type Accumulator struct {
	root       string
	refDir     string
	max        int
	candidates []Candidate
}

// NewAccumulator creates an accumulator for one request. Raw lines are
// interpreted relative to root; display paths are computed against refDir.
func NewAccumulator(root, refDir string, max int) *Accumulator {
	return &Accumulator{
		root:       root,
		refDir:     refDir,
		max:        max,
		candidates: make([]Candidate, 0, max),
	}
}

// Add accepts one raw output line and reports whether the accumulator can
// take more. A false return means the cap is reached and enumeration should
// be cancelled. Blank lines are skipped.
func (a *Accumulator) Add(raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" {
		return len(a.candidates) < a.max
	}
	if len(a.candidates) >= a.max {
		return false
	}

	abs := line
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(a.root, line)
	}

	// Best-effort directory detection; a failed stat means false, never
	// an error.
	isDir := false
	if info, err := os.Stat(abs); err == nil {
		isDir = info.IsDir()
	}

	a.candidates = append(a.candidates, Candidate{
		AbsPath:     abs,
		DisplayPath: pathutil.Display(abs, a.refDir),
		IsDir:       isDir,
	})

	return len(a.candidates) < a.max
}

// Full reports whether the cap has been reached.
func (a *Accumulator) Full() bool {
	return len(a.candidates) >= a.max
}

// Candidates returns the accumulated list in acceptance order.
func (a *Accumulator) Candidates() []Candidate {
	return a.candidates
}
