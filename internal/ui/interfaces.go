package ui

import (
	"context"

	"github.com/Cyclone1070/finch/internal/session"
)

// Searcher is the search surface the picker drives. Satisfied by
// *session.Session.
type Searcher interface {
	// Search submits a request; the returned channel yields at most one
	// result and is closed without a value when a newer request supersedes
	// this one.
	Search(ctx context.Context, req session.Request) <-chan session.Result

	// SetRoot validates and swaps the search root.
	SetRoot(path string) (string, error)

	// Root returns the active search root.
	Root() string
}
