// Package enumerate launches and supervises external file-enumeration
// processes (fd or ripgrep in files mode) rooted at a search directory,
// exposing their newline-delimited output as a lazy line stream.
package enumerate

import (
	"bufio"
	"context"
	"log/slog"
)

// Enumerator invokes one backend through an executor.
type Enumerator struct {
	backend  Backend
	executor Executor
}

// New creates an enumerator for the given backend.
func New(backend Backend, executor Executor) *Enumerator {
	return &Enumerator{backend: backend, executor: executor}
}

// Backend returns the configured backend.
func (e *Enumerator) Backend() Backend {
	return e.backend
}

// Enumerate launches exactly one enumeration process with root as its
// working directory and query as the filename filter. The returned stream is
// consumed incrementally so a result cap can stop it early. A start failure
// (binary missing) is reported as ToolUnavailableError.
func (e *Enumerator) Enumerate(ctx context.Context, root, query string, opts Options) (LineStream, error) {
	cmd := append([]string{e.backend.Name()}, e.backend.Args(query, opts)...)

	slog.Debug("starting enumeration",
		slog.String("tool", e.backend.Name()),
		slog.String("root", root),
		slog.String("query", query))

	proc, stdout, stderr, err := e.executor.Start(ctx, cmd, root, nil)
	if err != nil {
		return nil, &ToolUnavailableError{Tool: e.backend.Name(), Cause: err}
	}

	// The tool blocks on a full stderr pipe if nobody reads it, so stderr is
	// drained concurrently; a short tail is kept for failure reporting.
	return newStream(e.backend, proc, bufio.NewScanner(stdout), tailStderr(stderr)), nil
}
