package enumerate

import (
	"context"
	"io"
	"os"
)

// Process represents a running external process.
type Process interface {
	// Wait blocks until the process exits and returns its exit error.
	Wait() error

	// Kill forcefully terminates the process.
	Kill() error

	// Signal sends a signal to the process.
	Signal(sig os.Signal) error
}

// Executor defines the interface for starting external commands with
// streaming output.
type Executor interface {
	Start(ctx context.Context, cmd []string, dir string, env []string) (Process, io.Reader, io.Reader, error)
}

// Backend maps a query and options to the argument list of one enumeration
// tool. The set of backends is closed: fd and rg. Adding a backend means
// adding one variant; callers select by name and never build arguments
// themselves.
type Backend interface {
	// Name is both the backend identifier and the binary name.
	Name() string

	// Args builds the argument list (excluding the binary) for enumerating
	// files matching query under the process working directory.
	Args(query string, opts Options) []string

	// NoMatchExit reports whether the tool uses this exit code to signal
	// zero matches rather than failure.
	NoMatchExit(code int) bool
}

// LineStream is a lazy, finite, non-restartable sequence of raw path lines
// produced by one enumeration process.
type LineStream interface {
	// Scan advances to the next line; false at end of output.
	Scan() bool

	// Text returns the current line.
	Text() string

	// Cancel requests termination of a still-running process. Idempotent;
	// a no-op after natural completion.
	Cancel()

	// Close waits for the process to exit and classifies the outcome.
	// A cancelled stream and a zero-match run both close without error.
	Close() error
}
