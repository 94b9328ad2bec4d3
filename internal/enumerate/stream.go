package enumerate

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// stderrTailLimit bounds how much of a tool's stderr is retained for
// diagnostics; everything past it is discarded.
const stderrTailLimit = 4 << 10

// stderrTail drains a process's stderr on its own goroutine so the child can
// never stall on a full pipe, keeping the first stderrTailLimit bytes.
type stderrTail struct {
	done chan struct{}
	buf  bytes.Buffer
}

func tailStderr(r io.Reader) *stderrTail {
	t := &stderrTail{done: make(chan struct{})}
	if r == nil {
		close(t.done)
		return t
	}
	go func() {
		defer close(t.done)
		_, _ = io.Copy(&t.buf, io.LimitReader(r, stderrTailLimit))
		_, _ = io.Copy(io.Discard, r)
	}()
	return t
}

// text waits for stderr to reach end of input and returns the retained tail.
func (t *stderrTail) text() string {
	<-t.done
	return strings.TrimSpace(t.buf.String())
}

// Stream implements LineStream over a running enumeration process. It is
// owned by a single consumer goroutine and is not safe for concurrent use.
type Stream struct {
	backend Backend
	proc    Process
	scanner *bufio.Scanner
	stderr  *stderrTail

	cancelled bool
	produced  int
	closed    bool
	closeErr  error
}

func newStream(backend Backend, proc Process, scanner *bufio.Scanner, stderr *stderrTail) *Stream {
	return &Stream{backend: backend, proc: proc, scanner: scanner, stderr: stderr}
}

// Scan advances to the next output line. Returns false at end of output,
// after cancellation, or on a read error (surfaced by Close).
func (s *Stream) Scan() bool {
	if s.closed || s.cancelled {
		return false
	}
	if s.scanner.Scan() {
		s.produced++
		return true
	}
	return false
}

// Text returns the current output line.
func (s *Stream) Text() string {
	return s.scanner.Text()
}

// Cancel requests termination of the process. Idempotent; a no-op once the
// stream has been closed.
func (s *Stream) Cancel() {
	if s.cancelled || s.closed {
		return
	}
	s.cancelled = true
	_ = s.proc.Kill()
}

// Close waits for the process to exit and classifies the outcome:
//   - a cancelled stream closes without error regardless of exit status
//   - a clean exit, or one after output was already produced, is success
//   - the backend's no-match exit code with zero output is success (empty)
//   - any other non-zero exit before output maps to ToolUnavailableError
func (s *Stream) Close() error {
	if s.closed {
		return s.closeErr
	}
	s.closed = true

	// Stderr must reach end of input before Wait, which closes the pipes.
	stderrText := s.stderr.text()
	waitErr := s.proc.Wait()

	switch {
	case s.cancelled:
		s.closeErr = nil
	case waitErr == nil:
		if err := s.scanner.Err(); err != nil {
			s.closeErr = &OutputError{Tool: s.backend.Name(), Cause: err}
		}
	case s.produced > 0:
		// Partial output followed by a bad exit: the lines already
		// delivered stand.
		s.closeErr = nil
	case s.backend.NoMatchExit(exitCode(waitErr)):
		s.closeErr = nil
	default:
		s.closeErr = &ToolUnavailableError{Tool: s.backend.Name(), Stderr: stderrText, Cause: waitErr}
	}

	return s.closeErr
}

// exitCode extracts the exit code from an error returned by Process.Wait.
// Returns 0 for nil, the code for exit errors, or -1 for unknown error types.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
