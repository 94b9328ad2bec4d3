package enumerate

import "fmt"

// ToolUnavailableError implements the behavioral interface for an
// enumeration binary that is missing or failed before producing any output.
// Zero matches is not this error; it is success with an empty stream.
type ToolUnavailableError struct {
	Tool   string
	Stderr string
	Cause  error
}

func (e *ToolUnavailableError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("enumeration tool %s unavailable: %v: %s", e.Tool, e.Cause, e.Stderr)
	}
	return fmt.Sprintf("enumeration tool %s unavailable: %v", e.Tool, e.Cause)
}

func (e *ToolUnavailableError) Unwrap() error         { return e.Cause }
func (e *ToolUnavailableError) ToolUnavailable() bool { return true }

// UnknownBackendError is returned for a backend name outside the closed set.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown enumeration backend %q", e.Name)
}

func (e *UnknownBackendError) InvalidInput() bool { return true }

// OutputError is returned when process output cannot be read.
type OutputError struct {
	Tool  string
	Cause error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to read %s output: %v", e.Tool, e.Cause)
}

func (e *OutputError) Unwrap() error { return e.Cause }
func (e *OutputError) IOError() bool { return true }
