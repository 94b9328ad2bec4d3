package pathutil

import "fmt"

// NotADirectoryError implements the behavioral interface for paths that
// resolve to something other than a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return "path is not a directory: " + e.Path
}

func (e *NotADirectoryError) NotDirectory() bool { return true }

// ResolveError is returned when a path cannot be resolved to canonical form.
type ResolveError struct {
	Path  string
	Cause error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve path %s: %v", e.Path, e.Cause)
}

func (e *ResolveError) Unwrap() error { return e.Cause }
func (e *ResolveError) IOError() bool { return true }
