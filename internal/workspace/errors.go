package workspace

import "fmt"

// InvalidRootError implements the behavioral interface for search roots that
// do not resolve to an existing directory. The previously stored root is
// always left unchanged when this error is returned.
type InvalidRootError struct {
	Path  string
	Cause error
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid search root %s: %v", e.Path, e.Cause)
}

func (e *InvalidRootError) Unwrap() error      { return e.Cause }
func (e *InvalidRootError) InvalidRoot() bool  { return true }
func (e *InvalidRootError) InvalidInput() bool { return true }

// NoGitRootError is returned when no enclosing git worktree exists.
type NoGitRootError struct {
	Start string
}

func (e *NoGitRootError) Error() string {
	return "no git repository found at or above: " + e.Start
}
