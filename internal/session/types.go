package session

import "github.com/Cyclone1070/finch/internal/rank"

// Request is one search submission. ReferenceDir is the directory display
// paths are computed against; empty means the root captured at submission.
type Request struct {
	Query        string
	ReferenceDir string
}

// Result is the outcome of one request. Exactly one of Candidates or Err is
// meaningful; an empty Candidates with a nil Err is a legitimate empty match.
type Result struct {
	Candidates []rank.Candidate
	Err        error
}
