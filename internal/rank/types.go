package rank

// Candidate is one display-ready file-path result. Candidates are produced
// fresh per request and never cached across requests; tool output may change
// on disk between searches.
type Candidate struct {
	// AbsPath is the canonical absolute path of the result.
	AbsPath string `json:"abs_path"`

	// DisplayPath is the path relative to the request's reference
	// directory, falling back to the absolute path.
	DisplayPath string `json:"display_path"`

	// IsDir is a best-effort directory flag from a stat at ranking time.
	IsDir bool `json:"is_dir"`
}
