// Package config holds application configuration. Defaults are set in
// DefaultConfig() and can be overridden via a dotfile; values present in the
// config file override defaults (including explicit zero values), missing
// keys are left untouched.
package config

// Config holds all application configuration values.
type Config struct {
	Search  SearchConfig  `json:"search"`
	UI      UIConfig      `json:"ui"`
	Watcher WatcherConfig `json:"watcher"`
	Log     LogConfig     `json:"log"`
}

// SearchConfig is the validated search surface consumed by a session. It is
// immutable for the lifetime of a session; changing it means replacing the
// session.
type SearchConfig struct {
	// MaxResults caps the candidate list; enumeration stops early at the cap.
	MaxResults int `json:"max_results"`

	// SearchHidden includes hidden files in enumeration.
	SearchHidden bool `json:"search_hidden"`

	// RespectGitignore makes the backend honor .gitignore rules.
	RespectGitignore bool `json:"respect_gitignore"`

	// Backend selects the enumeration tool: "fd" or "rg".
	Backend string `json:"backend"`

	// FileTypes restricts results to these extensions (no leading dot).
	// Empty means all files.
	FileTypes []string `json:"file_types"`

	// TriggerChar is the character an editor integration uses to offer
	// path completion. The core does not act on it.
	TriggerChar string `json:"trigger_char"`

	// ExtraArgs appends backend-specific arguments, keyed by backend name.
	ExtraArgs map[string][]string `json:"extra_args"`
}

// UIConfig controls the interactive picker.
type UIConfig struct {
	// PreviewCacheSize bounds the LRU cache of rendered previews.
	PreviewCacheSize int `json:"preview_cache_size"`

	// MaxPreviewBytes caps how much of a file the preview pane reads.
	MaxPreviewBytes int64 `json:"max_preview_bytes"`

	// ListHeight is the number of visible result rows.
	ListHeight int `json:"list_height"`
}

// WatcherConfig controls live refresh in the picker.
type WatcherConfig struct {
	Enabled    bool `json:"enabled"`
	DebounceMs int  `json:"debounce_ms"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level"`

	// File is an optional log file path. Empty logs to stderr only.
	File string `json:"file"`
}
