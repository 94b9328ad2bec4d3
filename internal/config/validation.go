package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.MaxResults < 1 {
		errs = append(errs, "search.max_results must be >= 1")
	}
	switch c.Search.Backend {
	case "fd", "rg":
	default:
		errs = append(errs, fmt.Sprintf("search.backend must be \"fd\" or \"rg\", got %q", c.Search.Backend))
	}
	if len(c.Search.TriggerChar) > 1 {
		errs = append(errs, "search.trigger_char must be a single character or empty")
	}
	for backend := range c.Search.ExtraArgs {
		if backend != "fd" && backend != "rg" {
			errs = append(errs, fmt.Sprintf("search.extra_args has unknown backend %q", backend))
		}
	}

	if c.UI.PreviewCacheSize < 1 {
		errs = append(errs, "ui.preview_cache_size must be >= 1")
	}
	if c.UI.MaxPreviewBytes < 1 {
		errs = append(errs, "ui.max_preview_bytes must be >= 1")
	}
	if c.UI.ListHeight < 1 {
		errs = append(errs, "ui.list_height must be >= 1")
	}

	if c.Watcher.DebounceMs < 1 {
		errs = append(errs, "watcher.debounce_ms must be >= 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
