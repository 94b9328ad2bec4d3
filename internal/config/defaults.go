package config

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults:       100,
			SearchHidden:     false,
			RespectGitignore: true,
			Backend:          "fd",
			FileTypes:        nil,
			TriggerChar:      "/",
			ExtraArgs:        nil,
		},
		UI: UIConfig{
			PreviewCacheSize: 128,
			MaxPreviewBytes:  256 * 1024,
			ListHeight:       12,
		},
		Watcher: WatcherConfig{
			Enabled:    true,
			DebounceMs: 200,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}
