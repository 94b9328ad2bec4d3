package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_MaxResultsMustBePositive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxResults = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_results")
}

func TestValidate_BackendMustBeKnown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Backend = "find"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.backend")
}

func TestValidate_RgBackendAccepted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Backend = "rg"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_TriggerCharSingleCharacter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.TriggerChar = "//"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trigger_char")
}

func TestValidate_ExtraArgsUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.ExtraArgs = map[string][]string{"locate": {"-i"}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra_args")
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxResults = -1
	cfg.UI.ListHeight = 0
	cfg.Watcher.DebounceMs = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_results")
	assert.Contains(t, err.Error(), "ui.list_height")
	assert.Contains(t, err.Error(), "watcher.debounce_ms")
}
