package enumerate

import (
	"testing"

	"github.com/Cyclone1070/finch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForName_KnownBackends(t *testing.T) {
	fd, err := ForName("fd")
	require.NoError(t, err)
	assert.Equal(t, "fd", fd.Name())

	rg, err := ForName("rg")
	require.NoError(t, err)
	assert.Equal(t, "rg", rg.Name())
}

func TestForName_UnknownBackend(t *testing.T) {
	_, err := ForName("locate")

	var unknown *UnknownBackendError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "locate", unknown.Name)
}

func TestFdArgs_Defaults(t *testing.T) {
	args := fdBackend{}.Args("readme", Options{})

	assert.Equal(t, []string{"--type", "f", "--color", "never", "--", "readme"}, args)
}

func TestFdArgs_EmptyQueryEnumeratesAll(t *testing.T) {
	args := fdBackend{}.Args("", Options{})

	assert.Equal(t, []string{"--type", "f", "--color", "never"}, args)
	assert.NotContains(t, args, "--")
}

func TestFdArgs_HiddenAndNoIgnore(t *testing.T) {
	args := fdBackend{}.Args("x", Options{Hidden: true, NoIgnore: true})

	assert.Contains(t, args, "--hidden")
	assert.Contains(t, args, "--no-ignore")
}

func TestFdArgs_FileTypesAndExtraArgs(t *testing.T) {
	args := fdBackend{}.Args("x", Options{
		FileTypes: []string{"md", "go"},
		ExtraArgs: []string{"--follow"},
	})

	assert.Equal(t, []string{
		"--type", "f", "--color", "never",
		"--extension", "md", "--extension", "go",
		"--follow",
		"--", "x",
	}, args)
}

func TestRgArgs_FilesModeWithQueryGlob(t *testing.T) {
	args := rgBackend{}.Args("note", Options{})

	assert.Equal(t, []string{"--files", "--color", "never", "--iglob", "*note*"}, args)
}

func TestRgArgs_EmptyQueryNoGlob(t *testing.T) {
	args := rgBackend{}.Args("", Options{})

	assert.Equal(t, []string{"--files", "--color", "never"}, args)
}

func TestRgArgs_FileTypesFoldQueryIntoGlobs(t *testing.T) {
	args := rgBackend{}.Args("note", Options{FileTypes: []string{"md", "txt"}})

	assert.Equal(t, []string{
		"--files", "--color", "never",
		"--iglob", "*note*.md", "--iglob", "*note*.txt",
	}, args)
}

func TestRgArgs_FileTypesWithoutQuery(t *testing.T) {
	args := rgBackend{}.Args("", Options{FileTypes: []string{"md"}})

	assert.Equal(t, []string{"--files", "--color", "never", "--iglob", "*.md"}, args)
}

func TestRgArgs_HiddenAndNoIgnore(t *testing.T) {
	args := rgBackend{}.Args("", Options{Hidden: true, NoIgnore: true})

	assert.Contains(t, args, "--hidden")
	assert.Contains(t, args, "--no-ignore")
}

func TestNoMatchExit_Policies(t *testing.T) {
	assert.False(t, fdBackend{}.NoMatchExit(1))
	assert.True(t, rgBackend{}.NoMatchExit(1))
	assert.False(t, rgBackend{}.NoMatchExit(2))
}

func TestOptionsFrom_MapsSearchConfig(t *testing.T) {
	cfg := config.SearchConfig{
		SearchHidden:     true,
		RespectGitignore: false,
		Backend:          "rg",
		FileTypes:        []string{"md"},
		ExtraArgs:        map[string][]string{"rg": {"--no-messages"}, "fd": {"--follow"}},
	}

	opts := OptionsFrom(cfg)

	assert.True(t, opts.Hidden)
	assert.True(t, opts.NoIgnore)
	assert.Equal(t, []string{"md"}, opts.FileTypes)
	assert.Equal(t, []string{"--no-messages"}, opts.ExtraArgs)
}
