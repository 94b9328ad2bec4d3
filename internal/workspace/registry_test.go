package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestRegistry_DefaultIsCwd(t *testing.T) {
	cwd := resolvedTempDir(t)
	reg := NewRegistry(cwd)

	assert.Equal(t, cwd, reg.Current())
}

func TestRegistry_SetValidDirectory(t *testing.T) {
	cwd := resolvedTempDir(t)
	target := filepath.Join(cwd, "proj")
	require.NoError(t, os.Mkdir(target, 0755))

	reg := NewRegistry(cwd)
	got, err := reg.Set(target)

	require.NoError(t, err)
	assert.Equal(t, target, got)
	assert.Equal(t, target, reg.Current())
}

func TestRegistry_SetRelativeResolvesAgainstCwd(t *testing.T) {
	cwd := resolvedTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "proj"), 0755))

	reg := NewRegistry(cwd)
	got, err := reg.Set("proj")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "proj"), got)
}

func TestRegistry_SetInvalidLeavesRootUnchanged(t *testing.T) {
	cwd := resolvedTempDir(t)
	reg := NewRegistry(cwd)

	before := reg.Current()
	_, err := reg.Set("/does/not/exist")

	var invalid *InvalidRootError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, before, reg.Current())
}

func TestRegistry_SetFileFails(t *testing.T) {
	cwd := resolvedTempDir(t)
	file := filepath.Join(cwd, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	reg := NewRegistry(cwd)
	_, err := reg.Set(file)

	var invalid *InvalidRootError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, cwd, reg.Current())
}

func TestRegistry_EmptyResetsToCwd(t *testing.T) {
	cwd := resolvedTempDir(t)
	other := filepath.Join(cwd, "other")
	require.NoError(t, os.Mkdir(other, 0755))

	reg := NewRegistry(cwd)
	_, err := reg.Set(other)
	require.NoError(t, err)

	got, err := reg.Set("")
	require.NoError(t, err)
	assert.Equal(t, cwd, got)

	// Reset is idempotent.
	again, err := reg.Set("")
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, cwd, reg.Current())
}

func TestRegistry_RoundTripSameDirectory(t *testing.T) {
	cwd := resolvedTempDir(t)
	target := filepath.Join(cwd, "proj")
	require.NoError(t, os.Mkdir(target, 0755))

	reg := NewRegistry(cwd)
	// Trailing slash and dot segments normalise to the same stored root.
	first, err := reg.Set(target + string(filepath.Separator))
	require.NoError(t, err)
	second, err := reg.Set(filepath.Join(target, ".", "..", "proj"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, target, reg.Current())
}

func TestDetectGitRoot_FindsEnclosingWorktree(t *testing.T) {
	root := resolvedTempDir(t)
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := DetectGitRoot(nested)

	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestDetectGitRoot_NoRepository(t *testing.T) {
	dir := resolvedTempDir(t)

	_, err := DetectGitRoot(dir)

	var noRoot *NoGitRootError
	require.ErrorAs(t, err, &noRoot)
}
