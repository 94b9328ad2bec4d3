// Package pathutil converts user-supplied paths to canonical absolute form
// and back to a display form relative to a reference directory.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ with the current user's home directory.
// Paths without a leading ~ are returned unchanged, as is ~ itself when the
// home directory cannot be determined.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Canonicalise resolves a path to canonical absolute form: ~ is expanded,
// relative paths are joined against base, and symlinks are resolved.
func Canonicalise(path, base string) (string, error) {
	expanded := ExpandUser(path)

	var abs string
	if filepath.IsAbs(expanded) {
		abs = filepath.Clean(expanded)
	} else {
		abs = filepath.Clean(filepath.Join(base, expanded))
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ResolveError{Path: abs, Cause: err}
	}
	return resolved, nil
}

// CanonicaliseRoot canonicalises a search root and verifies it refers to an
// existing directory at validation time.
func CanonicaliseRoot(path, base string) (string, error) {
	resolved, err := Canonicalise(path, base)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &ResolveError{Path: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &NotADirectoryError{Path: resolved}
	}
	return resolved, nil
}

// Display converts an absolute path to a display form relative to ref.
// Falls back to the absolute path when no relative form exists (different
// volumes, relative ref) or when the relative form would climb out of ref
// through parent segments. Display paths always use forward slashes.
func Display(abs, ref string) string {
	if ref == "" {
		return filepath.ToSlash(abs)
	}
	rel, err := filepath.Rel(ref, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
