package workspace

import (
	"errors"

	"github.com/go-git/go-git/v5"
)

// DetectGitRoot returns the worktree root of the git repository enclosing
// start. It walks upward the way git itself does; bare repositories and
// directories outside any repository yield a NoGitRootError.
func DetectGitRoot(start string) (string, error) {
	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", &NoGitRootError{Start: start}
		}
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: there is no worktree to search under.
		return "", &NoGitRootError{Start: start}
	}
	return wt.Filesystem.Root(), nil
}
