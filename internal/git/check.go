package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotARepo indicates the working directory is not inside a git repository
var ErrNotARepo = fmt.Errorf("not in a git repository")

// ErrNoBranches indicates the repository has no branches yet
var ErrNoBranches = fmt.Errorf("no branches found (repository has no commits yet?)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if the given path is inside a git repository
func IsInsideRepo(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}
