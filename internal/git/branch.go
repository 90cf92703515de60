package git

import (
	"context"
	"fmt"
	"strings"
)

// Branch is a branch known to the repository. Remote branches keep
// their remote-qualified short name (e.g. "origin/feature-x").
type Branch struct {
	Name   string
	Remote bool
}

// ShortName returns the branch name without the remote prefix, suitable
// for git switch (which resolves remote branches by short name).
func (b Branch) ShortName() string {
	if !b.Remote {
		return b.Name
	}
	if idx := strings.Index(b.Name, "/"); idx >= 0 {
		return b.Name[idx+1:]
	}
	return b.Name
}

// ListBranches returns the repository's branches in git's output order,
// local branches first. With includeRemotes, remote-tracking branches
// are appended; the symbolic <remote>/HEAD ref is skipped.
func ListBranches(ctx context.Context, dir string, includeRemotes bool) ([]Branch, error) {
	refs := []string{"refs/heads"}
	if includeRemotes {
		refs = append(refs, "refs/remotes")
	}

	args := append([]string{"for-each-ref", "--format=%(refname)"}, refs...)
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}

	return parseRefs(string(out)), nil
}

// parseRefs converts for-each-ref output (one full refname per line)
// into branches, preserving line order.
func parseRefs(out string) []Branch {
	var branches []Branch
	for _, line := range strings.Split(out, "\n") {
		ref := strings.TrimSpace(line)
		switch {
		case ref == "":
			continue
		case strings.HasPrefix(ref, "refs/heads/"):
			branches = append(branches, Branch{Name: strings.TrimPrefix(ref, "refs/heads/")})
		case strings.HasPrefix(ref, "refs/remotes/"):
			name := strings.TrimPrefix(ref, "refs/remotes/")
			// <remote>/HEAD is a symref to the default branch, not a
			// branch of its own.
			if strings.HasSuffix(name, "/HEAD") {
				continue
			}
			branches = append(branches, Branch{Name: name, Remote: true})
		}
	}
	return branches
}

// CurrentBranch returns the checked-out branch name.
// Returns an error in detached HEAD state.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %v", err)
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "", fmt.Errorf("HEAD is detached; check out a branch first")
	}
	return branch, nil
}

// BranchExists checks if a local branch exists.
func BranchExists(ctx context.Context, dir, branch string) bool {
	return runGit(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// HasUpstream returns true if the local branch has an upstream configured.
func HasUpstream(ctx context.Context, dir, branch string) bool {
	out, err := outputGit(ctx, dir, "config", fmt.Sprintf("branch.%s.merge", branch))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}
