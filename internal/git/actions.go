package git

import (
	"context"
	"fmt"
)

// Result is the structured outcome of a git operation: the subprocess
// exit code and its captured output. ExitCode is -1 when the process
// could not be started.
type Result struct {
	ExitCode int
	Output   string
}

// switchArgs builds the argv tail for a branch switch.
func switchArgs(branch string, create bool) []string {
	if create {
		return []string{"switch", "-c", branch}
	}
	return []string{"switch", branch}
}

// pullArgs builds the argv tail for a pull from remote.
func pullArgs(remote, branch string) []string {
	return []string{"pull", remote, branch}
}

// pushArgs builds the argv tail for a push to remote.
func pushArgs(remote, branch string, setUpstream bool) []string {
	if setUpstream {
		return []string{"push", "--set-upstream", remote, branch}
	}
	return []string{"push", remote, branch}
}

// Switch checks out the given branch, creating it first when create is
// set. Remote-tracking branches are resolved by short name, letting git
// create the local tracking branch.
func Switch(ctx context.Context, dir, branch string, create bool) (Result, error) {
	out, code, err := combinedGit(ctx, dir, switchArgs(branch, create)...)
	res := Result{ExitCode: code, Output: out}
	if err != nil {
		if create {
			return res, fmt.Errorf("failed to create branch %q: %w", branch, err)
		}
		return res, fmt.Errorf("failed to switch to %q: %w", branch, err)
	}
	return res, nil
}

// Pull pulls the given branch from the remote.
func Pull(ctx context.Context, dir, remote, branch string) (Result, error) {
	out, code, err := combinedGit(ctx, dir, pullArgs(remote, branch)...)
	res := Result{ExitCode: code, Output: out}
	if err != nil {
		return res, fmt.Errorf("failed to pull %s/%s: %w", remote, branch, err)
	}
	return res, nil
}

// Push pushes the given branch to the remote, optionally configuring
// the upstream.
func Push(ctx context.Context, dir, remote, branch string, setUpstream bool) (Result, error) {
	out, code, err := combinedGit(ctx, dir, pushArgs(remote, branch, setUpstream)...)
	res := Result{ExitCode: code, Output: out}
	if err != nil {
		return res, fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return res, nil
}

// Fetch updates all remote-tracking branches from the remote.
func Fetch(ctx context.Context, dir, remote string) (Result, error) {
	out, code, err := combinedGit(ctx, dir, "fetch", remote, "--prune")
	res := Result{ExitCode: code, Output: out}
	if err != nil {
		return res, fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return res, nil
}
