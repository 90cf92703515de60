package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/raphi011/gb/internal/git"
	"github.com/raphi011/gb/internal/ui/progress"
	"github.com/raphi011/gb/internal/ui/prompt"
)

// resolveRemote returns the configured remote, falling back to the
// repository's first remote when the configured one doesn't exist.
func resolveRemote(ctx context.Context) string {
	remotes, err := git.Remotes(ctx, workDir)
	if err != nil || len(remotes) == 0 {
		return cfg.Remote
	}
	if slices.Contains(remotes, cfg.Remote) {
		return cfg.Remote
	}
	return remotes[0]
}

// runSwitch switches to branch, creating it first when create is set.
func runSwitch(ctx context.Context, branch string, create bool) error {
	res, err := git.Switch(ctx, workDir, branch, create)
	printResult(ctx, res)
	return err
}

// runPull pulls branch from the configured remote with a spinner.
func runPull(ctx context.Context, branch string) error {
	remote := resolveRemote(ctx)

	var res git.Result
	err := progress.Run(fmt.Sprintf("Pulling %s from %s...", branch, remote), func() error {
		var err error
		res, err = git.Pull(ctx, workDir, remote, branch)
		return err
	})
	printResult(ctx, res)
	return err
}

// runPush pushes branch to the configured remote. When the branch has
// no upstream yet, the user is asked whether to set one; yes skips the
// prompt.
func runPush(ctx context.Context, branch string, setUpstream, yes bool) error {
	remote := resolveRemote(ctx)

	if !setUpstream && !git.HasUpstream(ctx, workDir, branch) {
		if yes {
			setUpstream = true
		} else {
			q := fmt.Sprintf("Branch %q has no upstream. Push and set upstream to %s?", branch, remote)
			answer, err := prompt.Confirm(q)
			if err != nil {
				return err
			}
			if !answer.Confirmed {
				return nil
			}
			setUpstream = true
		}
	}

	var res git.Result
	err := progress.Run(fmt.Sprintf("Pushing %s to %s...", branch, remote), func() error {
		var err error
		res, err = git.Push(ctx, workDir, remote, branch, setUpstream)
		return err
	})
	printResult(ctx, res)
	return err
}

// runFetch updates remote-tracking branches from the configured remote.
func runFetch(ctx context.Context) error {
	remote := resolveRemote(ctx)

	var res git.Result
	err := progress.Run(fmt.Sprintf("Fetching %s...", remote), func() error {
		var err error
		res, err = git.Fetch(ctx, workDir, remote)
		return err
	})
	printResult(ctx, res)
	return err
}
