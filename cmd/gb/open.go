package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gb/internal/git"
	"github.com/raphi011/gb/internal/log"
	"github.com/raphi011/gb/internal/match"
	"github.com/raphi011/gb/internal/ui/picker"
)

// openPicker runs the interactive branch picker and executes the
// chosen action.
func openPicker(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return fmt.Errorf("interactive mode requires a terminal (try 'gb list')")
	}

	if !git.IsInsideRepo(ctx, workDir) {
		return git.ErrNotARepo
	}

	branches, err := git.ListBranches(ctx, workDir, cfg.ShowRemotes)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return git.ErrNoBranches
	}

	title := "Branches"
	if current, err := git.CurrentBranch(ctx, workDir); err == nil {
		title = fmt.Sprintf("Branches (on %s)", current)
	}

	candidates := make([]match.Candidate, len(branches))
	for i, b := range branches {
		candidates[i] = match.Candidate{Name: b.Name, Remote: b.Remote}
	}

	res, err := picker.Run(picker.Options{
		Title:      title,
		Candidates: candidates,
		Keymap: picker.Keymap{
			Pull:  cfg.Keys.Pull,
			Push:  cfg.Keys.Push,
			Fetch: cfg.Keys.Fetch,
			Copy:  cfg.Keys.Copy,
		},
		AllowCreate: true,
	})
	if err != nil {
		return err
	}
	if res.Cancelled {
		return nil
	}

	return dispatch(ctx, res)
}

// dispatch executes the operation chosen in the picker. Remote
// selections are resolved to their short name so git creates a local
// tracking branch.
func dispatch(ctx context.Context, res picker.Result) error {
	branch := res.Branch
	if res.Remote {
		branch = git.Branch{Name: res.Branch, Remote: true}.ShortName()
	}

	switch res.Action {
	case picker.ActionSwitch:
		return runSwitch(ctx, branch, res.Create)
	case picker.ActionPull:
		return runPull(ctx, branch)
	case picker.ActionPush:
		return runPush(ctx, branch, false, false)
	case picker.ActionFetch:
		return runFetch(ctx)
	}
	return nil
}

// printResult relays captured git output to stderr, where git itself
// would have written it.
func printResult(ctx context.Context, res git.Result) {
	if res.Output != "" {
		log.FromContext(ctx).Println(res.Output)
	}
}
