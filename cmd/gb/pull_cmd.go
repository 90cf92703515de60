package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/gb/internal/git"
)

func newPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull [branch]",
		Short:   "Pull a branch from the remote",
		GroupID: GroupSync,
		Args:    cobra.MaximumNArgs(1),
		Long:    `Pull a branch from the configured remote. Defaults to the current branch.`,
		Example: `  gb pull          # Pull the current branch
  gb pull develop  # Pull develop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			branch, err := argOrCurrentBranch(ctx, args)
			if err != nil {
				return err
			}
			return runPull(ctx, branch)
		},
		ValidArgsFunction: completeBranches,
	}

	return cmd
}

// argOrCurrentBranch resolves the optional branch argument, falling
// back to the checked-out branch.
func argOrCurrentBranch(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return git.CurrentBranch(ctx, workDir)
}
