package main

import (
	"github.com/spf13/cobra"
)

func newPushCmd() *cobra.Command {
	var (
		setUpstream bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:     "push [branch]",
		Short:   "Push a branch to the remote",
		GroupID: GroupSync,
		Args:    cobra.MaximumNArgs(1),
		Long: `Push a branch to the configured remote. Defaults to the current
branch.

When the branch has no upstream yet, gb asks before pushing with
--set-upstream. Use -y to skip the prompt.`,
		Example: `  gb push             # Push the current branch
  gb push feature-x   # Push feature-x
  gb push -u          # Push and set upstream
  gb push -y          # Set upstream without asking if needed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			branch, err := argOrCurrentBranch(ctx, args)
			if err != nil {
				return err
			}
			return runPush(ctx, branch, setUpstream, yes)
		},
		ValidArgsFunction: completeBranches,
	}

	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Set the upstream for the branch")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Assume yes for the upstream prompt")

	return cmd
}
