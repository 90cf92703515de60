package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gb/internal/git"
	"github.com/raphi011/gb/internal/output"
)

func newListCmd() *cobra.Command {
	var remotes bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List branches",
		Aliases: []string{"ls"},
		GroupID: GroupBranch,
		Args:    cobra.NoArgs,
		Long: `List branches, one per line, local branches first.

Output goes to stdout without decoration so it can be piped.`,
		Example: `  gb list            # Local branches
  gb list --remotes  # Local and remote-tracking branches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !git.IsInsideRepo(ctx, workDir) {
				return git.ErrNotARepo
			}

			branches, err := git.ListBranches(ctx, workDir, remotes)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			for _, b := range branches {
				out.Println(b.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remotes, "remotes", "r", false, "Include remote-tracking branches")

	return cmd
}
