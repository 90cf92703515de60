package main

import (
	"github.com/spf13/cobra"
)

func newSwitchCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "switch <branch>",
		Short:   "Switch to a branch",
		Aliases: []string{"sw"},
		GroupID: GroupBranch,
		Args:    cobra.ExactArgs(1),
		Long: `Switch to an existing branch without opening the picker.

Use -c to create the branch first. Remote branch names may be given in
their short form; git creates a local tracking branch.`,
		Example: `  gb switch main        # Switch to main
  gb switch -c feature  # Create and switch to feature`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd.Context(), args[0], create)
		},
		ValidArgsFunction: completeBranches,
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "Create the branch before switching")

	return cmd
}
