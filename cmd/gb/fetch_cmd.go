package main

import (
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   "Update remote-tracking branches",
		GroupID: GroupSync,
		Args:    cobra.NoArgs,
		Long:    `Fetch the configured remote with pruning, updating remote-tracking branches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context())
		},
	}

	return cmd
}
