package main

import (
	"context"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/gb/internal/git"
)

// completeBranches provides branch name completion for positional
// branch arguments. Candidates are ranked by fuzzy relevance rather
// than filtered by prefix, so "fx" completes "feature-x".
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := context.Background()
	if !git.IsInsideRepo(ctx, workDir) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	branches, err := git.ListBranches(ctx, workDir, false)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}

	if toComplete == "" {
		return names, cobra.ShellCompDirectiveNoFileComp
	}

	ranked := fuzzy.Find(toComplete, names)
	matches := make([]string, len(ranked))
	for i, m := range ranked {
		matches[i] = m.Str
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
