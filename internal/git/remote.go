package git

import (
	"context"
	"fmt"
	"strings"
)

// Remotes returns the repository's configured remote names in git's
// output order.
func Remotes(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %v", err)
	}

	var remotes []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			remotes = append(remotes, name)
		}
	}
	return remotes, nil
}

// DefaultRemote returns the repository's first configured remote.
func DefaultRemote(ctx context.Context, dir string) (string, error) {
	remotes, err := Remotes(ctx, dir)
	if err != nil {
		return "", err
	}
	if len(remotes) == 0 {
		return "", fmt.Errorf("no remotes configured")
	}
	return remotes[0], nil
}
