//go:build integration

package main

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gb/internal/config"
	"github.com/raphi011/gb/internal/git"
	"github.com/raphi011/gb/internal/log"
	"github.com/raphi011/gb/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit and the given
// extra branches, returning its path.
func setupTestRepo(t *testing.T, branches ...string) string {
	t.Helper()

	repoPath := resolvePath(t, t.TempDir())

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	run("git", "init", "-b", "main")
	run("git", "config", "user.email", "test@test.com")
	run("git", "config", "user.name", "Test User")
	run("git", "config", "commit.gpgsign", "false")
	run("git", "commit", "--allow-empty", "-m", "Initial commit")

	for _, b := range branches {
		run("git", "branch", b)
	}

	return repoPath
}

// testContext builds a command context with a quiet logger and a
// captured stdout printer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var stdout bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	return ctx, &stdout
}

func TestList_PrintsBranches(t *testing.T) {
	if err := git.CheckGit(); err != nil {
		t.Skip("git not installed")
	}

	workDir = setupTestRepo(t, "develop", "feature-x")
	cfg = config.Default()

	ctx, stdout := testContext(t)

	cmd := newListCmd()
	cmd.SetContext(ctx)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("gb list failed: %v", err)
	}

	got := stdout.String()
	for _, want := range []string{"main", "develop", "feature-x"} {
		if !strings.Contains(got, want) {
			t.Errorf("list output missing %q:\n%s", want, got)
		}
	}
}

func TestSwitch_ChangesBranch(t *testing.T) {
	if err := git.CheckGit(); err != nil {
		t.Skip("git not installed")
	}

	workDir = setupTestRepo(t, "develop")
	cfg = config.Default()

	ctx, _ := testContext(t)

	if err := runSwitch(ctx, "develop", false); err != nil {
		t.Fatalf("switch failed: %v", err)
	}

	current, err := git.CurrentBranch(ctx, workDir)
	if err != nil {
		t.Fatalf("current branch: %v", err)
	}
	if current != "develop" {
		t.Errorf("current branch = %q, want develop", current)
	}
}

func TestSwitch_CreatesBranch(t *testing.T) {
	if err := git.CheckGit(); err != nil {
		t.Skip("git not installed")
	}

	workDir = setupTestRepo(t)
	cfg = config.Default()

	ctx, _ := testContext(t)

	if err := runSwitch(ctx, "feature-new", true); err != nil {
		t.Fatalf("switch -c failed: %v", err)
	}

	if !git.BranchExists(ctx, workDir, "feature-new") {
		t.Error("branch feature-new was not created")
	}
}
