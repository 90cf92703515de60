package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gb/internal/config"
	"github.com/raphi011/gb/internal/git"
	"github.com/raphi011/gb/internal/log"
	"github.com/raphi011/gb/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupBranch = "branch"
	GroupSync   = "sync"
	GroupConfig = "config"
)

// rootCmd represents the base command. Without a subcommand it opens
// the interactive branch picker.
var rootCmd = &cobra.Command{
	Use:   "gb",
	Short: "Fuzzy branch switcher for git",
	Long: `gb is an interactive branch switcher for git.

Run it without arguments to open a fuzzy-filterable picker over local
and remote branches. Enter switches to the selected branch; configured
action keys pull, push or fetch instead.`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPicker(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gb: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for diagnostics, printer on stdout for data
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gb -h' for help")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupBranch, Title: "Branch Commands:"},
		&cobra.Group{ID: GroupSync, Title: "Sync Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newListCmd())

	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newFetchCmd())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
