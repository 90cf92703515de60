package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gb/internal/config"
	"github.com/raphi011/gb/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gb configuration.

Config file: ~/.config/gb/config.toml`,
		Example: `  gb config init  # Create default config
  gb config show  # Show effective config
  gb config path  # Print config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			fmt.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration: the config file merged with
defaults for any field it leaves unset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			out.Printf("remote: %s\n", cfg.Remote)
			out.Printf("show_remotes: %v\n", cfg.ShowRemotes)
			out.Printf("keys.pull: %s\n", cfg.Keys.Pull)
			out.Printf("keys.push: %s\n", cfg.Keys.Push)
			out.Printf("keys.fetch: %s\n", cfg.Keys.Fetch)
			out.Printf("keys.copy: %s\n", cfg.Keys.Copy)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}
