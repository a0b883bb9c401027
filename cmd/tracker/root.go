package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tracker/internal/cli"
	"github.com/aretw0/tracker/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Tracker is a board of active and finished projects",
	Long: `Tracker keeps every project in one observable registry. The active and finished
lists subscribe to it and redraw after every change. Run without a subcommand to open
the interactive shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the tracker configuration (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.SilenceUsage = true
}

// runOptions reads the persistent flags shared by every command.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{ConfigPath: configPath, Debug: debug}
}
