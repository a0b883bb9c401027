package main

import (
	"os"

	"github.com/aretw0/tracker/internal/cli"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive board",
	Long:  `Reads commands (add, move, list, help, quit) from stdin and redraws the board after every change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
		return cli.RunShell(opts, os.Stdin, os.Stdout)
	},
}

func init() {
	shellCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	rootCmd.Flags().AddFlagSet(shellCmd.Flags())
	rootCmd.AddCommand(shellCmd)
}
