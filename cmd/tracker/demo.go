package main

import (
	"os"

	"github.com/aretw0/tracker/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Add two projects, finish one and print the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")
		return cli.RunDemo(opts, os.Stdout)
	},
}

func init() {
	demoCmd.Flags().Bool("metrics", false, "Print the collected Prometheus metrics after the board")
	rootCmd.AddCommand(demoCmd)
}
