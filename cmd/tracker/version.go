package main

import (
	"fmt"

	"github.com/aretw0/tracker"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tracker",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracker version %s\n", tracker.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
