package cmd

import (
	"github.com/spf13/cobra"
)

// learnCmd is an explicit alias for the bare `linguo` invocation.
var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Open the learning interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)
}
