package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vmaslov/linguo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linguo",
	Short: "Terminal language learning",
	Long:  "Linguo — a terminal app for learning languages through lessons, quizzes and daily challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUO_DB env var)")
	rootCmd.PersistentFlags().StringSlice("content", nil, "Path to a JSON content pack to load (repeatable)")

	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LINGUO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	return p, store.EnsureDir(p)
}
