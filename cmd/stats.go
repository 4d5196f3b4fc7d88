package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user, err := st.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if user == nil {
			fmt.Println("No profile yet. Run `linguo` to get started.")
			return nil
		}

		s := user.Statistics
		fmt.Printf("%s — rank %s %s\n", user.Name, s.Rank.Icon(), s.Rank.DisplayName())
		fmt.Printf("Points: %d   Streak: %d days (best %d)\n",
			s.TotalPoints, s.CurrentStreak, s.LongestStreak)
		fmt.Printf("Lessons completed: %d   Quizzes taken: %d\n\n",
			s.TotalLessonsCompleted, s.TotalQuizzesTaken)

		svc := analytics.New(st)
		for _, code := range user.SelectedLanguages {
			prog := user.Progress[code]
			stats, err := svc.Statistics(ctx, code)
			if err != nil {
				return fmt.Errorf("statistics for %s: %w", code, err)
			}
			fmt.Printf("%s: %d lessons done (%.0f%%), %d quizzes, %.0f%% accuracy\n",
				code, prog.CompletedCount(), prog.CompletionPercentage(),
				stats.TotalQuizzes, stats.Accuracy)
		}
		return nil
	},
}
