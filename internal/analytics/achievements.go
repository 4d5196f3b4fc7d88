package analytics

import (
	"context"

	"github.com/vmaslov/linguo/internal/profile"
	"github.com/vmaslov/linguo/internal/quiz"
)

// quizMasterCount is the quiz total that unlocks Quiz Master.
const quizMasterCount = 5

// CheckAchievements evaluates a finalized result against the unlock
// rules. languageQuizCount is the number of quizzes completed for the
// result's language, including this one. The rules are independent; a
// single result can unlock several achievements. The caller persists
// whatever comes back.
func CheckAchievements(result *quiz.Result, languageQuizCount int) []profile.Achievement {
	var unlocked []profile.Achievement
	now := result.CompletedAt

	if result.Percentage() == 100.0 {
		unlocked = append(unlocked, profile.Achievement{
			Title:       "Perfect Score!",
			Description: "Got 100% on a quiz",
			Icon:        "⭐",
			Requirement: 1,
			Unlocked:    true,
			UnlockedAt:  &now,
			Category:    profile.CategoryPoints,
		})
	}

	if isSpeedRun(result) {
		unlocked = append(unlocked, profile.Achievement{
			Title:       "Speed Demon",
			Description: "Completed quiz in record time",
			Icon:        "⚡",
			Requirement: 1,
			Unlocked:    true,
			UnlockedAt:  &now,
			Category:    profile.CategoryPoints,
		})
	}

	if languageQuizCount == quizMasterCount {
		unlocked = append(unlocked, profile.Achievement{
			Title:       "Quiz Master",
			Description: "Completed 5 quizzes",
			Icon:        "🎓",
			Requirement: quizMasterCount,
			Unlocked:    true,
			UnlockedAt:  &now,
			Category:    profile.CategoryPoints,
		})
	}

	return unlocked
}

// Unlocked evaluates a finalized result against the achievement rules,
// counting the language's stored quizzes (the result is expected to be
// in history already).
func (s *Service) Unlocked(ctx context.Context, result *quiz.Result) ([]profile.Achievement, error) {
	results, err := s.history.ByLanguage(ctx, result.Quiz.LanguageCode)
	if err != nil {
		return nil, err
	}
	return CheckAchievements(result, len(results)), nil
}

// isSpeedRun reports whether the learner used less than half the
// allotted time per question.
func isSpeedRun(result *quiz.Result) bool {
	n := len(result.Quiz.Questions)
	if n == 0 {
		return false
	}
	allotted := float64(result.Quiz.TimeLimit) / float64(n)
	actual := result.CompletedAt.Sub(result.Quiz.StartTime).Seconds() / float64(n)
	return actual < allotted*0.5
}
