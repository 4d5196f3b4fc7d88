// Package analytics derives statistics, grades, weak areas and
// achievement triggers from quiz history. It never mutates anything.
package analytics

import (
	"context"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/quiz"
)

// weakAccuracyThreshold is the per-type accuracy below which an
// exercise type counts as a weak area.
const weakAccuracyThreshold = 0.70

// passingPercentage is the minimum quiz percentage considered a pass.
const passingPercentage = 60.0

// improvementWindow is how many recent results feed the improvement
// delta.
const improvementWindow = 3

// Service reads quiz history.
type Service struct {
	history quiz.History
}

// New creates an analytics service over a history.
func New(history quiz.History) *Service {
	return &Service{history: history}
}

// Statistics is the aggregate quiz performance for one language.
type Statistics struct {
	TotalQuizzes      int
	TotalQuestions    int
	CorrectAnswers    int
	AverageScore      float64
	Accuracy          float64 // percent
	BestScore         int
	RecentImprovement float64
}

// PerformanceLevel maps accuracy to a coarse label.
func (s Statistics) PerformanceLevel() string {
	switch {
	case s.Accuracy >= 90:
		return "Excellent"
	case s.Accuracy >= 80:
		return "Very Good"
	case s.Accuracy >= 70:
		return "Good"
	case s.Accuracy >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// Statistics aggregates the language's quiz history.
func (s *Service) Statistics(ctx context.Context, code string) (Statistics, error) {
	results, err := s.history.ByLanguage(ctx, code)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{TotalQuizzes: len(results)}
	totalScore := 0
	for _, r := range results {
		stats.TotalQuestions += len(r.Quiz.Questions)
		stats.CorrectAnswers += r.Quiz.CorrectAnswers
		totalScore += r.Quiz.Score
		if r.Quiz.Score > stats.BestScore {
			stats.BestScore = r.Quiz.Score
		}
	}
	if len(results) > 0 {
		stats.AverageScore = float64(totalScore) / float64(len(results))
	}
	if stats.TotalQuestions > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
	}
	stats.RecentImprovement = improvement(results)
	return stats, nil
}

// improvement compares the average score of the last few quizzes with
// the average of the quizzes before them.
func improvement(results []quiz.Result) float64 {
	if len(results) < 2 {
		return 0
	}

	recentStart := len(results) - improvementWindow
	if recentStart < 0 {
		recentStart = 0
	}
	olderEnd := len(results) - improvementWindow
	if olderEnd < 1 {
		olderEnd = 1
	}

	return meanScore(results[recentStart:]) - meanScore(results[:olderEnd])
}

func meanScore(results []quiz.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Quiz.Score
	}
	return float64(total) / float64(len(results))
}

// Grade maps a percentage to a letter grade band.
func Grade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

// IsPassed reports whether a percentage clears the passing bar.
func IsPassed(percentage float64) bool {
	return percentage >= passingPercentage
}

// WeakAreas returns the exercise types answered with under 70%
// accuracy across the language's whole history, in display order.
func (s *Service) WeakAreas(ctx context.Context, code string) ([]catalog.ExerciseType, error) {
	results, err := s.history.ByLanguage(ctx, code)
	if err != nil {
		return nil, err
	}

	type tally struct{ correct, total int }
	byType := make(map[catalog.ExerciseType]*tally)

	for _, r := range results {
		for i, question := range r.Quiz.Questions {
			answer := r.Quiz.Answers[i] // missing answer counts as wrong
			t := byType[question.Type]
			if t == nil {
				t = &tally{}
				byType[question.Type] = t
			}
			t.total++
			if answer == question.CorrectAnswer {
				t.correct++
			}
		}
	}

	var weak []catalog.ExerciseType
	for _, exType := range catalog.AllExerciseTypes() {
		t := byType[exType]
		if t == nil || t.total == 0 {
			continue
		}
		if float64(t.correct)/float64(t.total) < weakAccuracyThreshold {
			weak = append(weak, exType)
		}
	}
	return weak, nil
}

// recommendationFor maps an exercise type to its practice advice.
func recommendationFor(exType catalog.ExerciseType) string {
	switch exType {
	case catalog.MultipleChoice:
		return "Practice more vocabulary recognition exercises"
	case catalog.FillInTheBlank:
		return "Focus on grammar and sentence structure"
	case catalog.Translation:
		return "Spend more time on translation exercises"
	case catalog.Pronunciation:
		return "Practice pronunciation with audio exercises"
	case catalog.Listening:
		return "Improve listening skills with dialogue practice"
	default:
		return "Keep practicing"
	}
}

// Recommendations turns the weak areas into practice advice, with
// encouragement when there are none.
func (s *Service) Recommendations(ctx context.Context, code string) ([]string, error) {
	weak, err := s.WeakAreas(ctx, code)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, exType := range weak {
		out = append(out, recommendationFor(exType))
	}
	if len(out) == 0 {
		out = append(out,
			"Great job! Keep up the consistent practice",
			"Try increasing the difficulty level",
		)
	}
	return out, nil
}
