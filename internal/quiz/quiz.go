// Package quiz builds, runs and scores quiz sessions, including the
// adaptive daily challenge.
package quiz

import (
	"time"

	"github.com/vmaslov/linguo/internal/catalog"
)

// Per-question time allowances.
const (
	secondsPerQuestion          = 30
	challengeSecondsPerQuestion = 45
	dailyChallengeBonus         = 50
	challengeLessonSpan         = 5
)

// Quiz is the ephemeral working state of one session. It is never
// persisted directly; only the derived Result is.
type Quiz struct {
	ID               string
	LanguageCode     string
	Difficulty       catalog.Difficulty
	Questions        []catalog.Exercise
	TimeLimit        int // seconds for the whole quiz
	IsDailyChallenge bool
	BonusPoints      int

	CurrentQuestionIndex int
	Score                int
	CorrectAnswers       int
	Answers              map[int]string // question index -> submitted answer
	StartTime            time.Time
	Completed            bool
}

// CurrentQuestion returns the exercise under the cursor, or nil when
// the quiz is finished.
func (q *Quiz) CurrentQuestion() *catalog.Exercise {
	if q.CurrentQuestionIndex >= len(q.Questions) {
		return nil
	}
	return &q.Questions[q.CurrentQuestionIndex]
}

// Progress returns the fraction of questions passed, in [0, 1].
func (q *Quiz) Progress() float64 {
	if len(q.Questions) == 0 {
		return 0
	}
	return float64(q.CurrentQuestionIndex) / float64(len(q.Questions))
}

// TimeRemaining returns whole seconds left on the clock, floored at 0.
func (q *Quiz) TimeRemaining(now time.Time) int {
	elapsed := int(now.Sub(q.StartTime).Seconds())
	remaining := q.TimeLimit - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Accuracy returns the percentage of answered questions that were
// correct so far.
func (q *Quiz) Accuracy() float64 {
	if q.CurrentQuestionIndex == 0 {
		return 0
	}
	return float64(q.CorrectAnswers) / float64(q.CurrentQuestionIndex) * 100
}

// TotalPossible sums the point values of every question.
func (q *Quiz) TotalPossible() int {
	total := 0
	for _, ex := range q.Questions {
		total += ex.Points
	}
	return total
}

// clone deep-copies the quiz so a Result stays immutable after the live
// session is discarded.
func (q *Quiz) clone() Quiz {
	out := *q
	out.Questions = make([]catalog.Exercise, len(q.Questions))
	copy(out.Questions, q.Questions)
	out.Answers = make(map[int]string, len(q.Answers))
	for k, v := range q.Answers {
		out.Answers[k] = v
	}
	return out
}

// Result is the immutable snapshot of a completed quiz.
type Result struct {
	Quiz        Quiz
	CompletedAt time.Time
}

// Percentage returns correct answers over total questions, as a
// percentage.
func (r *Result) Percentage() float64 {
	if len(r.Quiz.Questions) == 0 {
		return 0
	}
	return float64(r.Quiz.CorrectAnswers) / float64(len(r.Quiz.Questions)) * 100
}
