package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/quiz"
)

// finishedQuiz builds a completed 4-question quiz with the given number
// of correct answers and a 120 second limit.
func finishedQuiz(correct int, elapsed time.Duration) quiz.Result {
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	q := quiz.Quiz{
		LanguageCode: "es",
		TimeLimit:    120,
		StartTime:    start,
		Answers:      make(map[int]string),
		Completed:    true,
	}
	for i := 0; i < 4; i++ {
		q.Questions = append(q.Questions, catalog.Exercise{
			Type: catalog.MultipleChoice, CorrectAnswer: "a", Points: 10,
		})
		if i < correct {
			q.Answers[i] = "a"
			q.CorrectAnswers++
			q.Score += 10
		} else {
			q.Answers[i] = "b"
		}
	}
	return quiz.Result{Quiz: q, CompletedAt: start.Add(elapsed)}
}

func achievementTitles(result quiz.Result, count int) []string {
	var out []string
	for _, a := range CheckAchievements(&result, count) {
		out = append(out, a.Title)
	}
	return out
}

func contains(titles []string, want string) bool {
	for _, t := range titles {
		if t == want {
			return true
		}
	}
	return false
}

func TestPerfectScoreAchievement(t *testing.T) {
	got := achievementTitles(finishedQuiz(4, 2*time.Minute), 1)
	if !contains(got, "Perfect Score!") {
		t.Errorf("achievements = %v, want Perfect Score!", got)
	}

	got = achievementTitles(finishedQuiz(3, 2*time.Minute), 1)
	if contains(got, "Perfect Score!") {
		t.Errorf("achievements = %v, 75%% must not unlock Perfect Score!", got)
	}
}

func TestSpeedDemonAchievement(t *testing.T) {
	// Allotted 30s per question. Under 15s per question qualifies.
	got := achievementTitles(finishedQuiz(2, 40*time.Second), 1)
	if !contains(got, "Speed Demon") {
		t.Errorf("achievements = %v, want Speed Demon at 10s/question", got)
	}

	// Exactly half the allotted time does not qualify.
	got = achievementTitles(finishedQuiz(2, 60*time.Second), 1)
	if contains(got, "Speed Demon") {
		t.Errorf("achievements = %v, 15s/question must not unlock Speed Demon", got)
	}
}

func TestQuizMasterAchievement(t *testing.T) {
	if got := achievementTitles(finishedQuiz(2, 2*time.Minute), 5); !contains(got, "Quiz Master") {
		t.Errorf("achievements = %v, want Quiz Master on the fifth quiz", got)
	}
	// Only the fifth quiz unlocks it, not every one after.
	if got := achievementTitles(finishedQuiz(2, 2*time.Minute), 6); contains(got, "Quiz Master") {
		t.Errorf("achievements = %v, sixth quiz must not re-unlock Quiz Master", got)
	}
	if got := achievementTitles(finishedQuiz(2, 2*time.Minute), 4); contains(got, "Quiz Master") {
		t.Errorf("achievements = %v, fourth quiz must not unlock Quiz Master", got)
	}
}

func TestMultipleAchievementsAtOnce(t *testing.T) {
	got := achievementTitles(finishedQuiz(4, 30*time.Second), 5)
	for _, want := range []string{"Perfect Score!", "Speed Demon", "Quiz Master"} {
		if !contains(got, want) {
			t.Errorf("achievements = %v, missing %s", got, want)
		}
	}
}

func TestEmptyQuizNoSpeedDemon(t *testing.T) {
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	r := quiz.Result{
		Quiz:        quiz.Quiz{LanguageCode: "es", StartTime: start, Answers: map[int]string{}},
		CompletedAt: start,
	}
	if got := achievementTitles(r, 1); contains(got, "Speed Demon") {
		t.Errorf("achievements = %v, empty quiz must not unlock Speed Demon", got)
	}
}

func TestUnlockedCountsStoredQuizzes(t *testing.T) {
	history := quiz.NewMemoryHistory()
	svc := New(history)
	ctx := context.Background()

	var last quiz.Result
	for i := 0; i < 5; i++ {
		last = finishedQuiz(2, 2*time.Minute)
		if err := history.Append(ctx, last); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.Unlocked(ctx, &last)
	if err != nil {
		t.Fatal(err)
	}
	var titles []string
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	if !contains(titles, "Quiz Master") {
		t.Errorf("achievements = %v, want Quiz Master after the fifth stored quiz", titles)
	}
}

func TestUnlockedAtMatchesCompletion(t *testing.T) {
	r := finishedQuiz(4, 2*time.Minute)
	for _, a := range CheckAchievements(&r, 1) {
		if !a.Unlocked || a.UnlockedAt == nil || !a.UnlockedAt.Equal(r.CompletedAt) {
			t.Errorf("achievement %q not stamped with completion time", a.Title)
		}
	}
}
