package quiz

import (
	"context"
	"math/rand"
	"testing"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/profile"
)

func testEngine() (*Engine, *profile.User, *MemoryHistory) {
	user := profile.NewUser("Mira", "en")
	lg := ledger.New(profile.NewMemoryStore(), user)
	history := NewMemoryHistory()
	e := NewEngine(catalog.New(), lg, history).WithRand(rand.New(rand.NewSource(1)))
	return e, user, history
}

func TestGenerateBeginnerPoolsAllLessons(t *testing.T) {
	e, _, _ := testEngine()

	q := e.Generate("es", catalog.DifficultyBeginner, 10)
	if len(q.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10", len(q.Questions))
	}
	if q.TimeLimit != 300 {
		t.Errorf("TimeLimit = %d, want 300", q.TimeLimit)
	}
	if q.IsDailyChallenge {
		t.Error("regular quiz flagged as daily challenge")
	}
	if e.Current() != q {
		t.Error("generated quiz is not the live quiz")
	}
}

func TestGenerateShortQuizFromSmallPool(t *testing.T) {
	e, _, _ := testEngine()

	// Only the advanced seeded lessons (8-10) match: 6 exercises.
	q := e.Generate("es", catalog.DifficultyAdvanced, 10)
	if len(q.Questions) != 6 {
		t.Fatalf("len(Questions) = %d, want 6", len(q.Questions))
	}
	// The limit still reflects the requested question count.
	if q.TimeLimit != 300 {
		t.Errorf("TimeLimit = %d, want 300", q.TimeLimit)
	}
}

func TestGenerateUnknownLanguage(t *testing.T) {
	e, _, _ := testEngine()
	q := e.Generate("xx", catalog.DifficultyBeginner, 10)
	if len(q.Questions) != 0 {
		t.Errorf("len(Questions) = %d, want 0", len(q.Questions))
	}
}

func TestDailyChallenge(t *testing.T) {
	e, _, _ := testEngine()

	q := e.GenerateDailyChallenge("es")
	// One pick from each of the first 5 lessons plus 2 curated bonus
	// questions.
	if len(q.Questions) != 7 {
		t.Fatalf("len(Questions) = %d, want 7", len(q.Questions))
	}
	if !q.IsDailyChallenge {
		t.Error("IsDailyChallenge = false")
	}
	if q.BonusPoints != 50 {
		t.Errorf("BonusPoints = %d, want 50", q.BonusPoints)
	}
	if q.TimeLimit != 7*45 {
		t.Errorf("TimeLimit = %d, want %d", q.TimeLimit, 7*45)
	}
}

func TestSubmitAnswerScoring(t *testing.T) {
	e, _, _ := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 2)
	q := e.Current()
	q.Questions = []catalog.Exercise{
		{Question: "a", Options: []string{"x", "y"}, CorrectAnswer: "x", Points: 10},
		{Question: "b", Options: []string{"x", "y"}, CorrectAnswer: "y", Points: 15},
	}

	if !e.SubmitAnswer(0, "x") {
		t.Error("correct answer reported incorrect")
	}
	if !e.SubmitAnswer(1, "y") {
		t.Error("correct answer reported incorrect")
	}

	if q.Score != 25 {
		t.Errorf("Score = %d, want 25", q.Score)
	}
	if q.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", q.CorrectAnswers)
	}
}

func TestSubmitAnswerExactMatch(t *testing.T) {
	e, _, _ := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 1)
	q := e.Current()
	q.Questions = []catalog.Exercise{
		{Question: "a", Options: []string{"Hello"}, CorrectAnswer: "Hello", Points: 10},
	}

	// Case-sensitive, no normalization.
	if e.SubmitAnswer(0, "hello") {
		t.Error("case-mismatched answer accepted")
	}
	if q.Answers[0] != "hello" {
		t.Errorf("recorded answer = %q, want %q", q.Answers[0], "hello")
	}

	// Resubmission overwrites the recorded answer.
	if !e.SubmitAnswer(0, "Hello") {
		t.Error("exact answer rejected")
	}
	if q.Answers[0] != "Hello" {
		t.Errorf("recorded answer = %q, want %q", q.Answers[0], "Hello")
	}
}

func TestSubmitAnswerOutOfRange(t *testing.T) {
	e, _, _ := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 2)

	if e.SubmitAnswer(99, "x") {
		t.Error("out-of-range index accepted")
	}
	if e.SubmitAnswer(-1, "x") {
		t.Error("negative index accepted")
	}
}

func TestNextQuestionAndCompletion(t *testing.T) {
	ctx := context.Background()
	e, user, history := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 3)
	q := e.Current()
	n := len(q.Questions)

	for i := 0; i < n-1; i++ {
		e.NextQuestion(ctx)
		if q.CurrentQuestionIndex != i+1 {
			t.Fatalf("index after advance %d = %d", i, q.CurrentQuestionIndex)
		}
	}

	// Advancing past the last question completes the quiz.
	e.NextQuestion(ctx)
	if !q.Completed {
		t.Fatal("quiz not completed")
	}
	if q.CurrentQuestionIndex != n {
		t.Errorf("completed index = %d, want %d", q.CurrentQuestionIndex, n)
	}
	if e.Current() != nil {
		t.Error("live quiz not cleared after completion")
	}

	results, err := history.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("history length = %d, want 1", len(results))
	}
	if user.Statistics.TotalQuizzesTaken != 1 {
		t.Errorf("quizzes taken = %d, want 1", user.Statistics.TotalQuizzesTaken)
	}
}

func TestDailyChallengeCreditsBonus(t *testing.T) {
	ctx := context.Background()
	e, user, _ := testEngine()
	e.GenerateDailyChallenge("es")
	e.Current().Score = 80

	result := e.Complete(ctx)
	if result == nil {
		t.Fatal("Complete() = nil")
	}
	if got := user.Statistics.TotalPoints; got != 130 {
		t.Errorf("credited points = %d, want 130 (80 score + 50 bonus)", got)
	}
}

func TestRegularQuizNoBonus(t *testing.T) {
	ctx := context.Background()
	e, user, _ := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 5)
	e.Current().Score = 80

	e.Complete(ctx)
	if got := user.Statistics.TotalPoints; got != 80 {
		t.Errorf("credited points = %d, want 80", got)
	}
}

func TestResultSnapshotImmutable(t *testing.T) {
	ctx := context.Background()
	e, _, history := testEngine()
	e.Generate("es", catalog.DifficultyBeginner, 2)
	e.SubmitAnswer(0, "something")
	q := e.Current()
	e.Complete(ctx)

	results, _ := history.All(ctx)
	// Mutating the old live quiz must not touch the stored result.
	q.Answers[0] = "tampered"
	if results[0].Quiz.Answers[0] != "something" {
		t.Error("result shares state with the discarded live quiz")
	}
}
