package quiz

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
)

// Engine builds and runs quiz sessions. One live quiz at a time; a
// completed or abandoned quiz is cleared so stale timer ticks no-op.
type Engine struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	history History

	rng     *rand.Rand
	now     func() time.Time
	current *Quiz
}

// NewEngine creates an engine wired to its collaborators.
func NewEngine(cat *catalog.Catalog, lg *ledger.Ledger, history History) *Engine {
	return &Engine{
		catalog: cat,
		ledger:  lg,
		history: history,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// WithRand overrides the engine's randomness source. Test hook.
func (e *Engine) WithRand(rng *rand.Rand) *Engine {
	e.rng = rng
	return e
}

// WithClock overrides the engine's clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Current returns the live quiz, or nil.
func (e *Engine) Current() *Quiz {
	return e.current
}

// Generate builds a regular quiz from the language's exercise pool.
// Requesting beginner difficulty pools exercises from every lesson; a
// pool smaller than questionCount yields a shorter quiz, not an error.
func (e *Engine) Generate(code string, difficulty catalog.Difficulty, questionCount int) *Quiz {
	var pool []catalog.Exercise
	for _, lesson := range e.catalog.Lessons(code) {
		if lesson.Difficulty == difficulty || difficulty == catalog.DifficultyBeginner {
			pool = append(pool, lesson.Exercises...)
		}
	}

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > questionCount {
		pool = pool[:questionCount]
	}

	quiz := &Quiz{
		ID:           uuid.New().String(),
		LanguageCode: code,
		Difficulty:   difficulty,
		Questions:    pool,
		TimeLimit:    questionCount * secondsPerQuestion,
		Answers:      make(map[int]string),
		StartTime:    e.now(),
	}
	e.current = quiz
	return quiz
}

// GenerateDailyChallenge builds the daily challenge: one random
// exercise from each of the language's first five lessons plus the
// curated bonus set, shuffled, with a longer per-question allowance.
func (e *Engine) GenerateDailyChallenge(code string) *Quiz {
	lessons := e.catalog.Lessons(code)
	if len(lessons) > challengeLessonSpan {
		lessons = lessons[:challengeLessonSpan]
	}

	var questions []catalog.Exercise
	for _, lesson := range lessons {
		if len(lesson.Exercises) == 0 {
			continue
		}
		questions = append(questions, lesson.Exercises[e.rng.Intn(len(lesson.Exercises))])
	}
	questions = append(questions, bonusExercises(code)...)

	e.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	quiz := &Quiz{
		ID:               uuid.New().String(),
		LanguageCode:     code,
		Difficulty:       catalog.DifficultyIntermediate,
		Questions:        questions,
		TimeLimit:        len(questions) * challengeSecondsPerQuestion,
		IsDailyChallenge: true,
		BonusPoints:      dailyChallengeBonus,
		Answers:          make(map[int]string),
		StartTime:        e.now(),
	}
	e.current = quiz
	return quiz
}

// SubmitAnswer records an answer for a question by exact string match.
// Resubmission overwrites the recorded answer until the quiz advances.
// Out-of-range indices are no-ops returning false.
func (e *Engine) SubmitAnswer(questionIndex int, answer string) bool {
	q := e.current
	if q == nil || questionIndex < 0 || questionIndex >= len(q.Questions) {
		return false
	}

	question := q.Questions[questionIndex]
	correct := answer == question.CorrectAnswer
	if correct {
		q.Score += question.Points
		q.CorrectAnswers++
	}
	q.Answers[questionIndex] = answer
	return correct
}

// NextQuestion advances the cursor, completing the quiz after the last
// question. Returns the result when this advance finished the quiz.
func (e *Engine) NextQuestion(ctx context.Context) *Result {
	q := e.current
	if q == nil || q.Completed {
		return nil
	}
	if q.CurrentQuestionIndex < len(q.Questions)-1 {
		q.CurrentQuestionIndex++
		return nil
	}
	return e.Complete(ctx)
}

// Complete finalizes the live quiz: credits points (plus the daily
// bonus) through the ledger, appends the immutable result to history
// and clears the session. Returns nil when no quiz is live.
func (e *Engine) Complete(ctx context.Context) *Result {
	q := e.current
	if q == nil {
		return nil
	}

	q.Completed = true
	q.CurrentQuestionIndex = len(q.Questions)

	total := q.Score
	if q.IsDailyChallenge {
		total += q.BonusPoints
	}
	if e.ledger != nil {
		e.ledger.Award(ctx, ledger.QuizCompletion{Language: q.LanguageCode}, total)
	}

	result := Result{Quiz: q.clone(), CompletedAt: e.now()}
	if e.history != nil {
		_ = e.history.Append(ctx, result)
	}

	e.current = nil
	return &result
}

// Abandon discards the live quiz without scoring it.
func (e *Engine) Abandon() {
	e.current = nil
}

// Tick drives the countdown. quizID must match the live quiz; ticks
// from an abandoned or completed session are ignored. At zero the
// current unanswered question gets an empty answer and the quiz moves
// on, as if the learner had submitted. Returns the result when the tick
// finished the quiz.
func (e *Engine) Tick(ctx context.Context, quizID string, now time.Time) *Result {
	q := e.current
	if q == nil || q.ID != quizID || q.Completed {
		return nil
	}
	if q.TimeRemaining(now) > 0 {
		return nil
	}

	idx := q.CurrentQuestionIndex
	if _, answered := q.Answers[idx]; !answered && idx < len(q.Questions) {
		e.SubmitAnswer(idx, "")
	}
	return e.NextQuestion(ctx)
}
