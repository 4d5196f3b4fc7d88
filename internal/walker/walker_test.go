package walker

import (
	"context"
	"testing"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/profile"
)

func testLesson() *catalog.Lesson {
	return &catalog.Lesson{
		Title:        "Lesson 1: Basic Greetings",
		LanguageCode: "es",
		LessonNumber: 1,
		Vocabulary: []catalog.VocabularyItem{
			{Word: "Hola", Translation: "Hello"},
			{Word: "Gracias", Translation: "Thank you"},
			{Word: "Adiós", Translation: "Goodbye"},
		},
		Dialogues: []catalog.Dialogue{
			{Title: "Greeting", Lines: []catalog.DialogueLine{
				{Speaker: "Alex", Text: "¡Hola!"},
				{Speaker: "Maria", Text: "¡Hola! ¿Cómo estás?"},
			}},
			{Title: "Farewell", Lines: []catalog.DialogueLine{
				{Speaker: "Alex", Text: "Adiós"},
			}},
		},
		Exercises: []catalog.Exercise{
			{Type: catalog.MultipleChoice, Points: 10},
			{Type: catalog.Translation, Points: 15},
		},
		Difficulty: catalog.DifficultyBeginner,
	}
}

func testLedger() (*ledger.Ledger, *profile.User) {
	user := profile.NewUser("Mira", "en")
	return ledger.New(profile.NewMemoryStore(), user), user
}

func TestPoints(t *testing.T) {
	// 50 base + 3 vocab * 5 + 2 dialogues * 10 + (10 + 15) exercise points.
	if got := Points(testLesson()); got != 110 {
		t.Errorf("Points() = %d, want 110", got)
	}
}

func TestFullForwardTraversal(t *testing.T) {
	ctx := context.Background()
	lg, user := testLedger()
	w := New(ctx, testLesson(), lg)

	if w.Phase() != PhaseVocabulary {
		t.Fatalf("initial phase = %v, want vocabulary", w.Phase())
	}

	prev := w.Progress()
	steps := 0
	for !w.Completed() {
		w.Advance(ctx)
		steps++
		if w.Progress() < prev {
			t.Fatalf("progress decreased at step %d: %v -> %v", steps, prev, w.Progress())
		}
		prev = w.Progress()
		if steps > 20 {
			t.Fatal("walker never completed")
		}
	}

	// 3 vocab items + 3 dialogue lines = 6 steps to completion.
	if steps != 6 {
		t.Errorf("steps to complete = %d, want 6", steps)
	}
	if w.Progress() != 1.0 {
		t.Errorf("final progress = %v, want 1.0", w.Progress())
	}
	if w.EarnedPoints() != 110 {
		t.Errorf("earned points = %d, want 110", w.EarnedPoints())
	}
	if !user.Progress["es"].Completed(1) {
		t.Error("lesson 1 not marked complete in progress")
	}
	if user.Statistics.TotalPoints != 110 {
		t.Errorf("ledger total points = %d, want 110", user.Statistics.TotalPoints)
	}
}

func TestAwardFiresOncePerCompletion(t *testing.T) {
	ctx := context.Background()
	lg, user := testLedger()
	w := New(ctx, testLesson(), lg)

	for i := 0; i < 10; i++ {
		w.Advance(ctx)
	}

	if user.Statistics.TotalPoints != 110 {
		t.Errorf("points after extra advances = %d, want 110", user.Statistics.TotalPoints)
	}
	if user.Statistics.TotalLessonsCompleted != 1 {
		t.Errorf("lessons completed = %d, want 1", user.Statistics.TotalLessonsCompleted)
	}
}

func TestVocabularyCursor(t *testing.T) {
	ctx := context.Background()
	lg, _ := testLedger()
	w := New(ctx, testLesson(), lg)

	item := w.CurrentVocabularyItem()
	if item == nil || item.Word != "Hola" {
		t.Fatalf("first item = %v, want Hola", item)
	}

	w.Advance(ctx)
	if got := w.CurrentVocabularyItem().Word; got != "Gracias" {
		t.Errorf("second item = %s, want Gracias", got)
	}

	w.Retreat()
	if got := w.CurrentVocabularyItem().Word; got != "Hola" {
		t.Errorf("after retreat = %s, want Hola", got)
	}

	// Retreat at the very first item is a no-op.
	w.Retreat()
	if got := w.CurrentVocabularyItem().Word; got != "Hola" {
		t.Errorf("retreat at start moved cursor to %s", got)
	}
}

func TestDialogueTransitions(t *testing.T) {
	ctx := context.Background()
	lg, _ := testLedger()
	w := New(ctx, testLesson(), lg)

	// Walk past the vocabulary.
	w.Advance(ctx)
	w.Advance(ctx)
	w.Advance(ctx)

	if w.Phase() != PhaseDialogue {
		t.Fatalf("phase = %v, want dialogue", w.Phase())
	}
	if got := w.CurrentDialogueLine().Text; got != "¡Hola!" {
		t.Errorf("first line = %s", got)
	}

	w.Advance(ctx)
	if got := w.CurrentDialogueLine().Text; got != "¡Hola! ¿Cómo estás?" {
		t.Errorf("second line = %s", got)
	}

	// Crossing into the second dialogue resets the line cursor.
	w.Advance(ctx)
	if got := w.CurrentDialogue().Title; got != "Farewell" {
		t.Errorf("dialogue = %s, want Farewell", got)
	}
	if got := w.CurrentDialogueLine().Text; got != "Adiós" {
		t.Errorf("line = %s, want Adiós", got)
	}

	// Retreat crosses back to the last line of the previous dialogue.
	w.Retreat()
	if got := w.CurrentDialogue().Title; got != "Greeting" {
		t.Errorf("dialogue after retreat = %s, want Greeting", got)
	}
	if got := w.CurrentDialogueLine().Text; got != "¡Hola! ¿Cómo estás?" {
		t.Errorf("line after retreat = %s", got)
	}
}

func TestRetreatAtFirstDialogueLineIsNoop(t *testing.T) {
	ctx := context.Background()
	lg, _ := testLedger()
	lesson := testLesson()
	lesson.Vocabulary = nil
	w := New(ctx, lesson, lg)

	if w.Phase() != PhaseDialogue {
		t.Fatalf("phase = %v, want dialogue", w.Phase())
	}
	w.Retreat()
	if w.Phase() != PhaseDialogue || w.CurrentDialogueLine().Text != "¡Hola!" {
		t.Error("retreat at Dialogue(0,0) should be a no-op")
	}
}

func TestLessonWithoutDialogues(t *testing.T) {
	ctx := context.Background()
	lg, _ := testLedger()
	lesson := testLesson()
	lesson.Dialogues = nil
	w := New(ctx, lesson, lg)

	w.Advance(ctx)
	w.Advance(ctx)
	if w.Completed() {
		t.Fatal("completed too early")
	}
	w.Advance(ctx)
	if !w.Completed() {
		t.Fatal("should complete after last vocabulary item")
	}
}

func TestEmptyLessonCompletesImmediately(t *testing.T) {
	ctx := context.Background()
	lg, user := testLedger()
	lesson := &catalog.Lesson{LanguageCode: "es", LessonNumber: 7, Exercises: nil}
	w := New(ctx, lesson, lg)

	if !w.Completed() {
		t.Fatal("empty lesson should complete immediately")
	}
	if w.Progress() != 0 {
		t.Errorf("empty lesson progress = %v, want 0", w.Progress())
	}
	if user.Statistics.TotalPoints != 50 {
		t.Errorf("award = %d, want 50 base points", user.Statistics.TotalPoints)
	}
}
