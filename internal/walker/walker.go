// Package walker steps a learner through one lesson's vocabulary and
// dialogue content, tracking fractional progress and awarding points on
// completion.
package walker

import (
	"context"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
)

// basePoints is the flat award for finishing any lesson.
const basePoints = 50

// Phase is the walker's position in the lesson flow.
type Phase int

const (
	PhaseVocabulary Phase = iota
	PhaseDialogue
	PhaseCompleted
)

// Walker is a cursor state machine over a single lesson:
// Vocabulary(i) -> Dialogue(d, l) -> Completed. Out-of-range navigation
// is ignored, never an error.
type Walker struct {
	lesson *catalog.Lesson
	ledger *ledger.Ledger

	phase         Phase
	vocabIndex    int
	dialogueIndex int
	lineIndex     int

	progress     float64
	awarded      bool
	earnedPoints int
}

// New starts a walker at the first vocabulary item. Lessons with no
// vocabulary begin at the first dialogue line; lessons with no content
// at all complete immediately.
func New(ctx context.Context, lesson *catalog.Lesson, lg *ledger.Ledger) *Walker {
	w := &Walker{lesson: lesson, ledger: lg}

	switch {
	case len(lesson.Vocabulary) > 0:
		w.phase = PhaseVocabulary
	case lesson.TotalLines() > 0:
		w.phase = PhaseDialogue
	default:
		w.complete(ctx)
	}
	w.updateProgress()
	return w
}

// Advance moves one step forward. Crossing the final step completes the
// lesson and awards points exactly once.
func (w *Walker) Advance(ctx context.Context) {
	switch w.phase {
	case PhaseVocabulary:
		if w.vocabIndex < len(w.lesson.Vocabulary)-1 {
			w.vocabIndex++
		} else if w.lesson.TotalLines() > 0 {
			w.phase = PhaseDialogue
			w.dialogueIndex = 0
			w.lineIndex = 0
		} else {
			w.complete(ctx)
		}

	case PhaseDialogue:
		d := w.currentDialogue()
		switch {
		case d != nil && w.lineIndex < len(d.Lines)-1:
			w.lineIndex++
		case w.dialogueIndex < len(w.lesson.Dialogues)-1:
			w.dialogueIndex++
			w.lineIndex = 0
		default:
			w.complete(ctx)
		}

	case PhaseCompleted:
		// Nothing past the end.
	}

	w.updateProgress()
}

// Retreat moves one step back. At the first vocabulary item or the
// first dialogue line it is a no-op; it never crosses back from the
// dialogue phase into vocabulary.
func (w *Walker) Retreat() {
	switch w.phase {
	case PhaseVocabulary:
		if w.vocabIndex > 0 {
			w.vocabIndex--
		}

	case PhaseDialogue:
		switch {
		case w.lineIndex > 0:
			w.lineIndex--
		case w.dialogueIndex > 0:
			w.dialogueIndex--
			if d := w.currentDialogue(); d != nil {
				w.lineIndex = len(d.Lines) - 1
			}
		}

	case PhaseCompleted:
	}

	w.updateProgress()
}

// complete transitions to Completed and pushes the award to the ledger.
func (w *Walker) complete(ctx context.Context) {
	w.phase = PhaseCompleted
	if w.awarded {
		return
	}
	w.awarded = true
	w.earnedPoints = Points(w.lesson)
	if w.ledger != nil {
		w.ledger.Award(ctx, ledger.LessonCompletion{
			Language:     w.lesson.LanguageCode,
			LessonNumber: w.lesson.LessonNumber,
		}, w.earnedPoints)
	}
}

// Points computes a lesson's completion award: a flat base plus
// per-item bonuses and the lesson's exercise points.
func Points(lesson *catalog.Lesson) int {
	points := basePoints
	points += len(lesson.Vocabulary) * 5
	points += len(lesson.Dialogues) * 10
	for _, ex := range lesson.Exercises {
		points += ex.Points
	}
	return points
}

// updateProgress recomputes the completed fraction of vocabulary items
// and dialogue lines.
func (w *Walker) updateProgress() {
	total := len(w.lesson.Vocabulary) + w.lesson.TotalLines()
	if total == 0 {
		w.progress = 0
		return
	}
	if w.phase == PhaseCompleted {
		w.progress = 1
		return
	}

	completed := 0
	switch w.phase {
	case PhaseVocabulary:
		completed = w.vocabIndex
	case PhaseDialogue:
		completed = len(w.lesson.Vocabulary)
		for i := 0; i < w.dialogueIndex; i++ {
			completed += len(w.lesson.Dialogues[i].Lines)
		}
		completed += w.lineIndex
	}
	w.progress = float64(completed) / float64(total)
}

// Phase returns the current phase.
func (w *Walker) Phase() Phase {
	return w.phase
}

// Progress returns the completed fraction in [0, 1].
func (w *Walker) Progress() float64 {
	return w.progress
}

// Completed reports whether the lesson has been finished.
func (w *Walker) Completed() bool {
	return w.phase == PhaseCompleted
}

// EarnedPoints returns the award granted on completion, 0 before.
func (w *Walker) EarnedPoints() int {
	return w.earnedPoints
}

// Lesson returns the lesson being walked.
func (w *Walker) Lesson() *catalog.Lesson {
	return w.lesson
}

// CurrentVocabularyItem returns the item under the cursor, or nil
// outside the vocabulary phase.
func (w *Walker) CurrentVocabularyItem() *catalog.VocabularyItem {
	if w.phase != PhaseVocabulary || w.vocabIndex >= len(w.lesson.Vocabulary) {
		return nil
	}
	return &w.lesson.Vocabulary[w.vocabIndex]
}

// CurrentDialogue returns the dialogue under the cursor, or nil outside
// the dialogue phase.
func (w *Walker) CurrentDialogue() *catalog.Dialogue {
	if w.phase != PhaseDialogue {
		return nil
	}
	return w.currentDialogue()
}

// CurrentDialogueLine returns the line under the cursor, or nil outside
// the dialogue phase.
func (w *Walker) CurrentDialogueLine() *catalog.DialogueLine {
	d := w.CurrentDialogue()
	if d == nil || w.lineIndex >= len(d.Lines) {
		return nil
	}
	return &d.Lines[w.lineIndex]
}

func (w *Walker) currentDialogue() *catalog.Dialogue {
	if w.dialogueIndex >= len(w.lesson.Dialogues) {
		return nil
	}
	return &w.lesson.Dialogues[w.dialogueIndex]
}
