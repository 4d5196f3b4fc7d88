// Package ledger is the single authoritative mutator of the learner's
// progress and statistics. Engines hand it finalized award deltas; it
// owns every durable write.
package ledger

import (
	"context"
	"time"

	"github.com/vmaslov/linguo/internal/profile"
)

// Ledger applies awards to the in-memory user record and persists the
// whole record after each one. The in-memory copy stays authoritative
// when a save fails.
type Ledger struct {
	store profile.Store
	user  *profile.User
	now   func() time.Time
}

// New creates a ledger for the given user. A nil user makes every award
// a no-op until Attach is called.
func New(store profile.Store, user *profile.User) *Ledger {
	return &Ledger{
		store: store,
		user:  user,
		now:   time.Now,
	}
}

// Attach sets the live user record.
func (l *Ledger) Attach(user *profile.User) {
	l.user = user
}

// User returns the live user record, or nil.
func (l *Ledger) User() *profile.User {
	return l.user
}

// WithClock overrides the ledger's clock. Test hook.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Register creates a fresh user record, attaches it and persists it.
func (l *Ledger) Register(ctx context.Context, name, nativeLanguage string) *profile.User {
	user := profile.NewUser(name, nativeLanguage)
	l.user = user
	_ = l.store.Save(ctx, user)
	return user
}

// SelectLanguage marks a language as actively studied by moving it to
// the front of the selection, and persists the change.
func (l *Ledger) SelectLanguage(ctx context.Context, code string) {
	if l.user == nil || code == "" {
		return
	}

	selected := []string{code}
	for _, c := range l.user.SelectedLanguages {
		if c != code {
			selected = append(selected, c)
		}
	}
	l.user.SelectedLanguages = selected
	_ = l.store.Save(ctx, l.user)
}

// RecordAchievements appends newly unlocked achievements and persists
// the record. Duplicate filtering is the caller's concern.
func (l *Ledger) RecordAchievements(ctx context.Context, unlocked []profile.Achievement) {
	if l.user == nil || len(unlocked) == 0 {
		return
	}
	l.user.Achievements = append(l.user.Achievements, unlocked...)
	_ = l.store.Save(ctx, l.user)
}

// ActiveLanguage returns the language currently studied, or "" when
// none has been selected.
func (l *Ledger) ActiveLanguage() string {
	if l.user == nil || len(l.user.SelectedLanguages) == 0 {
		return ""
	}
	return l.user.SelectedLanguages[0]
}

// Award credits points for a completed lesson or quiz. Lesson numbers
// join the completed set exactly once, but points are re-added on every
// call; repeat completions double-count by design (see DESIGN.md).
func (l *Ledger) Award(ctx context.Context, src Source, points int) {
	if l.user == nil {
		return
	}

	code := src.LanguageCode()
	prog, ok := l.user.Progress[code]
	if !ok {
		prog = profile.LearningProgress{
			LanguageCode:     code,
			CompletedLessons: make(map[int]bool),
			WeeklyGoal:       l.user.LearningGoals.WeeklyGoalLessons,
		}
	}
	if prog.CompletedLessons == nil {
		prog.CompletedLessons = make(map[int]bool)
	}

	if lesson, ok := src.(LessonCompletion); ok {
		prog.CompletedLessons[lesson.LessonNumber] = true
	}
	prog.TotalPoints += points
	now := l.now()
	prog.LastStudyDate = &now
	l.user.Progress[code] = prog

	l.user.Statistics.TotalLessonsCompleted++
	if _, ok := src.(QuizCompletion); ok {
		l.user.Statistics.TotalQuizzesTaken++
	}
	l.user.Statistics.TotalPoints += points
	l.user.Statistics.UpdateRank()

	l.updateStreak()

	// Persistence is fire-and-forget: memory stays authoritative for
	// the session if the save fails.
	_ = l.store.Save(ctx, l.user)
}

// updateStreak records today as a study day and extends or resets the
// consecutive-day streak. A gap of two or more days resets to 1; the
// very first study day bootstraps the streak.
func (l *Ledger) updateStreak() {
	stats := &l.user.Statistics
	if stats.StudyDays == nil {
		stats.StudyDays = make(map[string]bool)
	}

	now := l.now()
	today := profile.DateKey(now)
	yesterday := profile.DateKey(now.AddDate(0, 0, -1))

	stats.StudyDays[today] = true

	if stats.StudyDays[yesterday] || stats.CurrentStreak == 0 {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
}
