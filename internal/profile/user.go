// Package profile defines the durable per-user record: selected
// languages, goals, preferences, per-language progress and aggregate
// statistics.
package profile

import (
	"time"

	"github.com/vmaslov/linguo/internal/catalog"
)

// fixedLessonDenominator is the lesson count used for completion
// percentage regardless of a language's actual total. Kept from the
// original content sizing.
const fixedLessonDenominator = 50.0

// User is the whole durable record. It is persisted as one document;
// there is no field-level persistence.
type User struct {
	Name              string                      `json:"name"`
	NativeLanguage    string                      `json:"nativeLanguage"`
	DateJoined        time.Time                   `json:"dateJoined"`
	SelectedLanguages []string                    `json:"selectedLanguages"`
	LearningGoals     LearningGoals               `json:"learningGoals"`
	Preferences       Preferences                 `json:"preferences"`
	Progress          map[string]LearningProgress `json:"progress"`
	Achievements      []Achievement               `json:"achievements"`
	Statistics        Statistics                  `json:"statistics"`
}

// NewUser creates a user with default goals and preferences.
func NewUser(name, nativeLanguage string) *User {
	if nativeLanguage == "" {
		nativeLanguage = "en"
	}
	return &User{
		Name:           name,
		NativeLanguage: nativeLanguage,
		DateJoined:     time.Now(),
		LearningGoals:  DefaultGoals(),
		Preferences:    DefaultPreferences(),
		Progress:       make(map[string]LearningProgress),
	}
}

// LearningGoals capture how much the learner intends to study.
type LearningGoals struct {
	DailyGoalMinutes  int                `json:"dailyGoalMinutes"`
	WeeklyGoalLessons int                `json:"weeklyGoalLessons"`
	TargetProficiency catalog.Difficulty `json:"targetProficiency"`
}

// DefaultGoals returns the onboarding defaults.
func DefaultGoals() LearningGoals {
	return LearningGoals{
		DailyGoalMinutes:  15,
		WeeklyGoalLessons: 5,
		TargetProficiency: catalog.DifficultyIntermediate,
	}
}

// Preferences are per-user display and difficulty settings.
type Preferences struct {
	ShowTranslations bool               `json:"showTranslations"`
	DifficultyLevel  catalog.Difficulty `json:"difficultyLevel"`
}

// DefaultPreferences returns the initial preference set.
func DefaultPreferences() Preferences {
	return Preferences{
		ShowTranslations: true,
		DifficultyLevel:  catalog.DifficultyBeginner,
	}
}

// LearningProgress is the per-language completion state. Mutated only by
// the ledger.
type LearningProgress struct {
	LanguageCode      string        `json:"languageCode"`
	CompletedLessons  map[int]bool  `json:"completedLessons"`
	CurrentStreak     int           `json:"currentStreak"`
	TotalPoints       int           `json:"totalPoints"`
	LastStudyDate     *time.Time    `json:"lastStudyDate,omitempty"`
	WeeklyGoal        int           `json:"weeklyGoal"`
	StudyTimeThisWeek time.Duration `json:"studyTimeThisWeek"`
}

// CompletedCount returns the number of completed lessons.
func (p LearningProgress) CompletedCount() int {
	return len(p.CompletedLessons)
}

// Completed reports whether a lesson number is done.
func (p LearningProgress) Completed(lessonNumber int) bool {
	return p.CompletedLessons[lessonNumber]
}

// CompletionPercentage divides by a fixed 50-lesson denominator,
// whatever the language's real total.
func (p LearningProgress) CompletionPercentage() float64 {
	if len(p.CompletedLessons) == 0 {
		return 0
	}
	return float64(len(p.CompletedLessons)) / fixedLessonDenominator * 100
}

// Statistics aggregate across all languages.
type Statistics struct {
	TotalStudyTime        time.Duration   `json:"totalStudyTime"`
	TotalLessonsCompleted int             `json:"totalLessonsCompleted"`
	TotalQuizzesTaken     int             `json:"totalQuizzesTaken"`
	LongestStreak         int             `json:"longestStreak"`
	CurrentStreak         int             `json:"currentStreak"`
	TotalPoints           int             `json:"totalPoints"`
	Rank                  Rank            `json:"rank"`
	StudyDays             map[string]bool `json:"studyDays"` // "yyyy-mm-dd" keys
}

// DateKey formats a time as a study-day key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// UpdateRank recomputes the rank as the highest tier whose threshold is
// at or below the current point total.
func (s *Statistics) UpdateRank() {
	ranks := AllRanks()
	for i := len(ranks) - 1; i >= 0; i-- {
		if s.TotalPoints >= ranks[i].PointsRequired() {
			s.Rank = ranks[i]
			return
		}
	}
	s.Rank = RankNovice
}

// AchievementCategory groups achievements for display.
type AchievementCategory string

const (
	CategoryStreak        AchievementCategory = "streak"
	CategoryLessons       AchievementCategory = "lessons"
	CategoryPoints        AchievementCategory = "points"
	CategoryVocabulary    AchievementCategory = "vocabulary"
	CategoryPronunciation AchievementCategory = "pronunciation"
)

// Achievement is an unlocked (or unlockable) badge.
type Achievement struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Requirement int                 `json:"requirement"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
	Category    AchievementCategory `json:"category"`
}
