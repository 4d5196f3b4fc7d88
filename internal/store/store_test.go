package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/profile"
	"github.com/vmaslov/linguo/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	user, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	user := profile.NewUser("Mira", "en")
	user.SelectedLanguages = []string{"es"}
	user.Progress["es"] = profile.LearningProgress{
		LanguageCode:     "es",
		CompletedLessons: map[int]bool{1: true, 3: true},
		TotalPoints:      130,
		WeeklyGoal:       5,
	}
	user.Statistics.TotalPoints = 130
	user.Statistics.UpdateRank()
	user.Statistics.StudyDays = map[string]bool{"2025-06-01": true}

	require.NoError(t, s.Save(ctx, user))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "Mira", loaded.Name)
	require.Equal(t, []string{"es"}, loaded.SelectedLanguages)
	require.Equal(t, 130, loaded.Progress["es"].TotalPoints)
	require.True(t, loaded.Progress["es"].CompletedLessons[3])
	require.Equal(t, user.Statistics.Rank, loaded.Statistics.Rank)
	require.True(t, loaded.Statistics.StudyDays["2025-06-01"])
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	user := profile.NewUser("Mira", "en")
	require.NoError(t, s.Save(ctx, user))

	user.Statistics.TotalPoints = 500
	require.NoError(t, s.Save(ctx, user))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 500, loaded.Statistics.TotalPoints)
}

func TestSaveNilUser(t *testing.T) {
	s := openTestStore(t)
	require.Error(t, s.Save(context.Background(), nil))
}

func testResult(code string, score int, completedAt time.Time) quiz.Result {
	return quiz.Result{
		Quiz: quiz.Quiz{
			ID:           "q-" + code,
			LanguageCode: code,
			Difficulty:   catalog.DifficultyBeginner,
			Questions: []catalog.Exercise{
				{Type: catalog.MultipleChoice, Question: "?", CorrectAnswer: "a", Points: score},
			},
			TimeLimit:      30,
			Answers:        map[int]string{0: "a"},
			Score:          score,
			CorrectAnswers: 1,
			StartTime:      completedAt.Add(-time.Minute),
			Completed:      true,
		},
		CompletedAt: completedAt,
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Append(ctx, testResult("es", 10, now)))
	require.NoError(t, s.Append(ctx, testResult("fr", 20, now.Add(time.Hour))))
	require.NoError(t, s.Append(ctx, testResult("es", 30, now.Add(2*time.Hour))))

	es, err := s.ByLanguage(ctx, "es")
	require.NoError(t, err)
	require.Len(t, es, 2)
	require.Equal(t, 10, es[0].Quiz.Score)
	require.Equal(t, 30, es[1].Quiz.Score)
	require.Equal(t, "a", es[0].Quiz.Answers[0])
	require.True(t, es[0].CompletedAt.Equal(now))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestByLanguageEmpty(t *testing.T) {
	s := openTestStore(t)
	results, err := s.ByLanguage(context.Background(), "es")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, profile.NewUser("Mira", "en")))
	require.NoError(t, s.Append(ctx, testResult("es", 10, time.Now().UTC())))
	require.NoError(t, s.Reset(ctx))

	user, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, user)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, profile.NewUser("Mira", "en")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	user, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "Mira", user.Name)
}
