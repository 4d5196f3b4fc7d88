// Package stats renders per-language quiz statistics, streaks and
// practice recommendations.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

// StatsScreen is a read-only statistics view for the active language.
type StatsScreen struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	code    string

	stats           analytics.Statistics
	weakAreas       []catalog.ExerciseType
	recommendations []string
	loadErr         error
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the statistics screen, reading history up front.
func New(cat *catalog.Catalog, lg *ledger.Ledger, svc *analytics.Service) *StatsScreen {
	s := &StatsScreen{
		catalog: cat,
		ledger:  lg,
		code:    lg.ActiveLanguage(),
	}

	ctx := context.Background()
	s.stats, s.loadErr = svc.Statistics(ctx, s.code)
	if s.loadErr == nil {
		s.weakAreas, s.loadErr = svc.WeakAreas(ctx, s.code)
	}
	if s.loadErr == nil {
		s.recommendations, s.loadErr = svc.Recommendations(ctx, s.code)
	}
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Could not load statistics: "+s.loadErr.Error()))
	}

	var sections []string

	lang := s.catalog.Language(s.code)
	title := "Statistics"
	if lang != nil {
		title = fmt.Sprintf("%s  %s statistics", lang.Flag, lang.Name)
	}
	sections = append(sections, theme.Body.Bold(true).Render(title))
	sections = append(sections, "")

	if user := s.ledger.User(); user != nil {
		st := user.Statistics
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"Rank: %s %s        Points: %d",
			st.Rank.Icon(), st.Rank.DisplayName(), st.TotalPoints)))
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"Streak: %d days (best %d)        Lessons: %d        Quizzes: %d",
			st.CurrentStreak, st.LongestStreak,
			st.TotalLessonsCompleted, st.TotalQuizzesTaken)))
		sections = append(sections, "")
	}

	sections = append(sections, divider(width, "Quiz performance"))
	if s.stats.TotalQuizzes == 0 {
		sections = append(sections, theme.Hint.Render("No quizzes taken yet."))
	} else {
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"Quizzes: %d        Accuracy: %.0f%% (%s)        Best score: %d",
			s.stats.TotalQuizzes, s.stats.Accuracy,
			s.stats.PerformanceLevel(), s.stats.BestScore)))
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"Average score: %.1f        Recent improvement: %+.1f",
			s.stats.AverageScore, s.stats.RecentImprovement)))
	}
	sections = append(sections, "")

	if len(s.weakAreas) > 0 {
		names := make([]string, 0, len(s.weakAreas))
		for _, t := range s.weakAreas {
			names = append(names, t.DisplayName())
		}
		sections = append(sections, divider(width, "Weak areas"))
		sections = append(sections, theme.Incorrect.Render(strings.Join(names, ", ")))
		sections = append(sections, "")
	}

	sections = append(sections, divider(width, "Recommendations"))
	for _, rec := range s.recommendations {
		sections = append(sections, theme.Body.Render("• "+rec))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func divider(width int, label string) string {
	line := strings.Repeat("─", min(width-8, 40))
	return theme.Hint.Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(line)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
