package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/quiz"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/ui/layout"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

// summaryScreen shows the graded outcome of a finished quiz.
type summaryScreen struct {
	result *quiz.Result
}

var _ screen.Screen = (*summaryScreen)(nil)
var _ screen.KeyHintProvider = (*summaryScreen)(nil)

func newSummary(result *quiz.Result) *summaryScreen {
	return &summaryScreen{result: result}
}

func (s *summaryScreen) Init() tea.Cmd {
	return nil
}

func (s *summaryScreen) Title() string {
	return "Results"
}

func (s *summaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *summaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *summaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	percentage := r.Percentage()
	grade := analytics.Grade(percentage)
	passed := analytics.IsPassed(percentage)

	var sections []string

	headline := "Quiz complete!"
	if r.Quiz.IsDailyChallenge {
		headline = "Daily challenge complete!"
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).Render(headline))
	sections = append(sections, "")

	gradeStyle := theme.Correct
	if !passed {
		gradeStyle = theme.Incorrect
	}
	sections = append(sections, gradeStyle.Render(
		fmt.Sprintf("Grade %s  ·  %.0f%%", grade, percentage)))
	sections = append(sections, "")

	sections = append(sections, theme.Body.Render(fmt.Sprintf(
		"Correct: %d of %d        Score: %d of %d",
		r.Quiz.CorrectAnswers, len(r.Quiz.Questions),
		r.Quiz.Score, r.Quiz.TotalPossible())))

	if r.Quiz.IsDailyChallenge {
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"Challenge bonus: +%d points", r.Quiz.BonusPoints)))
	}

	verdict := "Passed"
	if !passed {
		verdict = "Keep practicing"
	}
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render(verdict))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
