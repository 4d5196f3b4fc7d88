// Package quiz hosts the quiz screens: setup, live play and the result
// summary.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/quiz"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/ui/components"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

var questionCounts = []int{5, 10, 15}

// SetupScreen picks difficulty and length before starting a quiz.
type SetupScreen struct {
	ledger    *ledger.Ledger
	engine    *quiz.Engine
	analytics *analytics.Service

	difficulty     catalog.Difficulty
	pickedDiff     bool
	difficultyMenu components.Menu
	countMenu      components.Menu
}

var _ screen.Screen = (*SetupScreen)(nil)

// NewSetup creates the quiz setup screen for the active language.
func NewSetup(cat *catalog.Catalog, lg *ledger.Ledger, engine *quiz.Engine, svc *analytics.Service) *SetupScreen {
	s := &SetupScreen{
		ledger:    lg,
		engine:    engine,
		analytics: svc,
	}

	diffItems := make([]components.MenuItem, 0, 3)
	for _, d := range catalog.AllDifficulties() {
		d := d
		diffItems = append(diffItems, components.MenuItem{
			Label: d.DisplayName(),
			Action: func() tea.Cmd {
				s.difficulty = d
				s.pickedDiff = true
				return nil
			},
		})
	}
	s.difficultyMenu = components.NewMenu(diffItems)

	countItems := make([]components.MenuItem, 0, len(questionCounts))
	for _, n := range questionCounts {
		n := n
		countItems = append(countItems, components.MenuItem{
			Label:  fmt.Sprintf("%d questions", n),
			Detail: fmt.Sprintf("%d seconds", n*30),
			Action: func() tea.Cmd { return s.start(n) },
		})
	}
	s.countMenu = components.NewMenu(countItems)

	return s
}

// start generates the quiz and swaps in the play screen.
func (s *SetupScreen) start(questionCount int) tea.Cmd {
	code := s.ledger.ActiveLanguage()
	q := s.engine.Generate(code, s.difficulty, questionCount)
	play := newPlay(s.ledger, s.engine, s.analytics, q)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: play}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if !s.pickedDiff {
		s.difficultyMenu, cmd = s.difficultyMenu.Update(msg)
	} else {
		s.countMenu, cmd = s.countMenu.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var sections []string

	if !s.pickedDiff {
		sections = append(sections, theme.Body.Bold(true).Render("Pick a difficulty"))
		sections = append(sections, theme.Hint.Render("beginner quizzes draw from every lesson"))
		sections = append(sections, "")
		sections = append(sections, s.difficultyMenu.View())
	} else {
		sections = append(sections, theme.Body.Bold(true).Render(
			s.difficulty.DisplayName()+" quiz — how long?"))
		sections = append(sections, "")
		sections = append(sections, s.countMenu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) Title() string {
	return "Quiz"
}

// NewDailyChallenge skips setup and starts the daily challenge directly.
func NewDailyChallenge(lg *ledger.Ledger, engine *quiz.Engine, svc *analytics.Service) screen.Screen {
	q := engine.GenerateDailyChallenge(lg.ActiveLanguage())
	return newPlay(lg, engine, svc, q)
}
