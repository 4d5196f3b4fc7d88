// Package home is the main menu screen.
package home

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
	"github.com/vmaslov/linguo/internal/screens/languages"
	"github.com/vmaslov/linguo/internal/screens/lessonlist"
	quizscreen "github.com/vmaslov/linguo/internal/screens/quiz"
	"github.com/vmaslov/linguo/internal/screens/stats"
	"github.com/vmaslov/linguo/internal/ui/components"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
	engine    *quiz.Engine
	analytics *analytics.Service

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, lg *ledger.Ledger, engine *quiz.Engine, svc *analytics.Service) *HomeScreen {
	h := &HomeScreen{
		catalog:   cat,
		ledger:    lg,
		engine:    engine,
		analytics: svc,
	}

	items := []components.MenuItem{
		{Label: "CONTINUE LEARNING", Action: func() tea.Cmd {
			return push(lessonlist.New(cat, lg))
		}},
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			return push(quizscreen.NewSetup(cat, lg, engine, svc))
		}},
		{Label: "DAILY CHALLENGE", Action: func() tea.Cmd {
			return push(quizscreen.NewDailyChallenge(lg, engine, svc))
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return push(stats.New(cat, lg, svc))
		}},
		{Label: "SWITCH LANGUAGE", Action: func() tea.Cmd {
			return push(languages.New(cat, lg))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L I N G U O"))
	sections = append(sections, theme.Hint.Render("learn a language, one lesson at a time"))
	sections = append(sections, "")

	if line := h.statusLine(); line != "" {
		sections = append(sections, line)
		sections = append(sections, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// statusLine summarizes the active language's progress.
func (h *HomeScreen) statusLine() string {
	user := h.ledger.User()
	code := h.ledger.ActiveLanguage()
	if user == nil || code == "" {
		return ""
	}

	lang := h.catalog.Language(code)
	if lang == nil {
		return ""
	}

	prog := user.Progress[code]
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s %s   %d lessons done   %.0f%% complete   rank %s",
		lang.Flag, lang.Name,
		prog.CompletedCount(),
		prog.CompletionPercentage(),
		user.Statistics.Rank.DisplayName(),
	))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
