// Package welcome is the first-run onboarding flow: pick a name, pick a
// language, and the profile is created.
package welcome

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/ui/components"
	"github.com/vmaslov/linguo/internal/ui/layout"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepLanguage
)

// WelcomeScreen collects the learner's name and first language, then
// hands off to the screen produced by homeFactory.
type WelcomeScreen struct {
	catalog     *catalog.Catalog
	ledger      *ledger.Ledger
	homeFactory func() screen.Screen

	step      step
	nameInput components.TextInput
	langMenu  components.Menu
	name      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the onboarding screen.
func New(cat *catalog.Catalog, lg *ledger.Ledger, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		catalog:     cat,
		ledger:      lg,
		homeFactory: homeFactory,
		nameInput:   components.NewTextInput("Your name", 30),
	}

	items := make([]components.MenuItem, 0, len(cat.Languages()))
	for _, lang := range cat.Languages() {
		lang := lang
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", lang.Flag, lang.Name),
			Detail: fmt.Sprintf("%d lessons", lang.TotalLessons),
			Action: func() tea.Cmd { return w.finish(lang.Code) },
		})
	}
	w.langMenu = components.NewMenu(items)

	return w
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.nameInput.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch w.step {
	case stepName:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(w.nameInput.Value())
			if name == "" {
				return w, nil
			}
			w.name = name
			w.step = stepLanguage
			return w, nil
		}
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd

	case stepLanguage:
		var cmd tea.Cmd
		w.langMenu, cmd = w.langMenu.Update(msg)
		return w, cmd
	}

	return w, nil
}

// finish registers the profile and swaps in the home screen.
func (w *WelcomeScreen) finish(code string) tea.Cmd {
	ctx := context.Background()
	w.ledger.Register(ctx, w.name, "en")
	w.ledger.SelectLanguage(ctx, code)

	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to Linguo!"))
	sections = append(sections, "")

	switch w.step {
	case stepName:
		sections = append(sections, theme.Body.Render("What should we call you?"))
		sections = append(sections, "")
		sections = append(sections, w.nameInput.View())

	case stepLanguage:
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("Nice to meet you, %s. Which language do you want to learn?", w.name)))
		sections = append(sections, "")
		sections = append(sections, w.langMenu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
