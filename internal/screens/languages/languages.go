// Package languages lets the learner switch the actively studied
// language.
package languages

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
	"github.com/vmaslov/linguo/internal/ui/theme"
)

// LanguagesScreen is a picker over the catalog's languages.
type LanguagesScreen struct {
	ledger *ledger.Ledger
	menu   components.Menu
}

var _ screen.Screen = (*LanguagesScreen)(nil)

// New creates the language picker.
func New(cat *catalog.Catalog, lg *ledger.Ledger) *LanguagesScreen {
	s := &LanguagesScreen{ledger: lg}

	active := lg.ActiveLanguage()
	items := make([]components.MenuItem, 0, len(cat.Languages()))
	for _, lang := range cat.Languages() {
		lang := lang
		detail := fmt.Sprintf("%s · %d lessons", lang.Difficulty.DisplayName(), lang.TotalLessons)
		if lang.Code == active {
			detail += " · current"
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", lang.Flag, lang.Name),
			Detail: detail,
			Action: func() tea.Cmd { return s.choose(lang.Code) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *LanguagesScreen) choose(code string) tea.Cmd {
	s.ledger.SelectLanguage(context.Background(), code)
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *LanguagesScreen) Init() tea.Cmd {
	return nil
}

func (s *LanguagesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LanguagesScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Body.Bold(true).Render("Choose a language"))
	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LanguagesScreen) Title() string {
	return "Languages"
}
