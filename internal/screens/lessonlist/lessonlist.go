// Package lessonlist shows the active language's lessons with their
// completion state.
package lessonlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/profile"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/screens/lesson"
	"github.com/vmaslov/linguo/internal/ui/components"
	"github.com/vmaslov/linguo/internal/ui/theme"
	"github.com/vmaslov/linguo/internal/walker"
)

// LessonListScreen is the lesson picker for the active language.
type LessonListScreen struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	code    string
	menu    components.Menu
}

var _ screen.Screen = (*LessonListScreen)(nil)

// New creates the lesson picker.
func New(cat *catalog.Catalog, lg *ledger.Ledger) *LessonListScreen {
	s := &LessonListScreen{
		catalog: cat,
		ledger:  lg,
		code:    lg.ActiveLanguage(),
	}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *LessonListScreen) buildItems() []components.MenuItem {
	lessons := s.catalog.Lessons(s.code)

	var prog profile.LearningProgress
	if user := s.ledger.User(); user != nil {
		prog = user.Progress[s.code]
	}

	items := make([]components.MenuItem, 0, len(lessons))
	for i := range lessons {
		l := lessons[i]
		mark := "  "
		if prog.Completed(l.LessonNumber) {
			mark = "✓ "
		}
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s%2d. %s", mark, l.LessonNumber, l.Title),
			Detail: fmt.Sprintf("%s · %d pts",
				l.Difficulty.DisplayName(), walker.Points(&l)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(&l, s.ledger)}
				}
			},
		})
	}
	return items
}

func (s *LessonListScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LessonListScreen) View(width, height int) string {
	lang := s.catalog.Language(s.code)
	title := "Lessons"
	if lang != nil {
		title = fmt.Sprintf("%s  %s lessons", lang.Flag, lang.Name)
	}

	var sections []string
	sections = append(sections, theme.Body.Bold(true).Render(title))
	sections = append(sections, "")

	if len(s.menu.Items) == 0 {
		sections = append(sections, theme.Hint.Render("No lessons available. Pick a language first."))
	} else {
		sections = append(sections, s.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonListScreen) Title() string {
	return "Lessons"
}
