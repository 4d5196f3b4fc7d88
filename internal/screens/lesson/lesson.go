// Package lesson steps through one lesson's vocabulary and dialogues.
package lesson

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
	"github.com/vmaslov/linguo/internal/walker"
)

// LessonScreen walks a lesson card by card.
type LessonScreen struct {
	lesson *catalog.Lesson
	walker *walker.Walker
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New starts a lesson from its first card.
func New(l *catalog.Lesson, lg *ledger.Ledger) *LessonScreen {
	return &LessonScreen{
		lesson: l,
		walker: walker.New(context.Background(), l, lg),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.walker.Completed() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to lessons"},
		}
	}
	return []layout.KeyHint{
		{Key: "→/Enter", Description: "Next"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Leave lesson"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.walker.Completed() {
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "right", "enter", "l", "space":
		s.walker.Advance(context.Background())
	case "left", "h":
		s.walker.Retreat()
	}
	return s, nil
}

func (s *LessonScreen) View(width, height int) string {
	var sections []string

	bar := components.NewProgressBar("", s.walker.Progress(), true, min(width-8, 60))
	sections = append(sections, bar.View())
	sections = append(sections, "")

	switch s.walker.Phase() {
	case walker.PhaseVocabulary:
		sections = append(sections, s.vocabularyCard()...)
	case walker.PhaseDialogue:
		sections = append(sections, s.dialogueCard()...)
	case walker.PhaseCompleted:
		sections = append(sections, s.completionCard()...)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) vocabularyCard() []string {
	item := s.walker.CurrentVocabularyItem()
	if item == nil {
		return nil
	}

	var lines []string
	lines = append(lines, theme.Hint.Render("Vocabulary"))
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).Render(item.Word))
	lines = append(lines, theme.Body.Render(item.Translation))
	if item.Pronunciation != "" {
		lines = append(lines, theme.Hint.Render("["+item.Pronunciation+"]"))
	}
	if item.Example != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Body.Render(item.Example))
		lines = append(lines, theme.Hint.Render(item.ExampleTranslation))
	}
	return lines
}

func (s *LessonScreen) dialogueCard() []string {
	d := s.walker.CurrentDialogue()
	line := s.walker.CurrentDialogueLine()
	if d == nil || line == nil {
		return nil
	}

	var lines []string
	lines = append(lines, theme.Hint.Render("Dialogue · "+d.Title))
	if d.Scenario != "" {
		lines = append(lines, theme.Hint.Render(d.Scenario))
	}
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).Render(line.Speaker+":"))
	lines = append(lines, theme.Body.Render(line.Text))
	lines = append(lines, theme.Hint.Render(line.Translation))
	return lines
}

func (s *LessonScreen) completionCard() []string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Success).Bold(true).Render("Lesson complete!"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(
		fmt.Sprintf("You earned %d points.", s.walker.EarnedPoints())))
	return lines
}
