package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/quiz"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/ui/components"
	"github.com/vmaslov/linguo/internal/ui/layout"
	"github.com/vmaslov/linguo/internal/ui/theme"
)

type tickMsg time.Time

// playScreen runs a live quiz against the engine, one question at a
// time, with a one-second countdown tick.
type playScreen struct {
	ledger    *ledger.Ledger
	engine    *quiz.Engine
	analytics *analytics.Service

	quizID    string
	choice    components.Choice
	revealed  bool
	remaining int
	questions int
	index     int
}

var _ screen.Screen = (*playScreen)(nil)
var _ screen.KeyHintProvider = (*playScreen)(nil)
var _ screen.Closer = (*playScreen)(nil)

func newPlay(lg *ledger.Ledger, engine *quiz.Engine, svc *analytics.Service, q *quiz.Quiz) *playScreen {
	p := &playScreen{
		ledger:    lg,
		engine:    engine,
		analytics: svc,
		quizID:    q.ID,
		remaining: q.TimeLimit,
		questions: len(q.Questions),
	}
	p.syncChoice()
	return p
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *playScreen) Init() tea.Cmd {
	return tick()
}

func (p *playScreen) Title() string {
	q := p.engine.Current()
	if q != nil && q.IsDailyChallenge {
		return "Daily Challenge"
	}
	return "Quiz"
}

func (p *playScreen) KeyHints() []layout.KeyHint {
	if p.revealed {
		return []layout.KeyHint{
			{Key: "Any key", Description: "Next question"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// Close abandons the live quiz when the screen is dismissed.
func (p *playScreen) Close() {
	p.engine.Abandon()
}

// syncChoice rebuilds the answer selector for the engine's current
// question.
func (p *playScreen) syncChoice() {
	q := p.engine.Current()
	if q == nil {
		return
	}
	p.index = q.CurrentQuestionIndex
	p.revealed = false
	if question := q.CurrentQuestion(); question != nil {
		p.choice = components.NewChoice(question.Question, question.Options, question.CorrectAnswer)
	}
}

func (p *playScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		result := p.engine.Tick(context.Background(), p.quizID, time.Time(msg))
		if result != nil {
			return p, p.finish(result)
		}

		q := p.engine.Current()
		if q == nil || q.ID != p.quizID {
			// Quiz was abandoned elsewhere; stop ticking.
			return p, nil
		}
		p.remaining = q.TimeRemaining(time.Time(msg))
		if q.CurrentQuestionIndex != p.index {
			// Timer moved the quiz on while a question was open.
			p.syncChoice()
		}
		return p, tick()

	case tea.KeyMsg:
		if p.revealed {
			result := p.engine.NextQuestion(context.Background())
			if result != nil {
				return p, p.finish(result)
			}
			p.syncChoice()
			return p, nil
		}

		var cmd tea.Cmd
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			p.engine.SubmitAnswer(p.index, p.choice.Value())
			p.revealed = true
		}
		return p, cmd
	}

	return p, nil
}

// finish hands achievements to the ledger and swaps in the summary.
func (p *playScreen) finish(result *quiz.Result) tea.Cmd {
	ctx := context.Background()
	if unlocked, err := p.analytics.Unlocked(ctx, result); err == nil {
		p.ledger.RecordAchievements(ctx, unlocked)
	}

	summary := newSummary(result)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary}
	}
}

func (p *playScreen) View(width, height int) string {
	q := p.engine.Current()
	if q == nil {
		return ""
	}

	var sections []string

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if p.remaining <= 10 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	status := fmt.Sprintf("Question %d of %d        %s",
		p.index+1, p.questions,
		timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", p.remaining/60, p.remaining%60)))
	sections = append(sections, theme.Body.Render(status))

	bar := components.NewProgressBar("", q.Progress(), false, min(width-8, 60))
	sections = append(sections, bar.View())
	sections = append(sections, "")

	sections = append(sections, p.choice.View())

	if p.revealed {
		if question := q.CurrentQuestion(); question != nil && question.Explanation != "" {
			sections = append(sections, theme.Hint.Render(question.Explanation))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
