package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/ui/theme"
)

// Choice is an answer selector for quiz questions. Options are answer
// strings; the chosen value is compared elsewhere, so the component only
// reveals correctness once told the right answer.
type Choice struct {
	Question      string
	Options       []string
	CorrectAnswer string
	Selected      int
	Submitted     bool
	ChosenIndex   int
}

// NewChoice creates an answer selector for one question.
func NewChoice(question string, options []string, correctAnswer string) Choice {
	return Choice{
		Question:      question,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Selected:      0,
		ChosenIndex:   -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the question and its options.
func (c Choice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range c.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.Submitted {
			switch {
			case opt == c.CorrectAnswer:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == c.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Value returns the chosen option, or empty before submission.
func (c Choice) Value() string {
	if !c.Submitted || c.ChosenIndex < 0 || c.ChosenIndex >= len(c.Options) {
		return ""
	}
	return c.Options[c.ChosenIndex]
}

// IsCorrect returns true if the chosen option matches the correct
// answer exactly.
func (c Choice) IsCorrect() bool {
	return c.Submitted && c.Value() == c.CorrectAnswer
}
