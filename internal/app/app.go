// Package app wires the services together and runs the Bubble Tea
// program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vmaslov/linguo/internal/analytics"
	"github.com/vmaslov/linguo/internal/catalog"
	"github.com/vmaslov/linguo/internal/ledger"
	"github.com/vmaslov/linguo/internal/profile"
	"github.com/vmaslov/linguo/internal/quiz"
	"github.com/vmaslov/linguo/internal/router"
	"github.com/vmaslov/linguo/internal/screen"
	"github.com/vmaslov/linguo/internal/screens/home"
	"github.com/vmaslov/linguo/internal/screens/welcome"
	"github.com/vmaslov/linguo/internal/ui/layout"
)

// appModel is the root Bubble Tea model.
type appModel struct {
	ledger *ledger.Ledger
	router *router.Router
	width  int
	height int
}

// newAppModel builds the service graph and picks the opening screen:
// onboarding when no profile exists yet, home otherwise.
func newAppModel(cat *catalog.Catalog, lg *ledger.Ledger, history quiz.History) appModel {
	engine := quiz.NewEngine(cat, lg, history)
	svc := analytics.New(history)

	homeFactory := func() screen.Screen {
		return home.New(cat, lg, engine, svc)
	}

	var initial screen.Screen
	if lg.User() == nil {
		initial = welcome.New(cat, lg, homeFactory)
	} else {
		initial = homeFactory()
	}

	return appModel{
		ledger: lg,
		router: router.New(initial),
	}
}

func (m appModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if closer, ok := m.router.Active().(screen.Closer); ok {
					closer.Close()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points, streak := 0, 0
	if user := m.ledger.User(); user != nil {
		points = user.Statistics.TotalPoints
		streak = user.Statistics.CurrentStreak
	}
	header := layout.RenderHeader(title, points, streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an already-loaded profile.
func Run(cat *catalog.Catalog, store profile.Store, history quiz.History, user *profile.User) error {
	lg := ledger.New(store, user)
	p := tea.NewProgram(newAppModel(cat, lg, history))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
