package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/screens/home"
	"github.com/abhisek/applemath/internal/screens/welcome"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/store"
	"github.com/abhisek/applemath/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	// Manager drives the quiz. Required.
	Manager *session.Manager

	// EventRepo backs the history screen (nil disables it).
	EventRepo store.EventRepo

	// AskName makes the welcome screen prompt for the learner's name.
	AskName bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	manager *session.Manager
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Manager, opts.EventRepo)
	}
	var onName func(string)
	if opts.AskName {
		onName = opts.Manager.SetLearner
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory, opts.Manager.Learner(), onName)),
		manager: opts.Manager,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
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

	st := m.manager.State()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Learner: m.manager.Learner(),
		Score:   st.SessionScore,
		Played:  st.QuestionsPlayed,
	}, m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = khp.KeyHints()
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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
