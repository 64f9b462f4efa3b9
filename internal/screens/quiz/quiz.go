package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/problemgen"
	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/screens/gameover"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/layout"
)

// QuizScreen implements screen.Screen for the active quiz.
type QuizScreen struct {
	manager            *session.Manager
	question           *problemgen.Question
	grid               components.OptionGrid
	resetButton        components.Button
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackInterceptor = (*QuizScreen)(nil)

// New creates a QuizScreen driven by manager.
func New(manager *session.Manager) *QuizScreen {
	s := &QuizScreen{manager: manager}
	s.resetButton = components.NewButton("Reset mastery", true, s.resetMastery)
	return s
}

// Init starts a fresh session if the previous one has ended and loads the
// first question.
func (s *QuizScreen) Init() tea.Cmd {
	if s.manager.State().Ended {
		s.manager.PlayAgain(context.Background())
	}
	return s.loadQuestion()
}

func (s *QuizScreen) Title() string {
	if s.manager.State().Mode == session.ModeEndless {
		return "Endless Quiz"
	}
	return "Quiz"
}

// InterceptsBack is always true: Esc opens the quit confirmation.
func (s *QuizScreen) InterceptsBack() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	case s.manager.Phase() == session.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reset mastery"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.manager.End(context.Background())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.manager.Phase() == session.PhaseCompleted {
		switch key {
		case "esc":
			s.manager.End(context.Background())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			return s, s.resetButton.Press()
		}
		var cmd tea.Cmd
		s.resetButton, cmd = s.resetButton.Update(msg)
		return s, cmd
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	prev := s.question
	grid, cmd := s.grid.Update(msg)
	// choose may already have installed the next question's grid.
	if s.question == prev {
		s.grid = grid
	}
	return s, cmd
}

// choose is the option buttons' callback: it submits value and prepares
// the next question before the screen renders again.
func (s *QuizScreen) choose(value int) tea.Cmd {
	_, err := s.manager.Answer(context.Background(), value)
	if err != nil && !errors.Is(err, session.ErrGameOver) {
		s.errMsg = err.Error()
		return nil
	}
	return s.loadQuestion()
}

// resetMastery is the completion screen's button callback.
func (s *QuizScreen) resetMastery() tea.Cmd {
	s.manager.ResetMastery(context.Background())
	return s.loadQuestion()
}

// loadQuestion fetches the pending question from the manager. A finished
// classic session hands over to the game over screen.
func (s *QuizScreen) loadQuestion() tea.Cmd {
	q, err := s.manager.Current()
	switch {
	case errors.Is(err, session.ErrGameOver):
		s.question = nil
		over := gameover.New(s.manager, func() screen.Screen { return New(s.manager) })
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: over}
		}
	case errors.Is(err, session.ErrAllMastered):
		s.question = nil
		return nil
	case err != nil:
		s.question = nil
		s.errMsg = err.Error()
		return nil
	}

	if q != s.question {
		s.question = q
		s.grid = components.NewOptionGrid(q.Options, s.choose)
	}
	return nil
}
