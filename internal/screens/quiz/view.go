package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/layout"
	"github.com/abhisek/applemath/internal/ui/theme"
)

// minVisualHeight is the content height needed to draw the apple grid.
const minVisualHeight = 26

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.manager.Phase() == session.PhaseCompleted {
		return s.renderCompleted(width)
	}
	return s.renderQuestionView(width, height)
}

// renderProgress renders the info line and progress bar shared by the
// question and completion views.
func (s *QuizScreen) renderProgress(width int) string {
	st := s.manager.State()

	var label string
	if st.Mode == session.ModeEndless {
		label = fmt.Sprintf("%d of %d facts mastered", s.manager.Table().MasteredCount(), mastery.NumFacts)
	} else {
		n := st.QuestionsPlayed + 1
		if n > st.MaxQuestions {
			n = st.MaxQuestions
		}
		label = fmt.Sprintf("Question %d of %d", n, st.MaxQuestions)
	}

	barWidth := width - 8
	if barWidth > 70 {
		barWidth = 70
	}
	bar := components.NewProgressBar(label, s.manager.Progress(), true, barWidth)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

// renderFeedback renders the last answer's message colored by severity.
func renderFeedback(st *session.SessionState, width int) string {
	if st.Feedback == "" {
		return layout.Centered("Pick the right answer!", width,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true))
	}
	style := lipgloss.NewStyle().Bold(true)
	switch st.Severity {
	case session.SeveritySuccess:
		style = style.Foreground(theme.Success)
	case session.SeverityError:
		style = style.Foreground(theme.Error)
	default:
		style = style.Foreground(theme.Text)
	}
	msg := st.Feedback
	if out := st.LastOutcome; out != nil && out.Transition != nil {
		switch out.Transition.Trigger {
		case "mastered":
			msg += fmt.Sprintf("  ★ %s mastered!", out.Pair)
		case "slipped":
			msg += fmt.Sprintf("  %s needs more practice.", out.Pair)
		}
	}
	return layout.Centered(msg, width, style)
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.question
	if q == nil {
		return layout.Centered("\n\n  Picking some apples...", width,
			lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	st := s.manager.State()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")
	b.WriteString(renderFeedback(st, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(q.Text(), width,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n\n")

	if height >= minVisualHeight && q.Visual != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.Visual))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.grid.View()))
	return b.String()
}

// renderCompleted renders the all-mastered message and reset button.
func (s *QuizScreen) renderCompleted(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered("🎉 Amazing! 🎉", width,
		lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(
		fmt.Sprintf("You have mastered all multiplication facts, %s!", s.manager.Learner()), width,
		lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.resetButton.View()))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered("End quiz early?", width,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n")
	b.WriteString(layout.Centered("Your mastery is kept until you quit the app.", width,
		lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered("[Y] Yes, end quiz", width,
		lipgloss.NewStyle().Foreground(theme.Success)))
	b.WriteString("\n")
	b.WriteString(layout.Centered("[N] No, keep going", width,
		lipgloss.NewStyle().Foreground(theme.Primary)))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return layout.Centered(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg), width,
		lipgloss.NewStyle().Foreground(theme.Error))
}
