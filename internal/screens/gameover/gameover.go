package gameover

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/layout"
	"github.com/abhisek/applemath/internal/ui/theme"
)

// GameOverScreen shows the finished session's score and offers another round.
type GameOverScreen struct {
	manager  *session.Manager
	summary  *session.Summary
	buttons  []components.Button
	selected int
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates a GameOverScreen for manager's finished session. quizFactory
// builds the screen that replaces this one on "play again".
func New(manager *session.Manager, quizFactory func() screen.Screen) *GameOverScreen {
	s := &GameOverScreen{
		manager: manager,
		summary: manager.Summary(context.Background()),
	}
	s.buttons = []components.Button{
		components.NewButton("Play again", true, func() tea.Cmd {
			manager.PlayAgain(context.Background())
			next := quizFactory()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}),
		components.NewButton("Home", false, func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}),
	}
	return s
}

func (s *GameOverScreen) Init() tea.Cmd {
	return nil
}

func (s *GameOverScreen) Title() string {
	return "Game Over"
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.focus(0)
		return s, nil
	case "right", "l", "tab":
		s.focus(1)
		return s, nil
	case "p", "P":
		return s, s.buttons[0].Press()
	}

	var cmd tea.Cmd
	s.buttons[s.selected], cmd = s.buttons[s.selected].Update(msg)
	return s, cmd
}

func (s *GameOverScreen) focus(i int) {
	s.selected = i
	for j := range s.buttons {
		s.buttons[j].Active = j == i
	}
}

func (s *GameOverScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered("Game Over!", width,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(
		fmt.Sprintf("You got %d out of %d right!", sum.Correct, sum.Total), width,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(string(sum.Verdict), width,
		lipgloss.NewStyle().Foreground(verdictColor(sum.Verdict))))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Accuracy: %.0f%%     Time: %d:%02d     Mastered: %d/%d",
		sum.Accuracy*100, mins, secs, sum.MasteredCount, mastery.NumFacts)
	b.WriteString(layout.Centered(stats, width, lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")

	if len(sum.Trickiest) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 40)))
		b.WriteString(layout.Centered("Trickiest facts", width, lipgloss.NewStyle().Foreground(theme.TextDim)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, fm := range sum.Trickiest {
			line := fmt.Sprintf("%s = %d   missed %d×", fm.Pair, fm.Pair.Product(), fm.Misses)
			b.WriteString(layout.Centered(line, width, lipgloss.NewStyle().Foreground(theme.Accent)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	views := make([]string, 0, len(s.buttons)*2)
	for _, btn := range s.buttons {
		views = append(views, btn.View(), "   ")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, views[:len(views)-1]...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return b.String()
}

func verdictColor(v session.Verdict) color.Color {
	switch v {
	case session.VerdictPerfect:
		return theme.Gold
	case session.VerdictAmazing:
		return theme.Success
	default:
		return theme.Secondary
	}
}
