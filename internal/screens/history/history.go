package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/store"
	"github.com/abhisek/applemath/internal/ui/layout"
	"github.com/abhisek/applemath/internal/ui/theme"
)

// sessionLimit caps how many finished sessions are listed.
const sessionLimit = 20

// trickiestLimit caps the facts shown for an expanded session.
const trickiestLimit = 3

type historyLoadedMsg struct {
	Sessions  []store.SessionSummaryRecord
	Trickiest map[string][]store.FactMiss // sessionID → most-missed facts
	Err       error
}

// HistoryScreen lists the sessions finished since the app started.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	trickiest map[string][]store.FactMiss
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, sessionLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		trickiest := make(map[string][]store.FactMiss, len(sessions))
		for _, sess := range sessions {
			misses, err := repo.TrickiestFacts(ctx, sess.SessionID, trickiestLimit)
			if err != nil {
				continue
			}
			trickiest[sess.SessionID] = misses
		}

		return historyLoadedMsg{Sessions: sessions, Trickiest: trickiest}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.trickiest = msg.Trickiest
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(fmt.Sprintf("\n\nError: %s", s.errMsg), width,
			lipgloss.NewStyle().Foreground(theme.Error))
	}
	if !s.loaded {
		return layout.Centered("\n\n  Loading history...", width,
			lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	if len(s.sessions) == 0 {
		return layout.Centered("\n\n  No finished quizzes yet. Go pick some apples!", width,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		var accuracy float64
		if sess.QuestionsPlayed > 0 {
			accuracy = float64(sess.SessionScore) / float64(sess.QuestionsPlayed) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-7s  %2d/%-2d right  %3.0f%%",
			prefix, sess.Timestamp.Format("15:04:05"), sess.Mode,
			sess.SessionScore, sess.QuestionsPlayed, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderTrickiest(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderTrickiest(sessionID string, width int) string {
	misses := s.trickiest[sessionID]
	if len(misses) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No misses. Every apple counted!")) + "\n"
	}
	var b strings.Builder
	for _, m := range misses {
		p := mastery.FactPair{A: m.A, B: m.B}
		line := fmt.Sprintf("    %s = %d   missed %d×", p, p.Product(), m.Misses)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
