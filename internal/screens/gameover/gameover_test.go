package gameover

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/problemgen"
	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/store"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

// finishedManager plays a classic session of n questions, answering the
// first correct answers right.
func finishedManager(t *testing.T, n, correct int, repo store.EventRepo) *session.Manager {
	t.Helper()
	ctx := context.Background()
	m := session.NewManager(session.Options{
		Learner:      "Ashley",
		MaxQuestions: n,
		Generator:    problemgen.NewSeeded(11),
		EventRepo:    repo,
	})
	m.Start(ctx)
	for i := 0; i < n; i++ {
		q, err := m.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		option := q.Correct
		if i >= correct {
			option = q.Options[(q.CorrectIndex()+1)%len(q.Options)]
		}
		if _, err := m.Answer(ctx, option); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	if m.Phase() != session.PhaseGameOver {
		t.Fatalf("phase = %v, want game-over", m.Phase())
	}
	return m
}

func TestGameOverScreen_Title(t *testing.T) {
	s := New(finishedManager(t, 4, 4, nil), nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestGameOverScreen_ShowsScore(t *testing.T) {
	s := New(finishedManager(t, 20, 16, nil), nil)
	view := s.View(80, 30)
	for _, want := range []string{"You got 16 out of 20 right!", "Amazing work!", "Play again"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGameOverScreen_PerfectScore(t *testing.T) {
	s := New(finishedManager(t, 5, 5, nil), nil)
	if !strings.Contains(s.View(80, 30), "Perfect Score!") {
		t.Error("expected perfect score verdict")
	}
}

func TestGameOverScreen_ShowsTrickiest(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer st.Close()

	s := New(finishedManager(t, 6, 2, st.EventRepo()), nil)
	view := s.View(80, 30)
	if !strings.Contains(view, "Trickiest facts") || !strings.Contains(view, "missed") {
		t.Error("expected trickiest facts section")
	}
}

func TestGameOverScreen_PlayAgain(t *testing.T) {
	m := finishedManager(t, 3, 1, nil)
	before := m.Table().Snapshot()
	factoryCalls := 0
	s := New(m, func() screen.Screen {
		factoryCalls++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if factoryCalls != 1 {
		t.Errorf("factory calls = %d, want 1", factoryCalls)
	}

	st := m.State()
	if !st.Active || st.Phase != session.PhaseActive || st.QuestionsPlayed != 0 || st.SessionScore != 0 {
		t.Errorf("expected fresh active session, got %+v", st)
	}
	after := m.Table().Snapshot()
	for p, v := range before {
		if after[p] != v {
			t.Errorf("mastery for %v changed: %d -> %d", p, v, after[p])
		}
	}
}

func TestGameOverScreen_HomeButton(t *testing.T) {
	s := New(finishedManager(t, 3, 3, nil), nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestGameOverScreen_KeyHints(t *testing.T) {
	s := New(finishedManager(t, 3, 3, nil), nil)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
