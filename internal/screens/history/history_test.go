package history

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/store"
)

func loadedScreen(t *testing.T, repo store.EventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	s.Update(msg)
	if !s.loaded {
		t.Fatal("expected history to be loaded")
	}
	return s
}

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func TestHistory_Empty(t *testing.T) {
	s := loadedScreen(t, openRepo(t))
	if !strings.Contains(s.View(80, 24), "No finished quizzes yet") {
		t.Error("expected empty state")
	}
}

func TestHistory_ListsSessionsAndMisses(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(repo.AppendAnswerEvent(ctx, store.AnswerEventData{SessionID: "s1", A: 7, B: 8, Chosen: 54, Product: 56, ScoreAfter: -1}))
	must(repo.AppendAnswerEvent(ctx, store.AnswerEventData{SessionID: "s1", A: 2, B: 2, Chosen: 4, Product: 4, Correct: true, ScoreAfter: 1}))
	must(repo.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "s1", Action: store.ActionEnd, Mode: "classic", QuestionsPlayed: 2, SessionScore: 1}))

	s := loadedScreen(t, repo)
	view := s.View(80, 24)
	if !strings.Contains(view, "1/2") || !strings.Contains(view, "50%") {
		t.Errorf("expected session line, got %q", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(80, 24), "7 × 8 = 56") {
		t.Error("expected expanded trickiest facts")
	}
}

func TestHistory_Title(t *testing.T) {
	if New(nil).Title() != "History" {
		t.Error("unexpected title")
	}
}
