package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcomeWithCounter(onName func(string)) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory, "Ashley", onName), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter(nil)

	view := w.View(80, 24)
	if strings.Contains(view, "count some apples") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}

	sendTicks(w, 10)
	view = w.View(80, 24)
	if !strings.Contains(view, "count some apples") {
		t.Error("tagline should be visible after phase 2")
	}
	if !strings.Contains(view, "Hi Ashley!") {
		t.Error("expected greeting with learner name")
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter(nil)
	sendTicks(w, 3)

	_, cmd := w.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter(nil)

	sendTicks(w, 45)
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter(nil)

	sendTicks(w, 45)
	w.Update(keyPress('a'))

	_, cmd := w.Update(keyPress('b'))
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestNamePrompt(t *testing.T) {
	var got string
	w, callCount := newTestWelcomeWithCounter(func(name string) { got = name })

	w.Update(keyPress(' '))
	if !w.askingName {
		t.Fatal("expected name prompt after first key")
	}
	if *callCount != 0 {
		t.Error("should not transition before the name is entered")
	}
	if !strings.Contains(w.View(80, 24), "What's your name?") {
		t.Error("expected name prompt in view")
	}

	for _, r := range "Sam" {
		w.Update(keyPress(r))
	}
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition after Enter")
	}
	if got != "Sam" {
		t.Errorf("onName got %q, want %q", got, "Sam")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNamePromptBlankKeepsDefault(t *testing.T) {
	var got string
	w, _ := newTestWelcomeWithCounter(func(name string) { got = name })

	w.Update(keyPress(' '))
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got != "Ashley" {
		t.Errorf("onName got %q, want default %q", got, "Ashley")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter(nil)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
