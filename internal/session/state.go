package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/applemath/internal/problemgen"
)

// DefaultMaxQuestions is the classic session length.
const DefaultMaxQuestions = 20

// Mode selects how a session ends.
type Mode string

const (
	// ModeClassic ends the session after MaxQuestions answers (game over).
	ModeClassic Mode = "classic"

	// ModeEndless runs until every fact is mastered.
	ModeEndless Mode = "endless"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeClassic:
		return ModeClassic, nil
	case ModeEndless:
		return ModeEndless, nil
	}
	return "", fmt.Errorf("invalid mode %q: must be classic or endless", s)
}

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseActive    Phase = iota // Serving questions
	PhaseGameOver               // Classic limit reached, waiting for play again
	PhaseCompleted              // Every fact mastered, waiting for a mastery reset
)

func (p Phase) String() string {
	switch p {
	case PhaseGameOver:
		return "game-over"
	case PhaseCompleted:
		return "completed"
	default:
		return "active"
	}
}

// Severity tags a feedback message for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// SessionState tracks the short-lived state of one quiz session. The
// mastery table is owned by the Manager and outlives it.
type SessionState struct {
	// ID identifies the session in the journal.
	ID string

	// Mode is the session's ending rule.
	Mode Mode

	// Phase is the current state machine phase.
	Phase Phase

	// Active is false while the session is over (PhaseGameOver) or has run
	// out of facts (PhaseCompleted).
	Active bool

	// QuestionsPlayed is the count of answers submitted this session.
	QuestionsPlayed int

	// SessionScore is the count of correct answers this session.
	SessionScore int

	// MaxQuestions bounds classic sessions.
	MaxQuestions int

	// CurrentQuestion is the pending question (nil between questions).
	CurrentQuestion *problemgen.Question

	// Feedback is the message from the most recent answer.
	Feedback string

	// Severity tags Feedback.
	Severity Severity

	// LastOutcome is the most recent evaluation (nil before the first answer).
	LastOutcome *Outcome

	// StartTime is when the session began.
	StartTime time.Time

	// Ended is set once the session's end event has been journaled.
	Ended bool
}

// NewSessionState creates an active session with zeroed counters.
func NewSessionState(id string, mode Mode, maxQuestions int) *SessionState {
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}
	s := &SessionState{
		ID:           id,
		Mode:         mode,
		MaxQuestions: maxQuestions,
	}
	s.ResetCounters()
	return s
}

// ResetCounters restores the session defaults. The mastery table is untouched.
func (s *SessionState) ResetCounters() {
	s.Phase = PhaseActive
	s.Active = true
	s.QuestionsPlayed = 0
	s.SessionScore = 0
	s.CurrentQuestion = nil
	s.Feedback = ""
	s.Severity = SeverityInfo
	s.LastOutcome = nil
	s.StartTime = time.Now()
	s.Ended = false
}

// LimitReached reports whether a classic session has used all its questions.
func (s *SessionState) LimitReached() bool {
	return s.Mode == ModeClassic && s.QuestionsPlayed >= s.MaxQuestions
}
