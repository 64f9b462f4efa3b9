package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/problemgen"
	"github.com/abhisek/applemath/internal/store"
)

var (
	// ErrAllMastered is returned when no fact is left to ask about.
	ErrAllMastered = problemgen.ErrAllMastered

	// ErrGameOver is returned while a classic session is over.
	ErrGameOver = errors.New("session is over")

	// ErrNoQuestion is returned when answering with no question pending.
	ErrNoQuestion = errors.New("no question pending")
)

// Options configures a Manager.
type Options struct {
	// Learner is the name used in feedback messages.
	Learner string

	// Mode selects classic (bounded) or endless play.
	Mode Mode

	// MaxQuestions bounds classic sessions (DefaultMaxQuestions if zero).
	MaxQuestions int

	// Generator produces questions. Required.
	Generator problemgen.Generator

	// Table is the mastery table to train. A fresh table is created if nil.
	Table *mastery.Table

	// EventRepo journals answers and session events (nil disables journaling).
	EventRepo store.EventRepo

	// Logger receives journal failures (discarded if nil).
	Logger *slog.Logger
}

// Manager owns the mastery table and the current session, and applies the
// quiz state transitions. It is not safe for concurrent use; each learner
// session gets its own Manager.
type Manager struct {
	learner   string
	table     *mastery.Table
	state     *SessionState
	generator problemgen.Generator
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// NewManager creates a Manager with an active session.
func NewManager(opts Options) *Manager {
	table := opts.Table
	if table == nil {
		table = mastery.NewTable()
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeClassic
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		learner:   opts.Learner,
		table:     table,
		state:     NewSessionState(uuid.NewString(), mode, opts.MaxQuestions),
		generator: opts.Generator,
		eventRepo: opts.EventRepo,
		logger:    logger,
	}
}

// Start journals the session start.
func (m *Manager) Start(ctx context.Context) {
	m.appendSessionEvent(ctx, store.ActionStart)
}

// Learner returns the learner's name.
func (m *Manager) Learner() string {
	return m.learner
}

// SetLearner changes the name used in feedback. Blank names are ignored.
func (m *Manager) SetLearner(name string) {
	if name = strings.TrimSpace(name); name != "" {
		m.learner = name
	}
}

// Table returns the mastery table.
func (m *Manager) Table() *mastery.Table {
	return m.table
}

// State returns the live session state. Callers must treat it as read-only.
func (m *Manager) State() *SessionState {
	return m.state
}

// Phase returns the session phase.
func (m *Manager) Phase() Phase {
	return m.state.Phase
}

// Progress returns the fraction shown by the progress bar: questions played
// out of the limit in classic mode, mastered facts in endless mode.
func (m *Manager) Progress() float64 {
	if m.state.Mode == ModeEndless {
		return m.table.Progress()
	}
	p := float64(m.state.QuestionsPlayed) / float64(m.state.MaxQuestions)
	if p > 1 {
		p = 1
	}
	return p
}

// Current returns the pending question, generating one if none is pending.
// Returns ErrGameOver after a classic session ends and ErrAllMastered (moving
// the session to PhaseCompleted) when every fact is mastered.
func (m *Manager) Current() (*problemgen.Question, error) {
	if m.state.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if m.state.CurrentQuestion != nil {
		return m.state.CurrentQuestion, nil
	}

	q, err := m.generator.Generate(m.table.ValidPairs())
	if errors.Is(err, problemgen.ErrAllMastered) {
		m.state.Phase = PhaseCompleted
		m.state.Active = false
		return nil, ErrAllMastered
	}
	if err != nil {
		return nil, err
	}

	m.state.Phase = PhaseActive
	m.state.Active = true
	m.state.CurrentQuestion = q
	return q, nil
}

// Answer evaluates option against the pending question, updates the mastery
// table and session counters, and discards the question. A classic session
// moves to PhaseGameOver once it reaches its limit.
func (m *Manager) Answer(ctx context.Context, option int) (Outcome, error) {
	if m.state.Phase == PhaseGameOver {
		return Outcome{}, ErrGameOver
	}
	q := m.state.CurrentQuestion
	if q == nil {
		return Outcome{}, ErrNoQuestion
	}

	out := Evaluate(m.table, q, option, m.learner)

	m.state.QuestionsPlayed++
	if out.Correct {
		m.state.SessionScore++
	}
	m.state.Feedback = out.Feedback
	m.state.Severity = out.Severity
	m.state.LastOutcome = &out
	m.state.CurrentQuestion = nil

	m.appendAnswerEvent(ctx, q, out)

	if m.state.LimitReached() {
		m.state.Active = false
		m.state.Phase = PhaseGameOver
		m.End(ctx)
	}
	return out, nil
}

// PlayAgain starts a fresh session with zeroed counters. The mastery table
// is preserved.
func (m *Manager) PlayAgain(ctx context.Context) {
	m.End(ctx)
	m.state.ID = uuid.NewString()
	m.state.ResetCounters()
	m.Start(ctx)
}

// ResetMastery zeroes every mastery score. A completed session becomes
// active again; session counters are untouched.
func (m *Manager) ResetMastery(ctx context.Context) {
	m.table.Reset()
	if m.state.Phase == PhaseCompleted {
		m.state.Phase = PhaseActive
		m.state.Active = true
	}
	m.appendSessionEvent(ctx, store.ActionResetMastery)
}

// End journals the session end once. Safe to call repeatedly.
func (m *Manager) End(ctx context.Context) {
	if m.state.Ended {
		return
	}
	m.state.Ended = true
	m.appendSessionEvent(ctx, store.ActionEnd)
}

func (m *Manager) appendAnswerEvent(ctx context.Context, q *problemgen.Question, out Outcome) {
	if m.eventRepo == nil {
		return
	}
	var transition string
	if out.Transition != nil {
		transition = out.Transition.Trigger
	}
	err := m.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:  m.state.ID,
		A:          q.A,
		B:          q.B,
		Chosen:     out.Selected,
		Product:    q.Correct,
		Correct:    out.Correct,
		ScoreAfter: out.Score,
		Transition: transition,
	})
	if err != nil {
		m.logger.Error("journal answer failed",
			"error", err,
			"session", m.state.ID,
			"fact", q.Pair().String(),
		)
	}
}

func (m *Manager) appendSessionEvent(ctx context.Context, action string) {
	if m.eventRepo == nil {
		return
	}
	err := m.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       m.state.ID,
		Action:          action,
		Mode:            string(m.state.Mode),
		QuestionsPlayed: m.state.QuestionsPlayed,
		SessionScore:    m.state.SessionScore,
	})
	if err != nil {
		m.logger.Error("journal session event failed",
			"error", err,
			"session", m.state.ID,
			"action", action,
		)
	}
}
