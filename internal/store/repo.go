package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart        = "start"
	ActionEnd          = "end"
	ActionResetMastery = "reset-mastery"
)

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	SessionID  string
	A          int
	B          int
	Chosen     int
	Product    int
	Correct    bool
	ScoreAfter int
	Transition string // "", "mastered" or "slipped"
}

// AnswerEventRecord is a journaled answer with its ordering metadata.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // ActionStart, ActionEnd, ActionResetMastery
	Mode            string
	QuestionsPlayed int
	SessionScore    int
}

// SessionSummaryRecord is a finished session as recorded by its end event.
type SessionSummaryRecord struct {
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	Mode            string
	QuestionsPlayed int
	SessionScore    int
}

// FactMiss counts wrong answers for one fact within a session.
type FactMiss struct {
	A      int
	B      int
	Misses int
}

// EventRepo provides append and query access to the answer journal.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryAnswerEvents returns a session's answers in the order given.
	QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// TrickiestFacts returns up to limit facts with the most wrong answers
	// in the session, most-missed first. Ties break on (A, B).
	TrickiestFacts(ctx context.Context, sessionID string, limit int) ([]FactMiss, error)

	// SessionAccuracy returns how many answers the session recorded and how
	// many of them were correct.
	SessionAccuracy(ctx context.Context, sessionID string) (answered, correct int, err error)

	// QuerySessionSummaries returns up to limit finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, limit int) ([]SessionSummaryRecord, error)
}
