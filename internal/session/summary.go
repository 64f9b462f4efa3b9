package session

import (
	"context"
	"time"

	"github.com/abhisek/applemath/internal/mastery"
)

// TrickiestLimit is the number of most-missed facts shown in a summary.
const TrickiestLimit = 3

// Verdict is the closing message for a finished session.
type Verdict string

const (
	VerdictPerfect        Verdict = "🌟 Perfect Score! You are a Math Wizard! 🌟"
	VerdictAmazing        Verdict = "✨ Amazing work! You are getting very good at this!"
	VerdictKeepPracticing Verdict = "Keep practicing, you will get there!"
)

// VerdictFor picks the verdict for score correct answers out of total.
// Three quarters or better (15 of 20) is "amazing".
func VerdictFor(score, total int) Verdict {
	switch {
	case total > 0 && score >= total:
		return VerdictPerfect
	case total > 0 && score*4 >= total*3:
		return VerdictAmazing
	default:
		return VerdictKeepPracticing
	}
}

// FactMiss is a fact answered wrongly during the session.
type FactMiss struct {
	Pair   mastery.FactPair
	Misses int
}

// Summary holds the data shown when a session ends.
type Summary struct {
	Mode          Mode
	Played        int
	Correct       int
	Total         int // MaxQuestions in classic mode, Played otherwise
	Accuracy      float64
	Duration      time.Duration
	Verdict       Verdict
	MasteredCount int
	Trickiest     []FactMiss
}

// Summary builds the end-of-session summary. Trickiest facts come from the
// journal when one is configured.
func (m *Manager) Summary(ctx context.Context) *Summary {
	st := m.state

	total := st.QuestionsPlayed
	if st.Mode == ModeClassic {
		total = st.MaxQuestions
	}

	var accuracy float64
	if st.QuestionsPlayed > 0 {
		accuracy = float64(st.SessionScore) / float64(st.QuestionsPlayed)
	}

	sum := &Summary{
		Mode:          st.Mode,
		Played:        st.QuestionsPlayed,
		Correct:       st.SessionScore,
		Total:         total,
		Accuracy:      accuracy,
		Duration:      time.Since(st.StartTime),
		Verdict:       VerdictFor(st.SessionScore, total),
		MasteredCount: m.table.MasteredCount(),
	}

	if m.eventRepo != nil {
		misses, err := m.eventRepo.TrickiestFacts(ctx, st.ID, TrickiestLimit)
		if err != nil {
			m.logger.Error("trickiest facts", "error", err)
		}
		for _, fm := range misses {
			sum.Trickiest = append(sum.Trickiest, FactMiss{
				Pair:   mastery.FactPair{A: fm.A, B: fm.B},
				Misses: fm.Misses,
			})
		}
	}
	return sum
}
