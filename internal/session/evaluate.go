package session

import (
	"fmt"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/problemgen"
)

// Outcome is the result of evaluating one answer.
type Outcome struct {
	Pair     mastery.FactPair
	Selected int
	Correct  bool

	// Score is the pair's mastery score after the answer.
	Score int

	Feedback string
	Severity Severity

	// Transition is set when the answer moved the pair into or out of mastery.
	Transition *mastery.StateTransition
}

// Evaluate scores selected against q: +1 to the asked pair's mastery if it
// is the product, -1 otherwise (no floor). No other entry is touched.
func Evaluate(table *mastery.Table, q *problemgen.Question, selected int, learner string) Outcome {
	pair := q.Pair()
	correct := problemgen.IsCorrect(selected, q)

	delta := -1
	if correct {
		delta = 1
	}
	score, transition := table.Apply(pair, delta)

	out := Outcome{
		Pair:       pair,
		Selected:   selected,
		Correct:    correct,
		Score:      score,
		Transition: transition,
	}
	if correct {
		out.Feedback = fmt.Sprintf("Good job %s! (%d × %d = %d)", learner, q.A, q.B, q.Correct)
		out.Severity = SeveritySuccess
	} else {
		out.Feedback = fmt.Sprintf("Practice more, %s. The answer was %d.", learner, q.Correct)
		out.Severity = SeverityError
	}
	return out
}
