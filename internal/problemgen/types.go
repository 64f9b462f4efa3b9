package problemgen

import (
	"fmt"

	"github.com/abhisek/applemath/internal/mastery"
)

// NumOptions is the number of answer options shown per question.
const NumOptions = 4

// NumDistractors is the number of wrong options per question.
const NumDistractors = NumOptions - 1

// MaxDistractor bounds the range distractors are drawn from ([1, MaxDistractor]).
const MaxDistractor = mastery.MaxFactor * mastery.MaxFactor

// Question is a generated multiple-choice multiplication question.
type Question struct {
	A       int
	B       int
	Correct int

	// Options holds NumOptions distinct values, one of which is Correct,
	// in display order.
	Options []int

	// Visual is an A-row by B-column grid of apples the learner can count.
	Visual string
}

// Pair returns the fact the question asks about.
func (q *Question) Pair() mastery.FactPair {
	return mastery.FactPair{A: q.A, B: q.B}
}

// Text returns the prompt, e.g. "4 × 7 = ?".
func (q *Question) Text() string {
	return fmt.Sprintf("%d × %d = ?", q.A, q.B)
}

// CorrectIndex returns the position of the correct option, or -1.
func (q *Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Correct {
			return i
		}
	}
	return -1
}
