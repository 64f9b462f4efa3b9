package mastery

// FactState is a fact's position in the mastery lifecycle, derived from its score.
type FactState string

const (
	StateNew        FactState = "new"
	StateLearning   FactState = "learning"
	StateMastered   FactState = "mastered"
	StateStruggling FactState = "struggling" // score below zero
)

// StateFor derives the lifecycle state for a score.
func StateFor(score int) FactState {
	switch {
	case score >= MasteryScore:
		return StateMastered
	case score < 0:
		return StateStruggling
	case score == 0:
		return StateNew
	default:
		return StateLearning
	}
}

// StateTransition records a fact crossing into or out of mastery, for
// feedback display and journaling.
type StateTransition struct {
	Pair    FactPair
	From    FactState
	To      FactState
	Trigger string // "mastered", "slipped"
}

// transitionFor returns the transition caused by moving from before to
// after, or nil when mastery membership did not change.
func transitionFor(pair FactPair, before, after int) *StateTransition {
	wasMastered := before >= MasteryScore
	isMastered := after >= MasteryScore
	if wasMastered == isMastered {
		return nil
	}
	t := &StateTransition{
		Pair: pair,
		From: StateFor(before),
		To:   StateFor(after),
	}
	if isMastered {
		t.Trigger = "mastered"
	} else {
		t.Trigger = "slipped"
	}
	return t
}
