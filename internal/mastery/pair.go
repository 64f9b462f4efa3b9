package mastery

import "fmt"

const (
	// MinFactor and MaxFactor bound both operands of a fact.
	MinFactor = 1
	MaxFactor = 9

	// NumFacts is the number of ordered fact pairs in the table.
	NumFacts = (MaxFactor - MinFactor + 1) * (MaxFactor - MinFactor + 1)

	// MasteryScore is the score at which a fact leaves the active rotation.
	MasteryScore = 10
)

// FactPair is an ordered multiplication fact A × B. (2,3) and (3,2) are
// distinct facts.
type FactPair struct {
	A int
	B int
}

// Product returns A × B.
func (p FactPair) Product() int {
	return p.A * p.B
}

// Valid reports whether both operands lie in [MinFactor, MaxFactor].
func (p FactPair) Valid() bool {
	return p.A >= MinFactor && p.A <= MaxFactor &&
		p.B >= MinFactor && p.B <= MaxFactor
}

// String renders the fact as "a × b".
func (p FactPair) String() string {
	return fmt.Sprintf("%d × %d", p.A, p.B)
}

// AllPairs returns every fact pair in row-major order (1×1, 1×2, ... 9×9).
func AllPairs() []FactPair {
	pairs := make([]FactPair, 0, NumFacts)
	for a := MinFactor; a <= MaxFactor; a++ {
		for b := MinFactor; b <= MaxFactor; b++ {
			pairs = append(pairs, FactPair{A: a, B: b})
		}
	}
	return pairs
}

// index maps a valid pair to its slot in the table's backing array.
func (p FactPair) index() int {
	return (p.A-MinFactor)*(MaxFactor-MinFactor+1) + (p.B - MinFactor)
}
