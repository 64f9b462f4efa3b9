package mastery

// Table holds the long-lived mastery score for every fact pair. It always
// contains exactly NumFacts entries; scores have no floor or ceiling.
type Table struct {
	scores [NumFacts]int
}

// NewTable creates a table with every score at zero.
func NewTable() *Table {
	return &Table{}
}

// Get returns the score for pair. Pairs outside the fact domain read as 0.
func (t *Table) Get(pair FactPair) int {
	if !pair.Valid() {
		return 0
	}
	return t.scores[pair.index()]
}

// Apply adds delta to the score for pair and returns the new score.
// Returns a StateTransition if the change moved the pair into or out of
// mastery, nil otherwise. Pairs outside the fact domain are ignored.
func (t *Table) Apply(pair FactPair, delta int) (int, *StateTransition) {
	if !pair.Valid() {
		return 0, nil
	}
	i := pair.index()
	before := t.scores[i]
	t.scores[i] += delta
	return t.scores[i], transitionFor(pair, before, t.scores[i])
}

// Reset sets every score back to zero.
func (t *Table) Reset() {
	t.scores = [NumFacts]int{}
}

// IsMastered reports whether pair has reached MasteryScore.
func (t *Table) IsMastered(pair FactPair) bool {
	return t.Get(pair) >= MasteryScore
}

// ValidPairs returns every pair whose score is strictly below MasteryScore,
// in row-major order.
func (t *Table) ValidPairs() []FactPair {
	var pairs []FactPair
	for _, p := range AllPairs() {
		if t.scores[p.index()] < MasteryScore {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// MasteredCount returns the number of mastered pairs.
func (t *Table) MasteredCount() int {
	n := 0
	for _, s := range t.scores {
		if s >= MasteryScore {
			n++
		}
	}
	return n
}

// Progress returns the mastered fraction of the table in [0,1].
func (t *Table) Progress() float64 {
	return float64(t.MasteredCount()) / float64(NumFacts)
}

// Snapshot returns a copy of every score keyed by pair (for stats/UI).
func (t *Table) Snapshot() map[FactPair]int {
	result := make(map[FactPair]int, NumFacts)
	for _, p := range AllPairs() {
		result[p] = t.scores[p.index()]
	}
	return result
}

// Fill sets every score to the same value. Used to seed drills and tests.
func (t *Table) Fill(score int) {
	for i := range t.scores {
		t.scores[i] = score
	}
}
