package problemgen

import (
	"errors"
	"math/rand"
	"time"

	"github.com/abhisek/applemath/internal/mastery"
)

// ErrAllMastered is returned by Generate when no fact is left to practice.
var ErrAllMastered = errors.New("every fact is mastered")

// Generator produces questions from the facts still in rotation.
type Generator interface {
	// Generate picks one of valid uniformly at random and builds a question
	// for it. Returns ErrAllMastered if valid is empty.
	Generate(valid []mastery.FactPair) (*Question, error)
}

// RandomGenerator is the default Generator backed by math/rand.
type RandomGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator drawing from src.
func New(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

// NewSeeded creates a RandomGenerator with a fixed seed. A zero seed uses
// the current time.
func NewSeeded(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.NewSource(seed))
}

// Generate implements Generator.
func (g *RandomGenerator) Generate(valid []mastery.FactPair) (*Question, error) {
	if len(valid) == 0 {
		return nil, ErrAllMastered
	}

	pair := valid[g.rng.Intn(len(valid))]
	correct := pair.Product()

	options := append(g.distractors(correct), correct)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{
		A:       pair.A,
		B:       pair.B,
		Correct: correct,
		Options: options,
		Visual:  Visual(pair.A, pair.B),
	}, nil
}

// distractors draws NumDistractors distinct values from [1, MaxDistractor],
// none equal to correct. The range is independent of correct's magnitude.
func (g *RandomGenerator) distractors(correct int) []int {
	seen := make(map[int]bool, NumDistractors)
	out := make([]int, 0, NumOptions)
	for len(out) < NumDistractors {
		d := g.rng.Intn(MaxDistractor) + 1
		if d == correct || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
