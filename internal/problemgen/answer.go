package problemgen

import (
	"strconv"
	"strings"
)

// OptionLabel returns the letter shown beside option i (0 is "a").
func OptionLabel(i int) string {
	return string(rune('a' + i))
}

// ParseChoice resolves typed input to one of the question's options.
//
// Accepted forms:
// - an option letter ("b" picks the second option)
// - the option value itself ("28")
//
// Numbers are always read as values, never as positions, so typing the
// product always picks it. Returns false if the input matches nothing.
func ParseChoice(input string, q *Question) (int, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || q == nil {
		return 0, false
	}

	if len(input) == 1 && input[0] >= 'a' {
		if i := int(input[0] - 'a'); i < len(q.Options) {
			return q.Options[i], true
		}
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	for _, o := range q.Options {
		if o == n {
			return o, true
		}
	}
	return 0, false
}

// IsCorrect reports whether option is the question's product.
func IsCorrect(option int, q *Question) bool {
	return q != nil && option == q.Correct
}
