package problemgen

import "strings"

// Apple is the icon used in the counting grid.
const Apple = "🍎"

// Visual renders rows lines of cols apples.
func Visual(rows, cols int) string {
	if rows <= 0 || cols <= 0 {
		return ""
	}
	row := strings.Repeat(Apple, cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}
