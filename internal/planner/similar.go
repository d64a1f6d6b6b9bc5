package planner

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarNames returns the names within a small edit distance of name,
// ignoring case. Exact duplicates are included.
func similarNames(names []string, name string) []string {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil
	}
	limit := 1
	if len([]rune(want)) >= 6 {
		limit = 2
	}
	var out []string
	seen := map[string]bool{}
	for _, n := range names {
		got := strings.ToLower(strings.TrimSpace(n))
		if seen[got] {
			continue
		}
		if levenshtein.ComputeDistance(want, got) <= limit {
			seen[got] = true
			out = append(out, n)
		}
	}
	return out
}
