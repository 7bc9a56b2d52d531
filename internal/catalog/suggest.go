package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the label closest to input, or "" when none is within a
// third of the input's length (minimum three edits).
func Suggest(labels []string, input string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return ""
	}
	limit := max(3, len(in)/3)
	best := ""
	bestDist := limit + 1
	for _, label := range labels {
		for _, candidate := range []string{strings.ToLower(label), Slug(label)} {
			d := levenshtein.ComputeDistance(in, candidate)
			if d < bestDist {
				best, bestDist = label, d
			}
		}
	}
	return best
}
