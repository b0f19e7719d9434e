// Package fuzzy provides edit-distance matching for option name
// suggestions, used by the error handler for typo detection.
package fuzzy

import "strings"

// Matcher finds close candidates for a mistyped option name.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// FindBest returns the closest candidate within the maximum edit distance,
// or the empty string when no candidate qualifies. Ties are broken by
// preferring the longer common prefix with the input.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDist := m.maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			// An exact match is not a typo.
			continue
		}

		dist := m.distance(input, lower)
		if dist > m.maxDistance {
			continue
		}
		prefix := commonPrefixLength(input, lower)
		if dist < bestDist || (dist == bestDist && prefix > bestPrefix) {
			best = candidate
			bestDist = dist
			bestPrefix = prefix
		}
	}

	return best
}

// distance computes the Levenshtein edit distance between a and b, with
// early termination once the result is known to exceed the maximum.
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rolling rows instead of the full matrix.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = minThree(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// FindBestName is a convenience wrapper for one-shot lookups.
func FindBestName(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}

func commonPrefixLength(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
