// Package fuzzy provides "did you mean" matching for unknown option names
// Used by argparse/errors.go to fill ParseError.Suggestion
package fuzzy

import "sort"

// Matcher finds registered option names close to a mistyped one
type Matcher struct {
	maxDistance int
	minLength   int

	// Two reusable rows for the edit distance computation
	prev []int
	curr []int
}

// NewMatcher creates a new matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a candidate within the distance limit
type Match struct {
	Value    string
	Distance int
	Prefix   int // Length of the common prefix with the input
	index    int // Position in the candidate list, used as a tiebreaker
}

// FindBest returns the closest candidate, or "" if none is within range.
// Exact matches are never suggested.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, closest first.
// Ties go to the longer common prefix, then to the earlier candidate.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	for i, candidate := range candidates {
		if candidate == input || candidate == "" {
			continue
		}
		distance := m.distance(input, candidate)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Prefix:   commonPrefixLength(input, candidate),
			index:    i,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Prefix != b.Prefix {
			return a.Prefix > b.Prefix
		}
		return a.index < b.index
	})

	return matches
}

// distance computes the Levenshtein distance between a and b, returning
// maxDistance+1 as soon as the result is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	// Keep the rows sized to the shorter string
	if len(a) > len(b) {
		a, b = b, a
	}
	if cap(m.prev) < len(a)+1 {
		m.prev = make([]int, len(a)+1)
		m.curr = make([]int, len(a)+1)
	}
	prev, curr := m.prev[:len(a)+1], m.curr[:len(a)+1]

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
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

// FindBestOption finds the best matching long option name
func FindBestOption(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
