package manifest

// levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions required
// to transform one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// maxSuggestDistance bounds how far a near miss may be to still be suggested.
const maxSuggestDistance = 3

// nearest returns the candidates closest to name within maxSuggestDistance,
// best first, at most two.
func nearest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	var close []scored

	for _, c := range candidates {
		if d := levenshtein(name, c); d <= maxSuggestDistance {
			close = append(close, scored{name: c, dist: d})
		}
	}

	// Insertion sort; candidate lists are tiny.
	for i := 1; i < len(close); i++ {
		for j := i; j > 0 && close[j].dist < close[j-1].dist; j-- {
			close[j], close[j-1] = close[j-1], close[j]
		}
	}

	var out []string
	for i := 0; i < len(close) && i < 2; i++ {
		out = append(out, close[i].name)
	}

	return out
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
