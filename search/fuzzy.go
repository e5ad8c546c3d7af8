package search

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"
)

const (
	// Threshold is the highest field score still accepted as a match.
	// A score of 0 is a perfect match.
	Threshold = 0.3

	// MinMatchLength is the shortest query, and the shortest matched
	// window of text, that can produce a match.
	MinMatchLength = 2

	// locationDistance controls how quickly a match loses relevance the
	// further into the text it starts.
	locationDistance = 100
)

// epsilon stands in for a perfect score so weighted products stay ordered.
const epsilon = 0x1p-52

// scoreField scores a lowercased pattern against text. The score is the
// fewest edits needed to turn the pattern into any window of the text,
// relative to the pattern length, plus a penalty for where that window
// starts. It reports false when the best score exceeds Threshold.
func scoreField(pattern []rune, text string) (float64, bool) {
	n := len(pattern)
	if n < MinMatchLength || text == "" {
		return 0, false
	}

	t := []rune(strings.ToLower(text))
	p := string(pattern)
	if string(t) == p {
		return 0, true
	}

	maxErrors := int(Threshold * float64(n))
	best := math.Inf(1)
	for start := 0; start < len(t); start++ {
		proximity := float64(start) / locationDistance
		if proximity > Threshold || proximity >= best {
			break
		}
		for size := max(n-maxErrors, MinMatchLength); size <= n+maxErrors; size++ {
			if start+size > len(t) {
				break
			}
			d := levenshtein.Distance(p, string(t[start:start+size]), nil)
			if score := float64(d)/float64(n) + proximity; score < best {
				best = score
			}
		}
	}

	if best > Threshold {
		return 0, false
	}
	return best, true
}

// weigh folds a field score into an entry score.
func weigh(score, weight float64) float64 {
	return math.Pow(math.Max(score, epsilon), weight)
}
