package knowledge

import (
	"strings"
	"unicode/utf8"
)

// Similarity computes a lexical confidence score in [0,1] between two
// already-normalized (lowercased, trimmed) phrases.
//
// The score is the better of two heuristics: plain Jaccard overlap of the
// whitespace token sets, and a blend that rewards phrases of similar length
// and shared prefixes (0.6*lengthRatio + 0.4*jaccard + 0.15*prefixBonus).
// Taking the max of the two keeps short typo'd queries competitive without a
// full edit-distance pass.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	aTokens := tokenSet(a)
	bTokens := tokenSet(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	intersection := 0
	for token := range aTokens {
		if bTokens[token] {
			intersection++
		}
	}
	union := len(aTokens) + len(bTokens) - intersection
	jaccard := float64(intersection) / float64(union)

	prefix := 0.0
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		prefix = 1.0
	}

	// Character lengths, not byte lengths: multi-byte runes must not deflate
	// the ratio.
	lenA := float64(utf8.RuneCountInString(a))
	lenB := float64(utf8.RuneCountInString(b))
	lengthRatio := lenA / lenB
	if lenA > lenB {
		lengthRatio = lenB / lenA
	}

	// The blend can reach 1.15 for identical phrases (ratio, jaccard and
	// prefix all maxed), so cap the result to keep the [0,1] contract.
	blended := 0.6*lengthRatio + 0.4*jaccard + 0.15*prefix
	score := blended
	if jaccard > blended {
		score = jaccard
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Normalize applies the canonical query normalization: trim then lowercase.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
