package knowledge

// MatchResult references the best-scoring entry for a query, or no entry at
// all when the query normalizes to empty. The threshold decision belongs to
// the caller; Match only ranks.
type MatchResult struct {
	Entry *Entry
	Score float64
}

// Match scores every entry against the query and returns the running maximum.
// Entries are visited in load order and ties keep the earliest entry. An
// entry's score is the best score over its canonical question and each alias,
// so any alias may win.
func (s *Store) Match(query string) MatchResult {
	normalized := Normalize(query)
	if normalized == "" {
		return MatchResult{}
	}

	best := MatchResult{}
	for i := range s.entries {
		entry := &s.entries[i]
		score := scoreEntry(normalized, entry)
		if best.Entry == nil || score > best.Score {
			best = MatchResult{Entry: entry, Score: score}
		}
	}
	return best
}

func scoreEntry(query string, entry *Entry) float64 {
	best := Similarity(query, Normalize(entry.Question))
	for _, alias := range entry.Aliases {
		if score := Similarity(query, Normalize(alias)); score > best {
			best = score
		}
	}
	return best
}
