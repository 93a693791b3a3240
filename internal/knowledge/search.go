package knowledge

import (
	"sort"
	"strings"
)

// Relevance weights. The transient score orders results and is never exposed.
const (
	scoreTitlePhrase   = 50
	scoreContentPhrase = 30
	scoreTagWord       = 20
	scoreTitleWord     = 10
	scoreContentWord   = 5
)

type scoredEntry struct {
	entry Entry
	score int
}

// Search ranks entries against a free-text query and returns at most limit
// entries by descending relevance. Ties keep store order (stable sort).
// Entries scoring zero are excluded; an empty query matches nothing. A
// non-empty category restricts candidates to that exact category.
func (s *Store) Search(query, category string, limit int) []Entry {
	queryLower := strings.TrimSpace(strings.ToLower(query))
	if queryLower == "" || limit <= 0 {
		return nil
	}
	queryWords := distinctWords(queryLower)

	s.mu.RLock()
	var scored []scoredEntry
	for _, entry := range s.stored {
		if category != "" && entry.Category != category {
			continue
		}
		if sc := score(entry, queryLower, queryWords); sc > 0 {
			scored = append(scored, scoredEntry{entry: entry, score: sc})
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]Entry, 0, len(scored))
	for _, se := range scored {
		out = append(out, cloneEntry(se.entry))
	}
	return out
}

func score(entry Entry, queryLower string, queryWords []string) int {
	titleLower := strings.ToLower(entry.Title)
	contentLower := strings.ToLower(entry.Content)

	tags := make(map[string]bool, len(entry.Tags))
	for _, t := range entry.Tags {
		tags[strings.ToLower(t)] = true
	}

	total := 0
	if strings.Contains(titleLower, queryLower) {
		total += scoreTitlePhrase
	}
	if strings.Contains(contentLower, queryLower) {
		total += scoreContentPhrase
	}
	for _, word := range queryWords {
		if tags[word] {
			total += scoreTagWord
		}
		if strings.Contains(titleLower, word) {
			total += scoreTitleWord
		}
		if strings.Contains(contentLower, word) {
			total += scoreContentWord
		}
	}
	return total
}

// distinctWords splits on whitespace and drops duplicates, preserving first
// occurrence order so scoring is deterministic.
func distinctWords(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]bool, len(fields))
	words := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			words = append(words, f)
		}
	}
	return words
}
