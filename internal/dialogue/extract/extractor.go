// Package extract finds menu items and quantities mentioned in free text.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ai-pizza-palace/server/internal/dialogue/model"
)

// minTokenLen guards against over-matching on short generic tokens like
// "ice" or acronyms such as "BBQ".
const minTokenLen = 3

var digitRun = regexp.MustCompile(`[0-9]+`)

// Items returns the catalog entries mentioned in the message, in first-found
// order, de-duplicated by item id. Each entry is tried against four checks in
// priority order; the first hit adds the entry once and moves on.
func Items(message string, catalog []model.MenuItem) []model.MenuItem {
	normalized := normalize(message)
	if normalized == "" {
		return nil
	}

	var found []model.MenuItem
	seen := make(map[int]bool, len(catalog))
	for _, item := range catalog {
		if seen[item.ID] {
			continue
		}
		if matches(normalized, item.Name) {
			seen[item.ID] = true
			found = append(found, item)
		}
	}
	return found
}

func matches(message, name string) bool {
	nameLower := strings.ToLower(name)
	tokens := strings.Fields(nameLower)
	if len(tokens) == 0 {
		return false
	}

	// Full name verbatim.
	if strings.Contains(message, nameLower) {
		return true
	}

	// Leading token, e.g. "margherita" for "Margherita Pizza".
	if len(tokens[0]) > minTokenLen && strings.Contains(message, tokens[0]) {
		return true
	}

	// Any significant token, e.g. "pepperoni" for "Pepperoni Pizza".
	for _, token := range tokens {
		if len(token) > minTokenLen && strings.Contains(message, token) {
			return true
		}
	}

	// First-two-token compound for names whose individual tokens are too
	// generic alone, e.g. "bbq chicken" or "meat lovers".
	if len(tokens) >= 2 {
		compound := tokens[0] + " " + tokens[1]
		if strings.Contains(message, compound) {
			return true
		}
	}
	return false
}

// numberWords maps written numbers to values. Scanned in declaration order,
// first hit wins.
var numberWords = []struct {
	word  string
	value int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

// Quantity extracts an order quantity from the message: the first written
// number word wins, then the first run of digits, then 1. The scan is a
// heuristic and does not tell "2 pizzas" apart from an unrelated numeral
// elsewhere in the sentence.
func Quantity(message string) int {
	lower := strings.ToLower(message)

	for _, nw := range numberWords {
		if strings.Contains(lower, nw.word) {
			return nw.value
		}
	}

	if run := digitRun.FindString(lower); run != "" {
		if n, err := strconv.Atoi(run); err == nil {
			return n
		}
	}

	return 1
}

// normalize lower-cases, trims, and collapses internal whitespace so multi
// word names match across spacing variants.
func normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), " ")
}
