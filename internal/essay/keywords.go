package essay

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords bounds the extracted keyword list.
const maxKeywords = 5

// stopWords is the fixed Indonesian stop-word set. Most short function
// words are already dropped by the length filter; this list only carries
// the frequent longer ones.
var stopWords = map[string]struct{}{
	"yang": {}, "dan": {}, "di": {}, "ke": {}, "dari": {},
	"untuk": {}, "dengan": {}, "pada": {}, "dalam": {}, "adalah": {},
}

var reNonWord = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords returns the five most frequent meaningful words of a
// text: lower-cased, stripped of punctuation, longer than three characters
// and not in the stop-word set. Ties keep first-occurrence order.
func ExtractKeywords(text string) []string {
	cleaned := reNonWord.ReplaceAllString(strings.ToLower(text), " ")

	counts := map[string]int{}
	var order []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
