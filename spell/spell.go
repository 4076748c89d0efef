package spell

import (
	"strings"

	"github.com/streambinder/lyricsfinder/corpus"
	"github.com/xrash/smetrics"
)

const DefaultThreshold = 85

// Correct rewrites the words of phrase which are not part of the corpus
// toward the most similar corpus token, if similar enough:
// words are corrected independently of each other
func Correct(phrase string, vocabulary []string, threshold int) (string, bool) {
	var (
		words   = strings.Fields(phrase)
		tokens  = corpus.Top(vocabulary, corpus.Cap)
		known   = make(map[string]bool, len(tokens))
		changed = false
	)
	if len(tokens) == 0 || len(words) == 0 {
		return phrase, false
	}
	for _, token := range tokens {
		known[token] = true
	}

	for i, word := range words {
		lower := strings.ToLower(word)
		if known[lower] {
			continue
		}
		if token, score := best(lower, tokens); score >= float64(threshold) {
			words[i] = token
			changed = true
		}
	}
	if !changed {
		return phrase, false
	}
	return strings.Join(words, " "), true
}

func best(word string, tokens []string) (match string, score float64) {
	score = -1
	for _, token := range tokens {
		if s := Ratio(word, token); s > score {
			match, score = token, s
		}
	}
	return
}

// Ratio is the normalized indel similarity of a and b, in [0, 100]:
// a substitution costs as much as a deletion plus an insertion
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 100 * float64(total-distance) / float64(total)
}
