package corpus

import (
	"regexp"
	"sort"
	"strings"

	"github.com/streambinder/lyricsfinder/entity"
)

// Cap bounds the number of tokens consulted
// when correcting a phrase
const Cap = 200

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9'-]{3,}`)

// Build tokenizes titles and snippets into a vocabulary
// of unique lowercase words, most frequent first
// (ties keep the order in which words were first seen)
func Build(results []entity.SearchResult) []string {
	var (
		counts = map[string]int{}
		tokens []string
	)
	for _, result := range results {
		for _, word := range Tokenize(result.Title + " " + result.Snippet) {
			if _, ok := counts[word]; !ok {
				tokens = append(tokens, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return counts[tokens[i]] > counts[tokens[j]]
	})
	return tokens
}

// Tokenize returns the lowercase words of text,
// in order, keeping repetitions
func Tokenize(text string) []string {
	words := tokenPattern.FindAllString(text, -1)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return words
}

// Top returns the first n tokens of the corpus
func Top(corpus []string, n int) []string {
	if len(corpus) > n {
		return corpus[:n]
	}
	return corpus
}
