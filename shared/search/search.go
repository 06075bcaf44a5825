// Package search ranks free-text queries against a small set of names.
package search

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var bagSizes = []int{2, 3}

type Match struct {
	Value string  `json:"value"`
	Score float64 `json:"score"`
}

// Normalize lowercases and transliterates s so accents and case do not affect matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// Similarity is the Levenshtein ratio of the normalized strings, in [0, 1].
func Similarity(a, b string) float64 {
	return levenshtein.RatioForStrings([]rune(Normalize(a)), []rune(Normalize(b)), levenshtein.DefaultOptions)
}

// Rank returns up to limit candidates closest to query, best first. Candidates containing the
// query are always considered; the rest are preselected by closestmatch before scoring.
func Rank(query string, candidates []string, limit int) []Match {
	normalizedQuery := Normalize(query)
	if normalizedQuery == "" || len(candidates) == 0 || limit <= 0 {
		return []Match{}
	}

	byNormalized := make(map[string]string, len(candidates))
	keys := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		key := Normalize(candidate)
		if _, ok := byNormalized[key]; ok {
			continue
		}

		byNormalized[key] = candidate
		keys = append(keys, key)
	}

	pool := map[string]struct{}{}

	for _, key := range keys {
		if strings.Contains(key, normalizedQuery) {
			pool[key] = struct{}{}
		}
	}

	matcher := closestmatch.New(keys, bagSizes)
	for _, key := range matcher.ClosestN(normalizedQuery, limit*2) { //nolint:mnd
		pool[key] = struct{}{}
	}

	matches := make([]Match, 0, len(pool))

	for key := range pool {
		score := levenshtein.RatioForStrings([]rune(normalizedQuery), []rune(key), levenshtein.DefaultOptions)
		if strings.HasPrefix(key, normalizedQuery) {
			score = (score + 1) / 2 //nolint:mnd
		}

		matches = append(matches, Match{Value: byNormalized[key], Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}

		return matches[i].Value < matches[j].Value
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}
