package chat

import (
	"sort"
	"strings"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

// ScoredChunk pairs a retrieved chunk with its keyword-overlap score.
type ScoredChunk struct {
	Chunk domain.Chunk
	Score float64
}

// QueryTokens lowercases the question and keeps whitespace-separated tokens
// longer than two characters. Short tokens match too much text to be useful.
func QueryTokens(query string) []string {
	var tokens []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) > 2 {
			tokens = append(tokens, w)
		}
	}

	return tokens
}

// score counts how many query tokens appear in the lowercased chunk text.
func score(tokens []string, textLower string) float64 {
	var s float64
	for _, w := range tokens {
		if strings.Contains(textLower, w) {
			s++
		}
	}

	return s
}

// TopK scores chunks against the query tokens and returns the k best matches
// in descending score order. Chunks without any token overlap are dropped;
// ties keep their input order.
func TopK(tokens []string, chunks []domain.Chunk, k int) []ScoredChunk {
	if len(tokens) == 0 || k <= 0 {
		return nil
	}

	var scored []ScoredChunk
	for _, ch := range chunks {
		if s := score(tokens, strings.ToLower(ch.Text)); s > 0 {
			scored = append(scored, ScoredChunk{Chunk: ch, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	return scored
}
