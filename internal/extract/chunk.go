package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// sentenceEnd matches a run of sentence-ending punctuation followed by
// whitespace. Simple punctuation rules handle most texts without a heavy NLP
// dependency.
var sentenceEnd = regexp.MustCompile(`[.!?]+[ \t\r\n]+`)

// SplitSentences splits text into sentences, keeping the terminating
// punctuation attached. Text without any sentence boundary comes back as a
// single element.
func SplitSentences(text string) []string {
	var out []string

	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}

	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}

	if len(out) == 0 {
		return []string{text}
	}

	return out
}

// Chunks splits text into chunks of roughly size characters with the given
// overlap. It prefers sentence boundaries; texts too large for sentence
// bookkeeping fall back to plain character windows. An overlap >= size is
// clamped to a third of the size.
func Chunks(text string, size, overlap int) []string {
	if size <= 0 {
		return []string{text}
	}

	if overlap >= size {
		overlap = size / 3
	}

	// sentence bookkeeping on very large texts is not worth the allocations
	if len(text) >= size*100 {
		return charChunks(text, size, overlap)
	}

	var (
		out     []string
		current []string
		curSize int
	)

	for _, sentence := range SplitSentences(text) {
		if curSize+len(sentence) > size && len(current) > 0 {
			if joined := strings.TrimSpace(strings.Join(current, " ")); joined != "" {
				out = append(out, joined)
			}

			// carry trailing sentences that fit in the overlap window into
			// the next chunk for context
			if curSize > overlap {
				var (
					keep []string
					kept int
				)
				for i := len(current) - 1; i >= 0; i-- {
					if kept+len(current[i]) > overlap {
						break
					}
					keep = append([]string{current[i]}, keep...)
					kept += len(current[i])
				}
				current, curSize = keep, kept
			} else {
				current, curSize = nil, 0
			}
		}

		current = append(current, sentence)
		curSize += len(sentence)
	}

	if len(current) > 0 {
		if joined := strings.TrimSpace(strings.Join(current, " ")); joined != "" {
			out = append(out, joined)
		}
	}

	return out
}

func charChunks(text string, size, overlap int) []string {
	var out []string

	for start := 0; start < len(text); {
		end := min(len(text), start+size)
		if c := strings.TrimSpace(text[start:end]); c != "" {
			out = append(out, c)
		}
		if end == len(text) {
			break
		}
		start = max(0, end-overlap)
	}

	return out
}

// ValidChunk reports whether a chunk carries enough meaningful content to be
// worth storing: at least minLength characters after trimming, with at least
// minLength/2 of them alphanumeric.
func ValidChunk(chunk string, minLength int) bool {
	trimmed := strings.TrimSpace(chunk)
	if trimmed == "" || len(trimmed) < minLength {
		return false
	}

	alnum := 0
	for _, r := range chunk {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}

	return alnum >= minLength/2
}
