package ingest

import (
	"regexp"
	"strings"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	// MinChunkLength drops fragments too short to be worth embedding.
	MinChunkLength = 50
)

var (
	sentenceEnd   = regexp.MustCompile(`[.!?]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonPrintable  = regexp.MustCompile(`[^\x20-\x7E]`)
)

// ChunkText groups sentences into chunks of roughly maxSize characters. Each
// new chunk starts with the last overlap/10 words of the previous one.
func ChunkText(text string, maxSize, overlap int) []string {
	var chunks []string
	current := ""

	for _, raw := range sentenceEnd.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}

		if len(current)+len(sentence) > maxSize && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))

			words := strings.Fields(current)
			keep := overlap / 10
			if keep > len(words) {
				keep = len(words)
			}
			current = strings.Join(words[len(words)-keep:], " ") + " " + sentence
		} else {
			current += " " + sentence
		}
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	out := chunks[:0]
	for _, c := range chunks {
		if len(c) > MinChunkLength {
			out = append(out, c)
		}
	}
	return out
}

// CleanText collapses whitespace and strips everything outside printable ASCII.
func CleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = nonPrintable.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
