package parser

import "strings"

// DefaultChunkSize is the approximate token budget per chunk. Words are
// used as the unit, at roughly 0.75 words per token.
const DefaultChunkSize = 1000

// ChunkText splits page text into passages of fixed approximate word
// length. Reproducible: the same text always yields the same chunks.
func ChunkText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	wordsPerChunk := chunkSize * 3 / 4

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(words)/wordsPerChunk+1)
	for start := 0; start < len(words); start += wordsPerChunk {
		end := start + wordsPerChunk
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
