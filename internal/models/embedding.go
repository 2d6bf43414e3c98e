package models

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// EmbeddingFor returns a simple deterministic embedding for the given
// text, counting total length, vowels and consonants. Good enough to
// order catalog search results consistently without an external model.
func EmbeddingFor(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	length := float32(len(text))
	return pgvector.NewVector([]float32{length, vowels, consonants})
}
