// Package mutators provides the concrete string-literal mutation strategies.
package mutators

import (
	"strings"

	m "github.com/fogbyte/vbafog/internal/model"
)

// DefaultChunkSize is the number of value characters per chunk, excluding
// quotes.
const DefaultChunkSize = 8

// Splitter breaks long literals into a sequence of shorter quoted chunks
// joined by the VBA string-concatenation operator, so no single literal in
// the output exceeds the chunk size.
type Splitter struct {
	chunkSize int
}

// NewSplitter returns a splitter with the given chunk size; zero or negative
// falls back to DefaultChunkSize.
func NewSplitter(chunkSize int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Splitter{chunkSize: chunkSize}
}

// Name implements StringMutator.
func (s *Splitter) Name() string { return "split" }

// Mutate splits the literal when its inner value is longer than the chunk
// size. Chunk boundaries are fixed-width slices of the value; the last chunk
// may be shorter. Concatenated at runtime the chunks equal the original
// value.
func (s *Splitter) Mutate(lit *m.StringLiteral) (string, bool) {
	value := lit.Inner()
	if len(value) <= s.chunkSize {
		return "", false
	}

	chunks := make([]string, 0, (len(value)+s.chunkSize-1)/s.chunkSize)

	for start := 0; start < len(value); start += s.chunkSize {
		end := min(start+s.chunkSize, len(value))
		chunks = append(chunks, `"`+value[start:end]+`"`)
	}

	return strings.Join(chunks, " & "), true
}
