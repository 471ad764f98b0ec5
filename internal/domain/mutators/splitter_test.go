package mutators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/fogbyte/vbafog/internal/model"
)

func literalOn(t *testing.T, text string) *m.StringLiteral {
	t.Helper()

	line := m.NewStore().Append(text, 1)

	lits := line.Literals()
	require.Len(t, lits, 1)

	return lits[0]
}

func TestSplitter_Mutate(t *testing.T) {
	s := NewSplitter(8)

	lit := literalOn(t, `x = "abcdefghijklmnopqrst"`)

	out, ok := s.Mutate(lit)
	require.True(t, ok)
	assert.Equal(t, `"abcdefgh" & "ijklmnop" & "qrst"`, out)
}

func TestSplitter_ShortLiteralUntouched(t *testing.T) {
	s := NewSplitter(8)

	lit := literalOn(t, `x = "short"`)

	_, ok := s.Mutate(lit)
	assert.False(t, ok)
}

func TestSplitter_ExactChunkSizeUntouched(t *testing.T) {
	s := NewSplitter(8)

	lit := literalOn(t, `x = "exactly8"`)

	_, ok := s.Mutate(lit)
	assert.False(t, ok)
}

func TestSplitter_EvenSplit(t *testing.T) {
	s := NewSplitter(2)

	lit := literalOn(t, `x = "abcd"`)

	out, ok := s.Mutate(lit)
	require.True(t, ok)
	assert.Equal(t, `"ab" & "cd"`, out)
}

func TestSplitter_DefaultChunkSize(t *testing.T) {
	s := NewSplitter(0)

	lit := literalOn(t, `x = "abcdefgh"`)

	_, ok := s.Mutate(lit)
	assert.False(t, ok)
}

func TestSplitter_Name(t *testing.T) {
	assert.Equal(t, "split", NewSplitter(8).Name())
}
