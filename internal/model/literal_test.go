package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Literals(t *testing.T) {
	s := NewStore()
	l := s.Append(`msg = "hello" & name & "!"`, 1)

	lits := l.Literals()

	require.Len(t, lits, 2)
	assert.Equal(t, `"hello"`, lits[0].Value)
	assert.Equal(t, "hello", lits[0].Inner())
	assert.Equal(t, 6, lits[0].Start)
	assert.Equal(t, 13, lits[0].End)
	assert.Equal(t, `"!"`, lits[1].Value)
}

func TestLine_LiteralsNoQuotes(t *testing.T) {
	s := NewStore()
	l := s.Append("x = 1 + 2", 1)

	assert.Empty(t, l.Literals())
}

func TestLine_LiteralsUnterminated(t *testing.T) {
	s := NewStore()
	l := s.Append(`msg = "ok" & "dangling`, 1)

	lits := l.Literals()

	require.Len(t, lits, 1)
	assert.Equal(t, `"ok"`, lits[0].Value)
}

func TestLine_LiteralsCached(t *testing.T) {
	s := NewStore()
	l := s.Append(`a = "x"`, 1)

	first := l.Literals()
	second := l.Literals()

	require.Len(t, first, 1)
	assert.Same(t, first[0], second[0])
}

func TestLine_SetTextInvalidatesLiterals(t *testing.T) {
	s := NewStore()
	l := s.Append(`a = "x"`, 1)

	require.Len(t, l.Literals(), 1)

	l.SetText("a = 1")

	assert.Empty(t, l.Literals())
}

func TestLine_ReplaceLiteral(t *testing.T) {
	s := NewStore()
	l := s.Append(`"AAAA" &x "B"`, 1)

	lits := l.Literals()
	require.Len(t, lits, 2)
	require.Equal(t, 0, lits[0].Start)
	require.Equal(t, 6, lits[0].End)
	require.Equal(t, 10, lits[1].Start)
	require.Equal(t, 13, lits[1].End)

	l.ReplaceLiteral(lits[0], `"CC"`)

	assert.Equal(t, `"CC" &x "B"`, l.Text())
	assert.Equal(t, 0, lits[0].Start)
	assert.Equal(t, 4, lits[0].End)
	assert.Equal(t, 8, lits[1].Start)
	assert.Equal(t, 11, lits[1].End)

	assert.True(t, lits[0].Replaced())
	assert.Equal(t, `"CC"`, lits[0].Text())
	assert.False(t, lits[1].Replaced())

	// The shifted span must still address the literal exactly.
	assert.Equal(t, `"B"`, l.Text()[lits[1].Start:lits[1].End])
}

func TestLine_ReplaceLiteralGrowing(t *testing.T) {
	s := NewStore()
	l := s.Append(`a = "x" & "y"`, 1)

	lits := l.Literals()
	require.Len(t, lits, 2)

	l.ReplaceLiteral(lits[0], `Decode("beef")`)

	assert.Equal(t, `a = Decode("beef") & "y"`, l.Text())
	assert.Equal(t, `"y"`, l.Text()[lits[1].Start:lits[1].End])
}

func TestLine_ReplaceLiteralSecondOfTwo(t *testing.T) {
	s := NewStore()
	l := s.Append(`a = "x" & "y"`, 1)

	lits := l.Literals()
	require.Len(t, lits, 2)

	l.ReplaceLiteral(lits[1], `"zz"`)

	assert.Equal(t, `a = "x" & "zz"`, l.Text())
	assert.Equal(t, `"x"`, l.Text()[lits[0].Start:lits[0].End])
}

func TestLine_RescanLiterals(t *testing.T) {
	s := NewStore()
	l := s.Append(`a = "long"`, 1)

	lits := l.Literals()
	require.Len(t, lits, 1)

	l.ReplaceLiteral(lits[0], `"lo" & "ng"`)

	rescanned := l.RescanLiterals()

	require.Len(t, rescanned, 2)
	assert.Equal(t, `"lo"`, rescanned[0].Value)
	assert.Equal(t, `"ng"`, rescanned[1].Value)
}
