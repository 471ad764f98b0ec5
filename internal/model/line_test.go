package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *Store) []string {
	var out []string
	for text := range s.Dump() {
		out = append(out, text)
	}

	return out
}

func TestStore_AppendAndDump(t *testing.T) {
	s := NewStore()
	s.Append("Sub Main()", 1)
	s.Append("    x = 1", 2)
	s.Append("End Sub", 3)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"Sub Main()", "    x = 1", "End Sub"}, collect(s))
	assert.Equal(t, "Sub Main()", s.Head().Text())
	assert.Equal(t, "End Sub", s.Tail().Text())
}

func TestStore_DumpIsRepeatable(t *testing.T) {
	s := NewStore()
	s.Append("a", 1)
	s.Append("b", 2)

	first := collect(s)
	second := collect(s)

	assert.Equal(t, first, second)
}

func TestStore_InsertAfter(t *testing.T) {
	s := NewStore()
	a := s.Append("a", 1)
	s.Append("c", 2)

	inserted := s.InsertAfter(a, "b1", "b2")

	require.Len(t, inserted, 2)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, collect(s))
	assert.Equal(t, 4, s.Len())
	assert.Zero(t, inserted[0].Number)
}

func TestStore_InsertAfterTail(t *testing.T) {
	s := NewStore()
	a := s.Append("a", 1)

	s.InsertAfter(a, "b")

	assert.Equal(t, []string{"a", "b"}, collect(s))
	assert.Equal(t, "b", s.Tail().Text())
}

func TestStore_InsertBefore(t *testing.T) {
	s := NewStore()
	s.Append("a", 1)
	c := s.Append("c", 2)

	s.InsertBefore(c, "b1", "b2")

	assert.Equal(t, []string{"a", "b1", "b2", "c"}, collect(s))
}

func TestStore_InsertBeforeHead(t *testing.T) {
	s := NewStore()
	a := s.Append("a", 1)

	s.InsertBefore(a, "first")

	assert.Equal(t, []string{"first", "a"}, collect(s))
	assert.Equal(t, "first", s.Head().Text())
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Append("a", 1)
	b := s.Append("b", 2)
	s.Append("c", 3)

	require.NoError(t, s.Remove(b))
	assert.Equal(t, []string{"a", "c"}, collect(s))
	assert.Equal(t, 2, s.Len())
}

func TestStore_RemoveHeadAndTail(t *testing.T) {
	s := NewStore()
	a := s.Append("a", 1)
	s.Append("b", 2)
	c := s.Append("c", 3)

	require.NoError(t, s.Remove(a))
	require.NoError(t, s.Remove(c))

	assert.Equal(t, []string{"b"}, collect(s))
	assert.Equal(t, s.Head(), s.Tail())
}

func TestStore_RemoveIsolatedLine(t *testing.T) {
	s := NewStore()
	only := s.Append("a", 1)

	err := s.Remove(only)

	require.ErrorIs(t, err, ErrIsolatedLine)
	assert.Equal(t, []string{"a"}, collect(s))
}

func TestStore_ReplaceWith(t *testing.T) {
	s := NewStore()
	s.Append("a", 1)
	b := s.Append("b", 2)
	s.Append("c", 3)

	meth := &Method{Name: "Owner", store: s}
	b.Method = meth

	out, err := s.ReplaceWith(b, "b1", "b2")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, []string{"a", "b1", "b2", "c"}, collect(s))

	for _, l := range out {
		assert.Equal(t, meth, l.Method)
	}
}

func TestStore_ReplaceWithTail(t *testing.T) {
	s := NewStore()
	s.Append("a", 1)
	b := s.Append("b", 2)

	_, err := s.ReplaceWith(b, "x", "y")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "x", "y"}, collect(s))
}

func TestStore_ReplaceWithIsolated(t *testing.T) {
	s := NewStore()
	only := s.Append("a", 1)

	_, err := s.ReplaceWith(only, "x")

	require.ErrorIs(t, err, ErrIsolatedLine)
}

func TestLine_TextAndOverride(t *testing.T) {
	s := NewStore()
	l := s.Append("original", 1)

	assert.Equal(t, "original", l.Text())
	assert.False(t, l.Modified())

	l.SetText("changed")

	assert.Equal(t, "changed", l.Text())
	assert.Equal(t, "original", l.Original())
	assert.True(t, l.Modified())
}
