package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogbyte/vbafog/internal/domain/mutators"
	m "github.com/fogbyte/vbafog/internal/model"
)

// upperMutator uppercases every literal value; a trivial strategy for
// exercising the engine.
type upperMutator struct{}

func (upperMutator) Name() string { return "upper" }

func (upperMutator) Mutate(lit *m.StringLiteral) (string, bool) {
	value := lit.Inner()
	if value == "" || value == strings.ToUpper(value) {
		return "", false
	}

	return `"` + strings.ToUpper(value) + `"`, true
}

func TestMutationEngine_Run(t *testing.T) {
	s := m.NewStore()
	line := s.Append(`msg = "hello" & "WORLD" & "bye"`, 1)

	engine := NewMutationEngine(nil, upperMutator{})
	engine.Run([]*m.Line{line})

	assert.Equal(t, `msg = "HELLO" & "WORLD" & "BYE"`, line.Text())

	records := engine.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "upper", records[0].Strategy)
	assert.Equal(t, `"hello"`, records[0].Original)
	assert.Equal(t, `"HELLO"`, records[0].Replacement)
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, `"bye"`, records[1].Original)
}

func TestMutationEngine_StrategiesChain(t *testing.T) {
	s := m.NewStore()
	line := s.Append(`msg = "abcdefghij"`, 1)

	// split first, then uppercase each produced chunk.
	engine := NewMutationEngine(nil, mutators.NewSplitter(4), upperMutator{})
	engine.Run([]*m.Line{line})

	assert.Equal(t, `msg = "ABCD" & "EFGH" & "IJ"`, line.Text())
}

func TestMutationEngine_NoStrategies(t *testing.T) {
	s := m.NewStore()
	line := s.Append(`msg = "hello"`, 1)

	engine := NewMutationEngine(nil)
	engine.Run([]*m.Line{line})

	assert.False(t, line.Modified())
	assert.Empty(t, engine.Records())
}

func TestMutationEngine_DecliningStrategyLeavesTextAlone(t *testing.T) {
	s := m.NewStore()
	line := s.Append(`msg = "SHOUT"`, 1)

	engine := NewMutationEngine(nil, upperMutator{})
	engine.Run([]*m.Line{line})

	assert.False(t, line.Modified())
	assert.Empty(t, engine.Records())
}
