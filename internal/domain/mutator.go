package domain

import (
	"log/slog"

	m "github.com/fogbyte/vbafog/internal/model"
)

// StringMutator optionally produces replacement text for one string literal.
// Returning ok=false leaves the literal untouched. Strategies never touch
// line text themselves; the engine applies replacements through the line's
// offset-tracking replace.
type StringMutator interface {
	// Name identifies the strategy in configuration and audit records.
	Name() string
	// Mutate returns the replacement text for the literal, or ok=false.
	Mutate(lit *m.StringLiteral) (string, bool)
}

// MutationEngine walks lines, exposes each string literal to the configured
// strategies in order, and applies the replacements they produce.
type MutationEngine struct {
	log        *slog.Logger
	strategies []StringMutator
	records    []m.MutationRecord
}

// NewMutationEngine returns an engine applying the given strategies in
// order.
func NewMutationEngine(log *slog.Logger, strategies ...StringMutator) *MutationEngine {
	if log == nil {
		log = slog.Default()
	}

	return &MutationEngine{log: log, strategies: strategies}
}

// Records returns the replacements applied so far, in application order.
func (e *MutationEngine) Records() []m.MutationRecord { return e.records }

// Run applies every strategy to every literal of the given lines. Each
// strategy sees the text the previous one produced: literal spans are
// rescanned between strategies, while replacements within one pass keep the
// remaining spans valid through offset repair.
func (e *MutationEngine) Run(lines []*m.Line) {
	for _, strat := range e.strategies {
		for _, line := range lines {
			e.runLine(strat, line)
		}
	}
}

func (e *MutationEngine) runLine(strat StringMutator, line *m.Line) {
	for _, lit := range line.RescanLiterals() {
		repl, ok := strat.Mutate(lit)
		if !ok {
			continue
		}

		original := lit.Value
		line.ReplaceLiteral(lit, repl)

		e.records = append(e.records, m.MutationRecord{
			Strategy:    strat.Name(),
			Line:        line.Number,
			Original:    original,
			Replacement: repl,
		})

		e.log.Debug("literal mutated",
			"strategy", strat.Name(),
			"line", line.Number,
			"original", original,
			"replacement", repl)
	}
}
