package model

import "strings"

// StringLiteral is one double-quote-delimited span inside a Line's effective
// text. Offsets include the quotes and are valid only against the text the
// span was scanned from; ReplaceLiteral keeps them in repair as the line
// changes. No literal spans a line boundary.
type StringLiteral struct {
	line *Line

	// Start and End delimit the literal as [Start, End), quotes included.
	Start int
	End   int
	// Value is the quoted text the literal was scanned with.
	Value string
	// Replacement is the text substituted for the literal, if any.
	Replacement string

	replaced bool
}

// Inner returns the literal's value without the surrounding quotes.
func (st *StringLiteral) Inner() string {
	return strings.TrimSuffix(strings.TrimPrefix(st.Value, `"`), `"`)
}

// Text returns the replacement if one was applied, else the original value.
func (st *StringLiteral) Text() string {
	if st.replaced {
		return st.Replacement
	}

	return st.Value
}

// Replaced reports whether the literal has been rewritten.
func (st *StringLiteral) Replaced() bool { return st.replaced }

// Line returns the line the literal was scanned from.
func (st *StringLiteral) Line() *Line { return st.line }

// Literals returns the string literals found in the line's current effective
// text, leftmost first. The scan is lazy and cached until the text changes
// through SetText. A literal cannot contain an embedded quote: the first
// closing quote terminates it.
func (l *Line) Literals() []*StringLiteral {
	if l.scanned {
		return l.literals
	}

	l.literals = scanLiterals(l, l.Text())
	l.scanned = true

	return l.literals
}

// RescanLiterals drops any cached spans and scans the current effective text
// afresh. Mutation passes use it so a later strategy sees the literals
// produced by an earlier one.
func (l *Line) RescanLiterals() []*StringLiteral {
	l.invalidateLiterals()
	return l.Literals()
}

func scanLiterals(l *Line, text string) []*StringLiteral {
	var out []*StringLiteral

	for i := 0; i < len(text); {
		open := strings.IndexByte(text[i:], '"')
		if open < 0 {
			break
		}

		open += i

		closing := strings.IndexByte(text[open+1:], '"')
		if closing < 0 {
			break
		}

		closing += open + 1

		out = append(out, &StringLiteral{
			line:  l,
			Start: open,
			End:   closing + 1,
			Value: text[open : closing+1],
		})

		i = closing + 1
	}

	return out
}

// ReplaceLiteral rewrites the line's effective text, substituting exactly
// [st.Start, st.End) with repl. The span's own end offset and the offsets of
// every other literal on the line starting after the replaced span are
// updated in the same step; text and offsets never go out of sync.
func (l *Line) ReplaceLiteral(st *StringLiteral, repl string) {
	text := l.Text()
	oldEnd := st.End
	delta := len(repl) - (st.End - st.Start)

	l.override = text[:st.Start] + repl + text[st.End:]
	l.modified = true

	st.Replacement = repl
	st.replaced = true
	st.End = st.Start + len(repl)

	for _, other := range l.literals {
		if other == st || other.Start < oldEnd {
			continue
		}

		other.Start += delta
		other.End += delta
	}
}
