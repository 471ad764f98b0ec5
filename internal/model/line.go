package model

import "iter"

// LineKind classifies a line's structural role within a module.
type LineKind int

const (
	// LineDefault marks an ordinary code line.
	LineDefault LineKind = iota
	// LineMethodStart marks a method signature line.
	LineMethodStart
	// LineMethodEnd marks an "End Function"/"End Sub" terminator line.
	LineMethodEnd
)

// lineID addresses a Line inside its Store's arena. Linking by index instead
// of by pointer keeps the structure free of ownership cycles.
type lineID int

const noLine lineID = -1

// Line is one source line in a Store. The original text is never mutated;
// rewrites set an override, so the effective text can always be diffed
// against the parsed input. A Line belongs to at most one Method.
type Line struct {
	id       lineID
	prev     lineID
	next     lineID
	original string
	override string
	modified bool

	// Number is the 1-based line number in the parsed input, for
	// diagnostics. Lines inserted after parsing carry 0.
	Number int
	// Kind classifies the line's structural role.
	Kind LineKind
	// Method is the owning method, nil for lines outside any method.
	Method *Method

	literals []*StringLiteral
	scanned  bool
}

// Text returns the line's effective text: the override if one has been set,
// else the original text.
func (l *Line) Text() string {
	if l.modified {
		return l.override
	}

	return l.original
}

// Original returns the text the line was parsed with.
func (l *Line) Original() string { return l.original }

// Modified reports whether the line's effective text differs from the input.
func (l *Line) Modified() bool { return l.modified }

// SetText overrides the line's effective text, keeping the original. Literal
// spans computed for the previous text are discarded.
func (l *Line) SetText(text string) {
	l.override = text
	l.modified = true
	l.invalidateLiterals()
}

func (l *Line) invalidateLiterals() {
	l.literals = nil
	l.scanned = false
}

// Store is a mutable, order-preserving sequence of Lines. It exclusively
// owns the link structure; lines live in an arena and are linked by index,
// so splicing relative to a known line is O(1) and never renumbers the rest
// of the file.
type Store struct {
	arena []*Line
	head  lineID
	tail  lineID
	count int
}

// NewStore returns an empty line store.
func NewStore() *Store {
	return &Store{head: noLine, tail: noLine}
}

func (s *Store) alloc(text string, number int) *Line {
	l := &Line{
		id:       lineID(len(s.arena)),
		prev:     noLine,
		next:     noLine,
		original: text,
		Number:   number,
	}
	s.arena = append(s.arena, l)
	s.count++

	return l
}

func (s *Store) line(id lineID) *Line {
	if id == noLine {
		return nil
	}

	return s.arena[id]
}

// Len returns the number of linked lines.
func (s *Store) Len() int { return s.count }

// Head returns the first line, or nil for an empty store.
func (s *Store) Head() *Line { return s.line(s.head) }

// Tail returns the last line, or nil for an empty store.
func (s *Store) Tail() *Line { return s.line(s.tail) }

// Next returns the line after l, or nil at the tail.
func (s *Store) Next(l *Line) *Line { return s.line(l.next) }

// Prev returns the line before l, or nil at the head.
func (s *Store) Prev(l *Line) *Line { return s.line(l.prev) }

// Append allocates a new Line holding text and links it at the tail.
func (s *Store) Append(text string, number int) *Line {
	l := s.alloc(text, number)
	if s.tail == noLine {
		s.head, s.tail = l.id, l.id
		return l
	}

	last := s.line(s.tail)
	last.next = l.id
	l.prev = last.id
	s.tail = l.id

	return l
}

// InsertAfter allocates lines for the given texts and links them immediately
// after at, in order. Inserted lines inherit at's Method, so a mutator can
// inject lines inside a method scope.
func (s *Store) InsertAfter(at *Line, texts ...string) []*Line {
	out := make([]*Line, 0, len(texts))
	cur := at

	for _, text := range texts {
		l := s.alloc(text, 0)
		l.Method = at.Method
		l.prev = cur.id
		l.next = cur.next

		if cur.next != noLine {
			s.line(cur.next).prev = l.id
		} else {
			s.tail = l.id
		}

		cur.next = l.id
		cur = l
		out = append(out, l)
	}

	return out
}

// InsertBefore allocates lines for the given texts and links them
// immediately before at, in order. Inserted lines inherit at's Method.
func (s *Store) InsertBefore(at *Line, texts ...string) []*Line {
	out := make([]*Line, 0, len(texts))
	anchor := at.prev

	for _, text := range texts {
		l := s.alloc(text, 0)
		l.Method = at.Method
		l.prev = anchor
		l.next = at.id

		if anchor != noLine {
			s.line(anchor).next = l.id
		} else {
			s.head = l.id
		}

		at.prev = l.id
		anchor = l.id
		out = append(out, l)
	}

	return out
}

// Remove unlinks l from the store. A line with neither neighbor cannot be
// removed: there is nothing left to re-link, which indicates a caller bug.
func (s *Store) Remove(l *Line) error {
	if l.prev == noLine && l.next == noLine {
		return ErrIsolatedLine
	}

	if l.prev != noLine {
		s.line(l.prev).next = l.next
	} else {
		s.head = l.next
	}

	if l.next != noLine {
		s.line(l.next).prev = l.prev
	} else {
		s.tail = l.prev
	}

	l.prev, l.next = noLine, noLine
	s.count--

	return nil
}

// ReplaceWith substitutes l with freshly allocated lines holding texts. The
// new lines take over l's Method, keeping method membership consistent when
// a mutator splits one statement across several lines.
func (s *Store) ReplaceWith(l *Line, texts ...string) ([]*Line, error) {
	meth := l.Method

	var out []*Line

	switch {
	case l.next != noLine:
		next := s.line(l.next)
		if err := s.Remove(l); err != nil {
			return nil, err
		}

		out = s.InsertBefore(next, texts...)
	case l.prev != noLine:
		prev := s.line(l.prev)
		if err := s.Remove(l); err != nil {
			return nil, err
		}

		out = s.InsertAfter(prev, texts...)
	default:
		return nil, ErrIsolatedLine
	}

	for _, nl := range out {
		nl.Method = meth
	}

	return out, nil
}

// Dump yields the effective text of every line in file order. The sequence
// is lazy and restartable only from the head; without intervening mutation
// two traversals yield identical output.
func (s *Store) Dump() iter.Seq[string] {
	return func(yield func(string) bool) {
		for l := s.Head(); l != nil; l = s.Next(l) {
			if !yield(l.Text()) {
				return
			}
		}
	}
}
