package domain

import (
	"log/slog"
	"strings"

	m "github.com/fogbyte/vbafog/internal/model"
)

// Rewriter applies identifier renames to a module's lines using
// exact-boundary textual substitution, and records every change for the
// audit trail. The audit is for inspection; correctness never depends on it.
type Rewriter struct {
	log     *slog.Logger
	records []m.RenameRecord
}

// NewRewriter returns a rewriter that logs changes through log.
func NewRewriter(log *slog.Logger) *Rewriter {
	if log == nil {
		log = slog.Default()
	}

	return &Rewriter{log: log}
}

// Records returns the changes applied so far, in application order.
func (rw *Rewriter) Records() []m.RenameRecord { return rw.records }

// RenameVariable gives v a fresh name from gen and rewrites every use inside
// the method's interior lines. The signature line is re-rendered from
// structured data, never by substitution.
func (rw *Rewriter) RenameVariable(gen *NameGenerator, meth *m.Method, v *m.Variable, length int, alphabet string) error {
	name, err := gen.Generate(length, alphabet)
	if err != nil {
		return err
	}

	v.Rename = name
	rw.RenameIdentifier(m.IdentVariable, v.Name, name, meth.Body())

	return nil
}

// RenameParameter gives p a fresh name from gen, rewrites every use inside
// the method's interior lines and re-renders the signature so the parameter
// list picks up the new name.
func (rw *Rewriter) RenameParameter(gen *NameGenerator, meth *m.Method, p *m.Parameter, length int, alphabet string) error {
	name, err := gen.Generate(length, alphabet)
	if err != nil {
		return err
	}

	p.Var.Rename = name
	rw.RenameIdentifier(m.IdentParameter, p.Var.Name, name, meth.Body())
	meth.RefreshSignature()

	return nil
}

// RenameMethod gives meth a fresh name from gen and rewrites every call site
// and bare reference across the whole file.
func (rw *Rewriter) RenameMethod(gen *NameGenerator, mod *m.Module, meth *m.Method, length int, alphabet string) error {
	name, err := gen.Generate(length, alphabet)
	if err != nil {
		return err
	}

	rw.ApplyMethodRename(mod, meth, name)

	return nil
}

// ApplyMethodRename performs a whole-file method rename to an explicit new
// name. The method's own signature line is regenerated from structured data;
// every other line is rewritten through two textual forms:
//
//   - call form: the old name immediately followed by '(', preceded by
//     whitespace or start of line;
//   - bare reference form: the old name as the first token of a line,
//     followed by whitespace and a continuation (assignment target or
//     no-parenthesis invocation).
//
// The bare-reference form is a heuristic: a line that merely starts with the
// same token is rewritten too. That matches the established output of this
// rule; stricter disambiguation would need statement context a line-local
// model cannot see.
func (rw *Rewriter) ApplyMethodRename(mod *m.Module, meth *m.Method, name string) {
	old := meth.Name
	meth.SetRename(name)

	for l := mod.Store.Head(); l != nil; l = mod.Store.Next(l) {
		if l == meth.Start {
			continue
		}

		text := l.Text()

		replaced, calls := rewriteCalls(text, old, name)
		replaced, refs := rewriteBareRef(replaced, old, name)

		if calls+refs == 0 {
			continue
		}

		l.SetText(replaced)
		rw.audit(m.IdentMethod, old, name, l, text, replaced)
	}
}

// RenameIdentifier applies old -> new across the given scope using
// exact-boundary matching. Lines without an exact-boundary occurrence are
// left untouched, so re-running with an unchanged name set is a no-op.
func (rw *Rewriter) RenameIdentifier(class m.IdentClass, old, name string, scope []*m.Line) {
	for _, line := range scope {
		text := line.Text()

		replaced, n := replaceExact(text, old, name)
		if n == 0 {
			continue
		}

		line.SetText(replaced)
		rw.audit(class, old, name, line, text, replaced)
	}
}

func (rw *Rewriter) audit(class m.IdentClass, old, name string, line *m.Line, before, after string) {
	rw.records = append(rw.records, m.RenameRecord{
		Class:   class,
		OldName: old,
		NewName: name,
		Line:    line.Number,
		OldText: before,
		NewText: after,
	})

	rw.log.Debug("identifier rewritten",
		"class", string(class),
		"old", old,
		"new", name,
		"line", line.Number,
		"before", strings.TrimSpace(before),
		"after", strings.TrimSpace(after))
}

// isIdentChar reports whether c can be part of an identifier. The boundary
// rule hinges on this: a candidate match only counts when neither neighbor
// is an identifier character.
func isIdentChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// replaceExact substitutes every exact-boundary occurrence of old in text.
// Delimiter characters around a match are preserved verbatim; an absent
// neighbor (start or end of line) satisfies the boundary.
func replaceExact(text, old, name string) (string, int) {
	if old == "" || !strings.Contains(text, old) {
		return text, 0
	}

	var sb strings.Builder

	count := 0
	i := 0

	for i < len(text) {
		j := strings.Index(text[i:], old)
		if j < 0 {
			break
		}

		j += i
		end := j + len(old)

		leftOK := j == 0 || !isIdentChar(text[j-1])
		rightOK := end == len(text) || !isIdentChar(text[end])

		if leftOK && rightOK {
			sb.WriteString(text[i:j])
			sb.WriteString(name)
			count++
			i = end

			continue
		}

		sb.WriteString(text[i : j+1])
		i = j + 1
	}

	if count == 0 {
		return text, 0
	}

	sb.WriteString(text[i:])

	return sb.String(), count
}

// rewriteCalls replaces call-form occurrences: old immediately followed by
// '(' and preceded by whitespace or start of line.
func rewriteCalls(text, old, name string) (string, int) {
	needle := old + "("
	if !strings.Contains(text, needle) {
		return text, 0
	}

	var sb strings.Builder

	count := 0
	i := 0

	for i < len(text) {
		j := strings.Index(text[i:], needle)
		if j < 0 {
			break
		}

		j += i

		if j == 0 || isSpace(text[j-1]) {
			sb.WriteString(text[i:j])
			sb.WriteString(name)
			sb.WriteByte('(')
			count++
			i = j + len(needle)

			continue
		}

		sb.WriteString(text[i : j+1])
		i = j + 1
	}

	if count == 0 {
		return text, 0
	}

	sb.WriteString(text[i:])

	return sb.String(), count
}

// rewriteBareRef replaces a bare-reference occurrence: old as the first
// token of the line (after only whitespace), followed by whitespace and the
// rest of the statement.
func rewriteBareRef(text, old, name string) (string, int) {
	trimmed := strings.TrimLeft(text, " \t")
	if !strings.HasPrefix(trimmed, old) {
		return text, 0
	}

	rest := trimmed[len(old):]
	if rest == "" || !isSpace(rest[0]) {
		return text, 0
	}

	indent := text[:len(text)-len(trimmed)]

	return indent + name + rest, 1
}
