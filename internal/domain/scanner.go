package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "github.com/fogbyte/vbafog/internal/model"
)

// ErrInvalidDeclaration is returned for a Dim statement that mixes more than
// one declared type across the variables sharing it. VBA gives the last type
// to every name; treating that as intended is too error prone, so the
// statement is rejected as ambiguous.
var ErrInvalidDeclaration = errors.New("invalid declaration")

var (
	declRe = regexp.MustCompile(`^\s*Dim\s+(?P<vars>.*)$`)
	varRe  = regexp.MustCompile(`(?P<name>[\w\d]+)(\sAs\s(?P<type>[\w\d]+(\s+\*\s+\d+)?))?`)
	// Signature lines start at column 0: '[Private|Public] Function name(params) [As Type]'.
	methodRe = regexp.MustCompile(`^((?P<mod>Private|Public)\s+)?(?P<kind>Function|Sub)\s+(?P<name>.*)\((?P<params>.*)\)(\s+As\s+(?P<return>.+))?`)
	paramRe  = regexp.MustCompile(`((?P<tname>\S+) As (?P<type>\w+))|(ByVal (?P<bvname>\S+))|(ByRef (?P<brname>\S+))|((?P<name>[\w\d]+))`)
	endRe    = regexp.MustCompile(`^End (Function|Sub)`)
	// A single quote starts a comment that runs to the end of the line.
	commentRe = regexp.MustCompile(`'(.*)`)
)

// ScanOptions controls pre-filtering applied before lines reach the store.
type ScanOptions struct {
	// StripComments removes single-quote comments from every line.
	StripComments bool
	// SkipEmptyLines drops lines that are blank after stripping.
	SkipEmptyLines bool
}

// Scanner classifies raw source lines and builds the Module data model: the
// line store, per-method metadata and line-to-method association. It
// performs structural recognition only; renaming and mutation never parse.
type Scanner struct {
	opts ScanOptions
}

// NewScanner returns a scanner with the given pre-filtering options.
func NewScanner(opts ScanOptions) *Scanner {
	return &Scanner{opts: opts}
}

// Scan consumes raw lines in order and returns the populated Module. Lines
// are trimmed of trailing whitespace; 1-based input line numbers are kept
// for diagnostics even when blank lines are skipped.
func (sc *Scanner) Scan(origin m.Path, lines []string) (*m.Module, error) {
	mod := m.NewModule(origin)

	var open *m.Method

	for i, raw := range lines {
		number := i + 1

		line := raw
		if sc.opts.StripComments {
			line = commentRe.ReplaceAllString(line, "")
		}

		line = strings.TrimRight(line, " \t")

		if sc.opts.SkipEmptyLines && strings.TrimSpace(line) == "" {
			continue
		}

		cl := mod.Store.Append(line, number)

		if match := methodRe.FindStringSubmatch(line); match != nil {
			name := group(methodRe, match, "name")
			if open != nil {
				return nil, fmt.Errorf("line %d: method %q defined before %q was terminated", number, name, open.Name)
			}

			meth := mod.NewMethod(
				name,
				m.MethodKind(group(methodRe, match, "kind")),
				group(methodRe, match, "mod"),
				group(methodRe, match, "return"),
			)

			if params := group(methodRe, match, "params"); params != "" {
				meth.Params = parseParameters(params)
			}

			cl.Kind = m.LineMethodStart
			cl.Method = meth
			meth.Start = cl
			open = meth

			continue
		}

		if endRe.MatchString(line) {
			if open == nil {
				return nil, fmt.Errorf("line %d: method terminated before one was defined", number)
			}

			cl.Kind = m.LineMethodEnd
			cl.Method = open
			open.End = cl
			open = nil

			continue
		}

		if match := declRe.FindStringSubmatch(line); match != nil && open != nil {
			vars, err := parseVariables(group(declRe, match, "vars"))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", number, err)
			}

			open.Vars = append(open.Vars, vars...)
			cl.Method = open

			continue
		}

		if open != nil {
			cl.Method = open
		}
	}

	return mod, nil
}

// parseParameters splits a signature's parameter list into Parameters with
// their passing mode.
func parseParameters(list string) []*m.Parameter {
	var params []*m.Parameter

	for _, match := range paramRe.FindAllStringSubmatch(list, -1) {
		switch {
		case group(paramRe, match, "tname") != "":
			params = append(params, &m.Parameter{
				Var: &m.Variable{
					Name: group(paramRe, match, "tname"),
					Type: group(paramRe, match, "type"),
				},
				Mode: m.ParamTyped,
			})
		case group(paramRe, match, "bvname") != "":
			params = append(params, &m.Parameter{
				Var:  &m.Variable{Name: group(paramRe, match, "bvname")},
				Mode: m.ParamByVal,
			})
		case group(paramRe, match, "brname") != "":
			params = append(params, &m.Parameter{
				Var:  &m.Variable{Name: group(paramRe, match, "brname")},
				Mode: m.ParamByRef,
			})
		case group(paramRe, match, "name") != "":
			params = append(params, &m.Parameter{
				Var:  &m.Variable{Name: group(paramRe, match, "name")},
				Mode: m.ParamPlain,
			})
		}
	}

	return params
}

// parseVariables parses the name list of a Dim statement. A single declared
// type propagates to every name in the statement; more than one distinct
// type fails with ErrInvalidDeclaration.
func parseVariables(list string) ([]*m.Variable, error) {
	var vars []*m.Variable

	types := make(map[string]struct{})

	for _, match := range varRe.FindAllStringSubmatch(list, -1) {
		v := &m.Variable{
			Name: group(varRe, match, "name"),
			Type: group(varRe, match, "type"),
		}
		if v.Type != "" {
			types[v.Type] = struct{}{}
		}

		vars = append(vars, v)
	}

	if len(types) > 1 {
		return nil, fmt.Errorf("%w: %d declared types in %q", ErrInvalidDeclaration, len(types), list)
	}

	if len(types) == 1 && len(vars) > 1 {
		var shared string
		for t := range types {
			shared = t
		}

		for _, v := range vars {
			v.Type = shared
		}
	}

	return vars, nil
}

// group returns a named submatch, or "" when the group did not participate.
func group(re *regexp.Regexp, match []string, name string) string {
	idx := re.SubexpIndex(name)
	if idx < 0 || idx >= len(match) {
		return ""
	}

	return match[idx]
}
