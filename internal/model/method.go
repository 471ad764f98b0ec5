package model

import "strings"

// MethodKind distinguishes the two VBA procedure forms.
type MethodKind string

const (
	// KindFunction is a Function procedure (has a return value).
	KindFunction MethodKind = "Function"
	// KindSub is a Sub procedure.
	KindSub MethodKind = "Sub"
)

// ParamMode governs how a parameter's declaration text is rendered.
type ParamMode int

const (
	// ParamPlain renders the bare name.
	ParamPlain ParamMode = iota
	// ParamTyped renders "name As Type".
	ParamTyped
	// ParamByRef renders "ByRef name".
	ParamByRef
	// ParamByVal renders "ByVal name".
	ParamByVal
)

// Variable is a declared local variable. A rename, once set, permanently
// shadows the original name for all rendering.
type Variable struct {
	Name   string
	Type   string
	Rename string
}

// ExportName returns the rename when set, else the declared name.
func (v *Variable) ExportName() string {
	if v.Rename != "" {
		return v.Rename
	}

	return v.Name
}

// Declaration renders the variable the way it appears in a Dim statement.
func (v *Variable) Declaration() string {
	if v.Type != "" {
		return v.ExportName() + " As " + v.Type
	}

	return v.ExportName()
}

// Parameter wraps a Variable with its passing mode.
type Parameter struct {
	Var  *Variable
	Mode ParamMode
}

// Declaration renders the parameter for a signature's parameter list.
func (p *Parameter) Declaration() string {
	switch p.Mode {
	case ParamByRef:
		return "ByRef " + p.Var.ExportName()
	case ParamByVal:
		return "ByVal " + p.Var.ExportName()
	default:
		return p.Var.Declaration()
	}
}

// Method represents one procedure. Name uniqueness across the module is the
// caller's responsibility; methods live as long as their Module.
type Method struct {
	Name       string
	Rename     string
	Modifier   string // "Private", "Public" or empty
	Kind       MethodKind
	ReturnType string
	Params     []*Parameter
	Vars       []*Variable

	// Start and End point at the signature and terminator lines once the
	// scanner has seen them.
	Start *Line
	End   *Line

	store *Store
}

// ExportName returns the rename when set, else the declared name.
func (m *Method) ExportName() string {
	if m.Rename != "" {
		return m.Rename
	}

	return m.Name
}

// Signature renders the method-start line from structured data: modifier,
// kind, export name, rendered parameter list and optional return type.
func (m *Method) Signature() string {
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, p.Declaration())
	}

	parts := make([]string, 0, 4)
	if m.Modifier != "" {
		parts = append(parts, m.Modifier)
	}

	parts = append(parts, string(m.Kind), m.ExportName()+"("+strings.Join(params, ", ")+")")

	if m.ReturnType != "" {
		parts = append(parts, "As "+m.ReturnType)
	}

	return strings.Join(parts, " ")
}

// SetRename records the new name and re-renders the signature line, which is
// structured text rather than a substitution target.
func (m *Method) SetRename(name string) {
	m.Rename = name
	m.RefreshSignature()
}

// RefreshSignature rewrites the signature line from structured data. Called
// after any rename that changes how the parameter list or name renders.
func (m *Method) RefreshSignature() {
	if m.Start != nil {
		m.Start.SetText(m.Signature())
	}
}

// Lines returns every store line owned by the method, in file order.
// Membership is recomputed by walking the store on each call, so it stays
// consistent after edits.
func (m *Method) Lines() []*Line {
	var out []*Line

	for l := m.store.Head(); l != nil; l = m.store.Next(l) {
		if l.Method == m {
			out = append(out, l)
		}
	}

	return out
}

// Body returns the method's interior lines: everything it owns except the
// signature and terminator lines.
func (m *Method) Body() []*Line {
	var out []*Line

	for _, l := range m.Lines() {
		if l.Kind == LineMethodStart || l.Kind == LineMethodEnd {
			continue
		}

		out = append(out, l)
	}

	return out
}

// Module is one parsed source file: its line store plus the methods the
// scanner recognized.
type Module struct {
	Origin  Path
	Store   *Store
	Methods []*Method
}

// NewModule returns an empty module for the given origin path.
func NewModule(origin Path) *Module {
	return &Module{Origin: origin, Store: NewStore()}
}

// NewMethod constructs a method bound to the module's store and registers
// it.
func (f *Module) NewMethod(name string, kind MethodKind, modifier, returnType string) *Method {
	m := &Method{
		Name:       name,
		Kind:       kind,
		Modifier:   modifier,
		ReturnType: returnType,
		store:      f.Store,
	}
	f.Methods = append(f.Methods, m)

	return m
}

// HasMethod reports whether a method with the given declared name exists.
func (f *Module) HasMethod(name string) bool {
	for _, m := range f.Methods {
		if m.Name == name {
			return true
		}
	}

	return false
}
