// Package controller provides the user-facing output layer for vbafog.
package controller

import (
	m "github.com/fogbyte/vbafog/internal/model"
)

// FileSummary aggregates what happened to one rewritten input file.
type FileSummary struct {
	Origin          m.Path
	Output          m.Path
	Methods         int
	Renames         int
	MutatedLiterals int
}

// InspectionRow describes one method for the inspect listing.
type InspectionRow struct {
	Origin   m.Path
	Method   string
	Kind     string
	Params   int
	Vars     int
	Literals int
}

// UI defines the interface for displaying results. Implementations can use
// different output methods (plain text, TUI).
type UI interface {
	// DisplaySummary shows the per-file outcome of an obfuscation run.
	DisplaySummary(summaries []FileSummary) error
	// DisplayInspection shows the per-method listing of scanned inputs.
	DisplayInspection(rows []InspectionRow) error
	// DisplayAudits shows previously saved rewrite audits.
	DisplayAudits(audits []m.Audit) error
}
