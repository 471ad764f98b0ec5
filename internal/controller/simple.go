package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/fogbyte/vbafog/internal/model"
)

// SimpleUI implements UI using cobra Command's output as plain text tables.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints one row per rewritten file plus totals.
func (s *SimpleUI) DisplaySummary(summaries []FileSummary) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Output", "Methods", "Renames", "Mutated Strings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	totalRenames := 0
	totalMutations := 0

	for _, summary := range summaries {
		table.Append([]string{
			string(summary.Origin),
			string(summary.Output),
			fmt.Sprintf("%d", summary.Methods),
			fmt.Sprintf("%d", summary.Renames),
			fmt.Sprintf("%d", summary.MutatedLiterals),
		})

		totalRenames += summary.Renames
		totalMutations += summary.MutatedLiterals
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summaries)),
		"",
		"",
		fmt.Sprintf("%d", totalRenames),
		fmt.Sprintf("%d", totalMutations),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayInspection prints one row per scanned method.
func (s *SimpleUI) DisplayInspection(rows []InspectionRow) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Method", "Kind", "Params", "Vars", "Strings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, row := range rows {
		table.Append([]string{
			string(row.Origin),
			row.Method,
			row.Kind,
			fmt.Sprintf("%d", row.Params),
			fmt.Sprintf("%d", row.Vars),
			fmt.Sprintf("%d", row.Literals),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayAudits prints the saved change records file by file.
func (s *SimpleUI) DisplayAudits(audits []m.Audit) error {
	for _, audit := range audits {
		s.printf("%s -> %s\n", audit.Origin, audit.Output)

		var buf bytes.Buffer

		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"Kind", "Line", "Before", "After"})
		table.SetBorder(false)
		table.SetCenterSeparator("")

		for _, rec := range audit.Renames {
			table.Append([]string{
				string(rec.Class),
				fmt.Sprintf("%d", rec.Line),
				rec.OldName,
				rec.NewName,
			})
		}

		for _, rec := range audit.Mutations {
			table.Append([]string{
				rec.Strategy,
				fmt.Sprintf("%d", rec.Line),
				rec.Original,
				rec.Replacement,
			})
		}

		table.Render()
		s.printf("%s\n", buf.String())
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
