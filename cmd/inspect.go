package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fogbyte/vbafog/internal/domain"
)

var inspectStripCommentsFlag bool
var inspectStripEmptyLinesFlag bool

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [files...]",
		Short: "List the methods found in VBA source files",
		Long: "List every method recognized in the given files together with its " +
			"parameter, variable, and string literal counts, without rewriting anything.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Inspect(domain.InspectArgs{
				Paths: parsePaths(args),
				Scan: domain.ScanOptions{
					StripComments:  inspectStripCommentsFlag,
					SkipEmptyLines: inspectStripEmptyLinesFlag,
				},
			})
		},
	}

	cmd.Flags().BoolVar(&inspectStripCommentsFlag, "strip-comments", false, "drop comments before scanning")
	cmd.Flags().BoolVar(&inspectStripEmptyLinesFlag, "strip-empty-lines", false, "drop blank lines before scanning")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
