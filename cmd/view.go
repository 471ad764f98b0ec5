package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fogbyte/vbafog/internal/domain"
	m "github.com/fogbyte/vbafog/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated audit reports",
		Long:  "View the rename and mutation audits saved by an earlier obfuscation run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reports := cfg.Reports
			if reportsOutputDirFlag != "" {
				reports = reportsOutputDirFlag
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(reports)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
