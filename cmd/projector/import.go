package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"value-projector/internal/dispatch"
	"value-projector/internal/layout"
)

func newImportCmd(a *app) *cobra.Command {
	var layoutPath, inputPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Read CSV back into YAML values",
		Long: `Reads CSV with a header, reconstructs every cell through the inverse of
its column's binding and writes the rows as YAML to stdout. Rows that fail are
skipped and reported on stderr.`,
		Example: `  projector import --layout layout.yaml --input rows.csv`,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, err := a.loadLayout(layoutPath)
			if err != nil {
				return err
			}

			bound, err := layout.Bind(l, dispatch.Samples(), a.logger)
			if err != nil {
				return err
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input %s: %w", inputPath, err)
			}
			defer f.Close()

			rows, diags, err := bound.Import(f)

			diags.Merge(bound.Diagnostics())
			for _, d := range diags.All() {
				fmt.Fprintf(a.stderr, "%s: %s\n", d.Severity, d)
			}

			if err != nil {
				return err
			}

			if a.v.GetBool("strict") {
				if err := diags.Err(); err != nil {
					return err
				}
			}

			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)

			if err := enc.Encode(rows); err != nil {
				return err
			}

			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV file to import")
	cmd.Flags().Bool("strict", false, "fail when any row is skipped")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("input")
	_ = a.v.BindPFlag("strict", cmd.Flags().Lookup("strict"))

	return cmd
}
