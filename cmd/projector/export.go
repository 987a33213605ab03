package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"value-projector/internal/dispatch"
	"value-projector/internal/layout"
	"value-projector/sample"
)

func newExportCmd(a *app) *cobra.Command {
	var layoutPath, inputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write YAML values as CSV",
		Long: `Reads a YAML list of rows, each mapping column names to sample values
(SampleA, SampleB, {Other: text} or null for optional columns), and writes
them as CSV to stdout.`,
		Example: `  projector export --layout layout.yaml --input values.yaml
  projector export --layout layout.yaml --input values.yaml --locale ja-JP`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.loadLayout(layoutPath)
			if err != nil {
				return err
			}

			bound, err := layout.Bind(l, dispatch.Samples(), a.logger)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read input %s: %w", inputPath, err)
			}

			var rows []layout.Row[sample.Value]
			if err := yaml.Unmarshal(data, &rows); err != nil {
				return fmt.Errorf("failed to parse input YAML: %w", err)
			}

			a.logger.Debug("exporting", "rows", len(rows), "profile", l.Profile)

			return bound.Export(cmd.Context(), a.stdout, rows, a.v.GetInt("workers"))
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML file with the rows to export")
	cmd.Flags().Int("workers", 0, "rows projected in parallel (0 uses GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("input")
	_ = a.v.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	return cmd
}
