package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gfcampos/welllog/internal/core"
	"github.com/gfcampos/welllog/internal/las"
)

var plotCmd = &cobra.Command{
	Use:   "plot <file.las|file.csv>",
	Short: "Build a depth-indexed curve chart as a Plotly figure",
	Long: `Parse a LAS or CSV file and emit a Plotly figure specification as JSON.

Known curves (GR, RHOB, NPHI, RT, DT, CALI, SP) are plotted against the
resolved depth column with the depth axis reversed. When no known curve is
present, all non-depth columns are plotted instead. The JSON can be
rendered with any Plotly runtime.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		svc := core.NewService(las.NewLibrary(), 0)
		spec, err := svc.PlotFile(args[0], raw)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}

		if outPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote chart: %s\n", outPath)
		return nil
	},
}

func init() {
	plotCmd.Flags().StringP("out", "o", "", "write the figure JSON to a file instead of stdout")
	rootCmd.AddCommand(plotCmd)
}
