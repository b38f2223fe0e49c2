package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gfcampos/welllog/internal/core"
	"github.com/gfcampos/welllog/internal/las"
)

var csv2lasCmd = &cobra.Command{
	Use:   "csv2las <file.csv> [file.csv...]",
	Short: "Convert CSV files to LAS",
	Long: `Convert one or more CSV files to LAS 2.0.

The depth column is chosen by name (DEPTH, MD, TVD, DEPT, PROFUNDIDADE,
PROF, case-insensitive); if none matches, the first column is used. Well
metadata flags populate the ~Well Information section; empty flags are
omitted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out-dir")

		meta := core.WellMetadata{}
		meta.Well, _ = cmd.Flags().GetString("well")
		meta.Field, _ = cmd.Flags().GetString("field")
		meta.Company, _ = cmd.Flags().GetString("company")
		meta.Date, _ = cmd.Flags().GetString("date")

		depthUnit, _ := cmd.Flags().GetString("depth-unit")
		if depthUnit == "" {
			depthUnit = viper.GetString("depth_unit")
		}

		svc := core.NewService(las.NewLibrary(), 0)
		result := convertFiles(args, outDir, ".las", func(name string, raw []byte) ([]byte, error) {
			out, _, err := svc.ConvertCSVToLAS(name, raw, meta, depthUnit)
			return out, err
		}, os.Stdout)

		if result.HasFailures() {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	csv2lasCmd.Flags().StringP("out-dir", "o", "", "directory for converted files (default: next to each input)")
	csv2lasCmd.Flags().String("well", "", "well name for the ~Well section")
	csv2lasCmd.Flags().String("field", "", "field name for the ~Well section")
	csv2lasCmd.Flags().String("company", "", "company name for the ~Well section")
	csv2lasCmd.Flags().String("date", "", "log date for the ~Well section")
	csv2lasCmd.Flags().String("depth-unit", "", "unit for the depth curve (default from config: m)")
	rootCmd.AddCommand(csv2lasCmd)
}
