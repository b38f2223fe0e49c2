package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gfcampos/welllog/internal/core"
	"github.com/gfcampos/welllog/internal/las"
)

var las2csvCmd = &cobra.Command{
	Use:   "las2csv <file.las> [file.las...]",
	Short: "Convert LAS files to CSV",
	Long: `Convert one or more LAS files to CSV.

Each output file is written next to its input with the extension swapped
to .csv, or into the directory given by --out-dir. Null values (-999.25)
become empty CSV cells.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out-dir")

		svc := core.NewService(las.NewLibrary(), 0)
		result := convertFiles(args, outDir, ".csv", func(name string, raw []byte) ([]byte, error) {
			out, _, err := svc.ConvertLASToCSV(name, raw)
			return out, err
		}, os.Stdout)

		if result.HasFailures() {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	las2csvCmd.Flags().StringP("out-dir", "o", "", "directory for converted files (default: next to each input)")
	rootCmd.AddCommand(las2csvCmd)
}
