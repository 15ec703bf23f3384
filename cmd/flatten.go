package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardhaus/checklister/internal/config"
	"github.com/cardhaus/checklister/internal/dataset"
)

// flattenCmd represents the flatten command
var flattenCmd = &cobra.Command{
	Use:   "flatten [library-dir]",
	Short: "Flatten a checklist library into a tabular dataset",
	Long: `Flatten walks a library laid out as <category>/<year>/<release>.json,
flattens every card into one tabular record and writes a Parquet dataset plus
a JSON summary of per-category card counts.

Malformed release documents are skipped with an error; the rest of the
library is still processed. Without an argument the configured library is
used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryDir := config.GetLibraryPath()
		if len(args) == 1 {
			libraryDir = args[0]
		}

		if _, err := os.Stat(libraryDir); os.IsNotExist(err) {
			return fmt.Errorf("library directory not found: %s", libraryDir)
		}

		outputDir, _ := cmd.Flags().GetString("output")

		f := dataset.New(logger)
		records, err := f.Collect(libraryDir)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No records found to process.")
			return nil
		}

		datasetPath := filepath.Join(outputDir, "dataset.parquet")
		if err := dataset.WriteParquet(datasetPath, records); err != nil {
			return err
		}

		countsPath := filepath.Join(outputDir, "card_counts.json")
		counts, err := dataset.WriteCounts(countsPath, records)
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s records -> %s\n", color.CyanString("%d", len(records)), datasetPath)
		for _, category := range dataset.CountedCategories {
			fmt.Printf("  %s %s\n", color.CyanString("%-11s", category+":"), color.HiWhiteString("%d", counts[category]))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(flattenCmd)

	flattenCmd.Flags().StringP("output", "o", "output", "Directory for the dataset and counts files")
}
