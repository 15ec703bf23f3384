package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardhaus/checklister/internal/checklist"
	"github.com/cardhaus/checklister/internal/config"
	"github.com/cardhaus/checklister/internal/normalizer"
	"github.com/cardhaus/checklister/internal/release"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize [input.csv] [output.json]",
	Short: "Normalize a checklist CSV into a release document",
	Long: `Normalize reads one vendor checklist CSV export and produces the canonical
release document for it: rows are grouped into base sets and parallels, split
checklists are merged, print runs and attributes are inferred.

The run is all-or-nothing: a malformed CSV, missing required columns or an
empty checklist abort without writing any output.

When the output path is omitted, the document is filed into the checklist
library under the configured default category, as
<library>/<default_category>/<year>/<year>-<program>.json.

Examples:
  checklister normalize 2021-prizm.csv baseball/2021/2021-Prizm.json
  checklister normalize 2021-prizm.csv`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		// Check if path exists
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("checklist file not found: %s", inputPath)
		}

		rows, err := checklist.ReadFile(inputPath)
		if err != nil {
			return err
		}

		n := normalizer.New(logger)
		rel, err := n.Normalize(rows)
		if err != nil {
			return fmt.Errorf("error normalizing checklist: %w", err)
		}

		var outputPath string
		if len(args) == 2 {
			outputPath = args[1]
		} else {
			outputPath, err = libraryOutputPath(rows[0])
			if err != nil {
				return err
			}
		}

		if err := release.Write(outputPath, rel); err != nil {
			return err
		}

		fmt.Printf("✅ %s: %s sets, %s cards -> %s\n",
			color.HiWhiteString(rel.Name),
			color.CyanString("%d", len(rel.Sets)),
			color.CyanString("%d", rel.CardCount()),
			outputPath)

		if len(n.Warnings) > 0 {
			fmt.Printf("%s\n", color.YellowString("%d warning(s); verify the source data", len(n.Warnings)))
		}

		return nil
	},
}

// libraryOutputPath files a document into the checklist library using the
// configured default category and the release metadata from the first row,
// matching the <category>/<year>/<year>-<program>.json layout the flattener
// reads.
func libraryOutputPath(first checklist.Row) (string, error) {
	category, err := config.GetDefaultCategory()
	if err != nil {
		return "", fmt.Errorf("error loading config: %w", err)
	}
	if category == "" {
		return "", fmt.Errorf("no output path given and no default_category configured; pass an output path or run 'checklister library set-category'")
	}

	year := strings.TrimSpace(first.Year)
	program := strings.ReplaceAll(strings.TrimSpace(first.Program), " ", "-")
	if year == "" || program == "" {
		return "", fmt.Errorf("cannot derive output path: checklist has no year or program metadata")
	}

	filename := fmt.Sprintf("%s-%s.json", year, program)
	return filepath.Join(config.GetLibraryPath(), category, year, filename), nil
}

func init() {
	RootCmd.AddCommand(normalizeCmd)
}
