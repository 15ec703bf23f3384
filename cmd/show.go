package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardhaus/checklister/internal/release"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [release.json]",
	Short: "Display a summary of a release document",
	Long: `Show prints a human readable summary of a release document: the release
metadata and, per set, its card count, print run and parallels.

Examples:
  checklister show baseball/2021/2021-Prizm.json
  checklister show --sets baseball/2021/2021-Prizm.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("release file not found: %s", path)
		}

		rel, err := release.Load(path)
		if err != nil {
			return fmt.Errorf("error loading release: %v", err)
		}

		setsOnly, _ := cmd.Flags().GetBool("sets")
		displayRelease(rel, setsOnly)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("sets", "s", false, "List set names only")
}

// displayRelease prints the release summary to stdout
func displayRelease(rel *release.Release, setsOnly bool) {
	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	if !setsOnly {
		fmt.Println()
		fmt.Println("  " + color.CyanString("Release: ") + color.HiWhiteString(rel.Name))
		fmt.Println("  " + color.CyanString("Version: ") + color.HiWhiteString(rel.Version))
		fmt.Println("  " + color.CyanString("ID:      ") + color.HiWhiteString(rel.UniqueID))
		fmt.Println("  " + color.CyanString("Sets:    ") + color.HiWhiteString("%d", len(rel.Sets)))
		fmt.Println("  " + color.CyanString("Cards:   ") + color.HiWhiteString("%d", rel.CardCount()))
		fmt.Println()
	}

	for _, s := range rel.Sets {
		line := color.HiWhiteString(s.Name)
		if s.NumberedTo > 0 {
			line += color.YellowString(" /%d", s.NumberedTo)
		}
		fmt.Printf("  %s (%d cards)\n", line, len(s.Cards))

		if setsOnly {
			continue
		}

		if len(s.Parallels) > 0 {
			names := make([]string, 0, len(s.Parallels))
			for _, p := range s.Parallels {
				if p.NumberedTo > 0 {
					names = append(names, fmt.Sprintf("%s /%d", p.Name, p.NumberedTo))
				} else {
					names = append(names, p.Name)
				}
			}
			for _, l := range wrapText(strings.Join(names, ", "), width-14) {
				fmt.Printf("    %s %s\n", color.CyanString("parallels:"), l)
			}
		}

		noted := 0
		for _, c := range s.Cards {
			if c.Note != "" {
				noted++
			}
		}
		if noted > 0 {
			fmt.Printf("    %s %d card(s) with notes\n", color.CyanString("notes:    "), noted)
		}
	}
	fmt.Println()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
