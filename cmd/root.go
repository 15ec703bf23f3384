package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "checklister",
	Short: "Tool for normalizing and exporting trading card checklists",
	Long: `Checklister is a command-line tool for turning vendor trading card
checklist CSV exports into canonical release documents, and for flattening a
library of such documents into a tabular dataset.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

var verbose bool

// logger is shared by all commands; warnings and skipped-file errors from
// the normalizer and flattener go through it.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
