package cmd

import (
	"github.com/spf13/cobra"

	"fiximg/internal/processor"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Report extension mismatches without renaming anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(dirArg(args), processor.ModeScan)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
