package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fiximg/internal/processor"
)

const defaultDir = "./Ori"

var rootCmd = &cobra.Command{
	Use:   "fiximg [directory]",
	Short: "fiximg 🖼 - detect true image formats and fix file extensions",
	Long:  "fiximg 🖼 inspects image file headers and renames files whose extension disagrees with their actual format.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(dirArg(args), processor.ModeFix)
	},
}

func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultDir
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
