package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioGuin/open-apia/pkg/apai"
	"github.com/FabioGuin/open-apia/pkg/apai/loader"
	"github.com/FabioGuin/open-apia/pkg/cli"
)

var mergeFlags struct {
	output string
	format string
}

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge specifications into one output document",
	Long: `Merge multiple specification files into a single document.

Files are merged left to right with the deep-merge policy: nested
mappings combine key-wise, everything else is overridden by the later
file. 'inherits' declarations are ignored; the file list is explicit.

Examples:
  apai merge base.yaml team.yaml -o merged.yaml
  apai merge base.yaml override.json -o merged.json --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeFlags.output, "output", "o", "", "output file path")
	mergeCmd.Flags().StringVar(&mergeFlags.format, "format", "", "output format: yaml, json (default: from output extension)")
	_ = mergeCmd.MarkFlagRequired("output")
}

func runMerge(cmd *cobra.Command, args []string) error {
	merged, err := apai.MergeFiles(args)
	if err != nil {
		return cli.NewCommandError("merge", err)
	}

	if err := loader.WriteFile(mergeFlags.output, merged, loader.Format(mergeFlags.format)); err != nil {
		return cli.NewCommandError("merge", err)
	}

	fmt.Printf("Merged %d specification(s) into %s\n", len(args), mergeFlags.output)
	return nil
}
