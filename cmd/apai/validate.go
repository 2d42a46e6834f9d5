package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FabioGuin/open-apia/pkg/apai"
	"github.com/FabioGuin/open-apia/pkg/apai/validator"
	"github.com/FabioGuin/open-apia/pkg/apai/watcher"
	"github.com/FabioGuin/open-apia/pkg/cli"
)

var validateFlags struct {
	file      string
	format    string
	quiet     bool
	strict    bool
	noInherit bool
	watch     bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a specification file",
	Long: `Validate an APAI specification file against the schema.

The validate command loads the specification, resolves its inheritance
chain ('inherits' declarations, merged bottom-up with the local document
winning), validates every section, and checks cross-references between
sections. All violations are reported in one run; the command exits
non-zero if any error-severity diagnostic was found.

Examples:
  # Validate a specification
  apai validate -f spec.yaml

  # JSON output for CI/CD
  apai validate -f spec.yaml --format json

  # Skip inheritance resolution
  apai validate -f spec.yaml --no-inherit

  # Re-validate whenever the spec or its ancestors change
  apai validate -f spec.yaml --watch`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "specification file to validate")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().BoolVarP(&validateFlags.quiet, "quiet", "q", false, "only output errors (no warnings)")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateFlags.noInherit, "no-inherit", false, "skip inheritance resolution")
	validateCmd.Flags().BoolVar(&validateFlags.watch, "watch", false, "re-validate on file changes")
	_ = validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	if validateFlags.watch {
		return watchAndValidate(logger)
	}

	result, err := validateOnce(logger)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	if err := printResult(result); err != nil {
		return cli.NewCommandError("validate", err)
	}

	if !resultPasses(result) {
		return cli.NewCommandError("validate", fmt.Errorf("validation failed"))
	}
	return nil
}

func validateOnce(logger *slog.Logger) (*validator.Result, error) {
	if validateFlags.noInherit {
		return apai.ValidateFileStandalone(validateFlags.file)
	}
	return apai.ValidateFileWithLogger(validateFlags.file, logger)
}

// watchAndValidate validates once, then re-validates on every change to
// the watched directories until interrupted. Watch mode never fails on
// invalid specifications; it keeps reporting.
func watchAndValidate(logger *slog.Logger) error {
	revalidate := func() error {
		result, err := validateOnce(logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			return nil
		}
		return printResult(result)
	}

	if err := revalidate(); err != nil {
		return cli.NewCommandError("validate", err)
	}

	config := watcher.DefaultConfig()
	config.Paths = watchDirs(validateFlags.file)

	fw, err := watcher.New(config, logger)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	ctx := cli.SetupSignalHandler()
	if err := fw.Watch(ctx, revalidate); err != nil {
		return cli.NewCommandError("validate", err)
	}
	return nil
}

// watchDirs returns the directories watch mode must cover for file: the
// root document's directory plus the directory of every ancestor its
// inheritance chain loads. Ancestors commonly live in parent or sibling
// directories, which a walk rooted at the file's own directory would
// never reach.
func watchDirs(file string) []string {
	root := filepath.Dir(file)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	dirs := []string{root}
	seen := map[string]bool{root: true}

	files, err := apai.SpecFiles(file)
	if err != nil {
		return dirs
	}
	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func printResult(result *validator.Result) error {
	if validateFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, result)
	}
	printTextResult(os.Stdout, result)
	return nil
}

func printTextResult(w io.Writer, result *validator.Result) {
	fmt.Fprintf(w, "Validating %s...\n", result.File)

	for _, msg := range result.Errors {
		fmt.Fprintf(w, "✗ Error: %s\n", msg)
	}
	if !validateFlags.quiet {
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "⚠  Warning: %s\n", msg)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))

	switch {
	case len(result.Errors) == 0 && len(result.Warnings) == 0:
		fmt.Fprintln(w, "✓ Validation passed with no issues")
	case len(result.Errors) > 0:
	case validateFlags.strict:
		fmt.Fprintln(w, "✗ Validation failed: warnings treated as errors (strict mode)")
	default:
		fmt.Fprintln(w, "✓ Validation passed with warnings")
	}
}

func resultPasses(result *validator.Result) bool {
	if !result.Valid {
		return false
	}
	if validateFlags.strict && len(result.Warnings) > 0 {
		return false
	}
	return true
}
