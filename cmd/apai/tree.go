package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FabioGuin/open-apia/pkg/apai/document"
	"github.com/FabioGuin/open-apia/pkg/apai/loader"
	"github.com/FabioGuin/open-apia/pkg/cli"
)

var treeFlags struct {
	file string
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the inheritance hierarchy of a specification",
	Long: `Print the inheritance hierarchy declared by a specification.

The tree command follows 'inherits' declarations recursively and prints
each document's title, hierarchy level and scope (from
info.ai_metadata.hierarchy_info), and path. Unreadable ancestors are
reported in place without aborting the rest of the tree.

Examples:
  apai tree -f team-spec.yaml`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeFlags.file, "file", "f", "", "specification file")
	_ = treeCmd.MarkFlagRequired("file")
}

func runTree(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(treeFlags.file)
	if err != nil {
		return cli.NewCommandError("tree", err)
	}

	printHierarchy(loader.New(), path, 0, make(map[string]bool))
	return nil
}

// printHierarchy prints one document and recurses into its ancestors.
// The visited set guards the printout against inheritance cycles.
func printHierarchy(l *loader.Loader, path string, level int, visited map[string]bool) {
	indent := strings.Repeat("  ", level)

	if visited[path] {
		fmt.Printf("%s↺ %s (cycle)\n", indent, path)
		return
	}
	visited[path] = true
	defer delete(visited, path)

	doc, err := l.Load(path)
	if err != nil {
		fmt.Printf("%s✗ Error loading %s: %v\n", indent, path, err)
		return
	}

	title := "Unknown"
	hierarchyLevel := "unknown"
	scope := "unknown"

	if info, ok := doc.Get("info"); ok {
		if t, ok := info.StringField("title"); ok {
			title = t
		}
		if h := hierarchyInfo(info); h != nil {
			if v, ok := h.StringField("level"); ok {
				hierarchyLevel = v
			}
			if v, ok := h.StringField("scope"); ok {
				scope = v
			}
		}
	}

	fmt.Printf("%s• %s (%s/%s)\n", indent, title, hierarchyLevel, scope)
	fmt.Printf("%s  path: %s\n", indent, path)

	inherits, ok := doc.Get("inherits")
	if !ok || !inherits.IsSequence() {
		return
	}
	dir := filepath.Dir(path)
	for _, item := range inherits.Items {
		declared, ok := item.AsString()
		if !ok {
			continue
		}
		resolved := declared
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		printHierarchy(l, resolved, level+1, visited)
	}
}

// hierarchyInfo returns info.ai_metadata.hierarchy_info, or nil.
func hierarchyInfo(info *document.Document) *document.Document {
	metadata, ok := info.Get("ai_metadata")
	if !ok {
		return nil
	}
	h, ok := metadata.Get("hierarchy_info")
	if !ok || !h.IsMapping() {
		return nil
	}
	return h
}
