// Package summary renders the post-run report: a tree of the files that
// went into the document with their emitted fragment counts.
package summary

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// FileReport is one written file: its display path (relative to the first
// input directory when possible) and the fragments it contributed.
type FileReport struct {
	Path      string
	Fragments int
}

type treeNode struct {
	name     string
	children map[string]*treeNode
	report   *FileReport
}

func buildTree(reports []FileReport) *treeNode {
	root := &treeNode{name: ".", children: make(map[string]*treeNode)}
	sorted := make([]FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for i := range sorted {
		report := &sorted[i]
		parts := strings.Split(filepath.ToSlash(report.Path), "/")
		current := root
		for j, part := range parts {
			if part == "" {
				continue
			}
			child, exists := current.children[part]
			if !exists {
				child = &treeNode{name: part, children: make(map[string]*treeNode)}
				current.children[part] = child
			}
			if j == len(parts)-1 {
				child.report = report
			}
			current = child
		}
	}
	return root
}

func sortedChildNames(node *treeNode) []string {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printTree(w io.Writer, node *treeNode, indent string, isLast bool, name *color.Color, count *color.Color) {
	if node.name != "." {
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		detail := ""
		if node.report != nil {
			detail = count.Sprintf(" (%d fragments)", node.report.Fragments)
		}
		fmt.Fprintf(w, "%s%s%s%s\n", indent, connector, name.Sprint(node.name), detail)
		if isLast {
			indent += "    "
		} else {
			indent += "│   "
		}
	}
	names := sortedChildNames(node)
	for i, childName := range names {
		printTree(w, node.children[childName], indent, i == len(names)-1, name, count)
	}
}

// Print writes the run summary to w. Pages is the number of page breaks
// the writer inserted, zero when pagination was off.
func Print(w io.Writer, reports []FileReport, totalFragments, pages int, outPath string) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	fmt.Fprintln(w, "\n--- Summary ---")
	if len(reports) == 0 {
		fmt.Fprintln(w, "No code lines written; the document holds only the header.")
	} else {
		bold.Fprintf(w, "Wrote %d files (%d fragments", len(reports), totalFragments)
		if pages > 0 {
			fmt.Fprintf(w, ", %d page breaks", pages)
		}
		fmt.Fprintln(w, "):")
		tree := buildTree(reports)
		printTree(w, tree, "", true, cyan, green)
	}
	fmt.Fprintf(w, "Output: %s\n", green.Sprint(outPath))
	fmt.Fprintln(w, "---------------")
}
