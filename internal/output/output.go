// Package output renders the project print document and writes it to disk.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/project-print/internal/types"
	"github.com/temirov/project-print/internal/utils"
)

const (
	indentSpacer = "  "
	lineBreak    = "\n"

	fileStructureHeader = "File structure:\n"
	projectPrintHeader  = "Project print:\n"
	sectionSeparator    = "\n\n"
	entryPathSuffix     = ":\n"
	entrySeparator      = "\n\n"
)

// RenderTree flattens node into indented lines: every key on its own line,
// children indented two spaces deeper than their parent, listing order kept.
func RenderTree(node *types.TreeNode) string {
	var builder strings.Builder
	WriteTreeTo(&builder, node)
	return builder.String()
}

// WriteTreeTo writes the flattened tree to writer.
func WriteTreeTo(writer io.Writer, node *types.TreeNode) {
	if node == nil {
		return
	}
	renderTreeNode(writer, node, "")
}

func renderTreeNode(writer io.Writer, node *types.TreeNode, indent string) {
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		io.WriteString(writer, indent+child.Key+lineBreak)
		if len(child.Children) > 0 {
			renderTreeNode(writer, child, indent+indentSpacer)
		}
	}
}

// RenderDocument assembles the final artifact: the rendered tree followed by
// every buffered file as "<path>:\n<content>\n\n".
func RenderDocument(tree *types.TreeNode, buffer *types.ContentBuffer) string {
	var builder strings.Builder
	WriteDocumentTo(&builder, tree, buffer)
	return builder.String()
}

// WriteDocumentTo writes the document for tree and buffer to writer.
func WriteDocumentTo(writer io.Writer, tree *types.TreeNode, buffer *types.ContentBuffer) {
	io.WriteString(writer, fileStructureHeader)
	WriteTreeTo(writer, tree)
	io.WriteString(writer, sectionSeparator+projectPrintHeader)
	for _, entry := range buffer.Entries() {
		io.WriteString(writer, entry.Path+entryPathSuffix+entry.Content+entrySeparator)
	}
}

// Summarize computes the aggregate numbers reported after a run.
func Summarize(tree *types.TreeNode, buffer *types.ContentBuffer) *types.OutputSummary {
	return &types.OutputSummary{
		TotalFiles: tree.FileCount(),
		TotalBytes: buffer.TotalBytes(),
	}
}

// FormatSummaryLine formats an OutputSummary into a single summary line.
func FormatSummaryLine(summary *types.OutputSummary) string {
	if summary == nil {
		summary = &types.OutputSummary{}
	}
	label := "files"
	if summary.TotalFiles == 1 {
		label = "file"
	}
	extra := ""
	if summary.TotalTokens > 0 {
		extra = fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.TotalFiles, label, utils.FormatFileSize(summary.TotalBytes), extra, modelSuffix)
}
