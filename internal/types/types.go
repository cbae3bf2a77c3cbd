// Package types defines every cross‑package data structure used by the project-print CLI.
package types

// NodeKind distinguishes file leaves from directory branches in a TreeNode.
type NodeKind int

const (
	NodeKindDirectory NodeKind = iota
	NodeKindFile
)

// DefaultOutputFileName is the document written by a run and excluded from every later run.
const DefaultOutputFileName = "project-print.txt"

// TreeNode is one entry of the selected tree. Keys are forward-slash paths
// relative to the traversal root; children keep directory-listing order.
type TreeNode struct {
	Key      string
	Kind     NodeKind
	Children []*TreeNode
}

// NewDirectoryNode returns an empty directory node.
func NewDirectoryNode(key string) *TreeNode {
	return &TreeNode{Key: key, Kind: NodeKindDirectory}
}

// NewFileNode returns a file leaf.
func NewFileNode(key string) *TreeNode {
	return &TreeNode{Key: key, Kind: NodeKindFile}
}

// Append attaches child in insertion order.
func (node *TreeNode) Append(child *TreeNode) {
	node.Children = append(node.Children, child)
}

// IsDirectory reports whether the node is a branch.
func (node *TreeNode) IsDirectory() bool {
	return node != nil && node.Kind == NodeKindDirectory
}

// IsEmpty reports whether a directory node has no children. File leaves are never empty.
func (node *TreeNode) IsEmpty() bool {
	if node == nil {
		return true
	}
	return node.Kind == NodeKindDirectory && len(node.Children) == 0
}

// FileCount returns the number of file leaves below node.
func (node *TreeNode) FileCount() int {
	if node == nil {
		return 0
	}
	if node.Kind == NodeKindFile {
		return 1
	}
	total := 0
	for _, child := range node.Children {
		total += child.FileCount()
	}
	return total
}

// ContentEntry is one selected file and its text.
type ContentEntry struct {
	Path    string
	Content string
}

// ContentBuffer accumulates selected file contents in traversal order.
type ContentBuffer struct {
	entries []ContentEntry
}

// NewContentBuffer returns an empty buffer.
func NewContentBuffer() *ContentBuffer {
	return &ContentBuffer{}
}

// Append records content for path. Empty content is dropped.
func (buffer *ContentBuffer) Append(path string, content string) bool {
	if len(content) == 0 {
		return false
	}
	buffer.entries = append(buffer.entries, ContentEntry{Path: path, Content: content})
	return true
}

// Entries returns the recorded entries in traversal order.
func (buffer *ContentBuffer) Entries() []ContentEntry {
	if buffer == nil {
		return nil
	}
	return buffer.entries
}

// Len returns the number of entries.
func (buffer *ContentBuffer) Len() int {
	if buffer == nil {
		return 0
	}
	return len(buffer.entries)
}

// TotalBytes returns the summed content length of all entries.
func (buffer *ContentBuffer) TotalBytes() int64 {
	var total int64
	for _, entry := range buffer.Entries() {
		total += int64(len(entry.Content))
	}
	return total
}

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// OutputSummary captures aggregate information about a rendered document.
type OutputSummary struct {
	TotalFiles  int
	TotalBytes  int64
	TotalTokens int
	Model       string
}
