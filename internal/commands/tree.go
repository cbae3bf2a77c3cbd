// Package commands contains the traversal that turns a directory into a
// project print: a pruned tree of selected paths and their contents.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/temirov/project-print/internal/types"
	"github.com/temirov/project-print/internal/utils"
	"go.uber.org/zap"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorStatRootFormat is used when the traversal root cannot be inspected.
	errorStatRootFormat = "inspecting root %s: %w"
	// errorRootNotDirectoryFormat is used when the traversal root is a file.
	errorRootNotDirectoryFormat = "root %s is not a directory"

	warningReadDirectoryMessage = "Error reading directory"
	warningReadFileMessage      = "Error reading file"
	warningStatEntryMessage     = "Error inspecting entry"

	logFieldPath    = "path"
	logFieldPattern = "pattern"
)

// ErrRootNotDirectory reports a traversal root that exists but is not a directory.
var ErrRootNotDirectory = errors.New("root is not a directory")

// walkContext carries the state of one traversal. It is created by Walk and
// discarded when Walk returns.
type walkContext struct {
	walker    *Walker
	logger    *zap.Logger
	root      string
	skipPaths map[string]struct{}
	buffer    *types.ContentBuffer
}

// Walk traverses rootDirectoryPath depth-first in directory-listing order.
// The returned tree holds only directories that contain at least one selected
// file. Unreadable directories and files are logged and skipped; only an
// unusable root is reported as an error.
func (walker *Walker) Walk(rootDirectoryPath string) (*types.TreeNode, *types.ContentBuffer, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	rootInfo, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		return nil, nil, fmt.Errorf(errorStatRootFormat, rootDirectoryPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return nil, nil, fmt.Errorf(errorRootNotDirectoryFormat+": %w", rootDirectoryPath, ErrRootNotDirectory)
	}

	logger := walker.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := &walkContext{
		walker:    walker,
		logger:    logger,
		root:      absoluteRootPath,
		skipPaths: make(map[string]struct{}, len(walker.SkipPaths)),
		buffer:    types.NewContentBuffer(),
	}
	for _, skipPath := range walker.SkipPaths {
		if absoluteSkipPath, skipError := filepath.Abs(skipPath); skipError == nil {
			ctx.skipPaths[absoluteSkipPath] = struct{}{}
		}
	}

	rootNode := types.NewDirectoryNode("")
	ctx.readDirectory(absoluteRootPath, rootNode)
	return rootNode, ctx.buffer, nil
}

// Walk traverses rootDirectoryPath with the given pattern lists.
func Walk(rootDirectoryPath string, ignorePatterns []string, includePatterns []string, logger *zap.Logger) (*types.TreeNode, *types.ContentBuffer, error) {
	return NewWalker(ignorePatterns, includePatterns, logger).Walk(rootDirectoryPath)
}

func (ctx *walkContext) readDirectory(directoryPath string, node *types.TreeNode) {
	entries, listError := listDirectory(directoryPath)
	if listError != nil {
		ctx.logger.Warn(warningReadDirectoryMessage, zap.String(logFieldPath, directoryPath), zap.Error(listError))
		return
	}

	for _, entry := range entries {
		childPath := filepath.Join(directoryPath, entry.Name())
		if _, skipped := ctx.skipPaths[childPath]; skipped {
			continue
		}
		relativePath := utils.RelativePathOrSelf(childPath, ctx.root)

		entryType := entry.Type()
		if entryType&fs.ModeSymlink != 0 {
			targetInfo, statError := os.Stat(childPath)
			if statError != nil {
				ctx.logger.Warn(warningStatEntryMessage, zap.String(logFieldPath, relativePath), zap.Error(statError))
				continue
			}
			entryType = targetInfo.Mode().Type()
		}

		switch {
		case entryType.IsDir():
			ctx.visitDirectory(childPath, relativePath, node)
		case entryType.IsRegular():
			ctx.visitFile(childPath, relativePath, node)
		}
	}
}

func (ctx *walkContext) visitDirectory(directoryPath string, relativePath string, parent *types.TreeNode) {
	if !ctx.shouldDescend(relativePath) {
		return
	}
	child := types.NewDirectoryNode(relativePath)
	ctx.readDirectory(directoryPath, child)
	if child.IsEmpty() {
		return
	}
	parent.Append(child)
}

func (ctx *walkContext) visitFile(filePath string, relativePath string, parent *types.TreeNode) {
	decision := ctx.walker.Policy.Decide(relativePath)
	if !decision.Included {
		ctx.logger.Debug("Skipping file", zap.String(logFieldPath, relativePath), zap.String(logFieldPattern, decision.Pattern))
		return
	}
	// #nosec G304
	fileBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		ctx.logger.Warn(warningReadFileMessage, zap.String(logFieldPath, relativePath), zap.Error(readError))
		return
	}
	if !ctx.buffer.Append(relativePath, string(fileBytes)) {
		ctx.logger.Debug("Skipping empty file", zap.String(logFieldPath, relativePath))
		return
	}
	parent.Append(types.NewFileNode(relativePath))
}

// shouldDescend decides whether a directory is traversed. With include
// patterns every directory is traversed, since a nested file may be selected
// even when its directory is not; empty directories are pruned afterwards.
func (ctx *walkContext) shouldDescend(relativePath string) bool {
	policy := ctx.walker.Policy
	if policy.HasIncludes() {
		return true
	}
	decision := policy.Decide(relativePath)
	if !decision.Included {
		ctx.logger.Debug("Pruning directory", zap.String(logFieldPath, relativePath), zap.String(logFieldPattern, decision.Pattern))
	}
	return decision.Included
}

// listDirectory returns the entries of directoryPath in the order the
// filesystem yields them. os.ReadDir sorts by name, so the handle is read directly.
func listDirectory(directoryPath string) ([]fs.DirEntry, error) {
	directoryHandle, openError := os.Open(directoryPath)
	if openError != nil {
		return nil, openError
	}
	defer directoryHandle.Close()
	return directoryHandle.ReadDir(-1)
}
