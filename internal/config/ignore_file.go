package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/project-print/internal/utils"
)

const (
	commentPrefix        = "#"
	ignoreSectionHeader  = "[ignore]"
	includeSectionHeader = "[include]"
)

// IgnoreFilePatterns holds the patterns read from a project ignore file.
type IgnoreFilePatterns struct {
	Ignore  []string
	Include []string
}

// LoadProjectIgnoreFile reads utils.IgnoreFileName from rootDirectoryPath.
// A missing file yields no patterns.
func LoadProjectIgnoreFile(rootDirectoryPath string) (IgnoreFilePatterns, error) {
	return LoadIgnoreFile(filepath.Join(rootDirectoryPath, utils.IgnoreFileName))
}

// LoadIgnoreFile parses an ignore file. Lines belong to the [ignore] section
// until an [include] header appears; blank lines and # comments are skipped.
//
// #nosec G304
func LoadIgnoreFile(ignoreFilePath string) (IgnoreFilePatterns, error) {
	fileHandle, openError := os.Open(ignoreFilePath)
	if openError != nil {
		if os.IsNotExist(openError) {
			return IgnoreFilePatterns{}, nil
		}
		return IgnoreFilePatterns{}, fmt.Errorf("open %s: %w", ignoreFilePath, openError)
	}
	defer fileHandle.Close()

	var patterns IgnoreFilePatterns
	currentSection := ignoreSectionHeader
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		if strings.EqualFold(trimmedLine, ignoreSectionHeader) || strings.EqualFold(trimmedLine, includeSectionHeader) {
			currentSection = strings.ToLower(trimmedLine)
			continue
		}
		if currentSection == includeSectionHeader {
			patterns.Include = append(patterns.Include, trimmedLine)
			continue
		}
		patterns.Ignore = append(patterns.Ignore, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return IgnoreFilePatterns{}, fmt.Errorf("read %s: %w", ignoreFilePath, scanError)
	}
	patterns.Ignore = utils.DeduplicatePatterns(patterns.Ignore)
	patterns.Include = utils.DeduplicatePatterns(patterns.Include)
	return patterns, nil
}
