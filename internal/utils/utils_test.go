package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/project-print/internal/utils"
)

// textFileName defines the name of the text file used in tests.
const textFileName = "sample.txt"

// nestedDirectoryName defines the directory used for nested path tests.
const nestedDirectoryName = "subdir"

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b"},
			expected: []string{"a", "b"},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestContainsString verifies that ContainsString locates strings in a slice.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	subPath := filepath.Join(temporaryRoot, textFileName)
	creationError := os.WriteFile(subPath, []byte("content"), 0600)
	if creationError != nil {
		testingInstance.Fatalf("failed to create file: %v", creationError)
	}
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{
			testName: "root path returns dot",
			fullPath: temporaryRoot,
			root:     temporaryRoot,
			expected: ".",
		},
		{
			testName: "sub path returns relative",
			fullPath: subPath,
			root:     temporaryRoot,
			expected: textFileName,
		},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestRelativePathOrSelfUsesForwardSlashes verifies nested paths are reported with forward slashes.
func TestRelativePathOrSelfUsesForwardSlashes(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	nestedPath := filepath.Join(temporaryRoot, nestedDirectoryName, textFileName)
	actual := utils.RelativePathOrSelf(nestedPath, temporaryRoot)
	expected := nestedDirectoryName + "/" + textFileName
	if actual != expected {
		testingInstance.Fatalf("expected %s, got %s", expected, actual)
	}
}

// TestNormalizeVersion verifies semantic versions are canonicalized and other values are kept.
func TestNormalizeVersion(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		value    string
		expected string
	}{
		{testName: "canonical", value: "v1.2.3", expected: "v1.2.3"},
		{testName: "missing prefix", value: "1.4.0", expected: "v1.4.0"},
		{testName: "short form", value: "v2.1", expected: "v2.1.0"},
		{testName: "prerelease", value: "v0.3.0-rc.1", expected: "v0.3.0-rc.1"},
		{testName: "describe output", value: "v1.0.0-3-gabcdef-dirty", expected: "v1.0.0-3-gabcdef-dirty"},
		{testName: "not a version", value: " unknown ", expected: "unknown"},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(t *testing.T) {
			actual := utils.NormalizeVersion(testCase.value)
			if actual != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, actual)
			}
		})
	}
}
