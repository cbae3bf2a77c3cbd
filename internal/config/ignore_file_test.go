package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/project-print/internal/utils"
)

func TestLoadIgnoreFileSections(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectIgnore  []string
		expectInclude []string
	}{
		{
			name:         "implicit_ignore_section",
			content:      "# generated\n\ndist\n  coverage  \ndist\n",
			expectIgnore: []string{"dist", "coverage"},
		},
		{
			name:          "both_sections",
			content:       "tmp\n[include]\n*.go\n[IGNORE]\n*.log\n",
			expectIgnore:  []string{"tmp", "*.log"},
			expectInclude: []string{"*.go"},
		},
		{
			name:    "only_comments",
			content: "# nothing\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rootDirectory := t.TempDir()
			if err := os.WriteFile(filepath.Join(rootDirectory, utils.IgnoreFileName), []byte(testCase.content), 0o600); err != nil {
				t.Fatalf("write ignore file: %v", err)
			}
			patterns, err := LoadProjectIgnoreFile(rootDirectory)
			if err != nil {
				t.Fatalf("LoadProjectIgnoreFile error: %v", err)
			}
			assertPatterns(t, "ignore", patterns.Ignore, testCase.expectIgnore)
			assertPatterns(t, "include", patterns.Include, testCase.expectInclude)
		})
	}
}

func TestLoadIgnoreFileMissing(t *testing.T) {
	patterns, err := LoadIgnoreFile(filepath.Join(t.TempDir(), utils.IgnoreFileName))
	if err != nil {
		t.Fatalf("expected missing file to be tolerated: %v", err)
	}
	if !reflect.DeepEqual(patterns, IgnoreFilePatterns{}) {
		t.Fatalf("expected no patterns, got %+v", patterns)
	}
}

func TestLoadIgnoreFileUnreadable(t *testing.T) {
	if _, err := LoadIgnoreFile(t.TempDir()); err == nil {
		t.Fatalf("expected error when the ignore path is a directory")
	}
}
