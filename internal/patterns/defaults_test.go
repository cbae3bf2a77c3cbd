package patterns_test

import (
	"reflect"
	"testing"

	"github.com/temirov/project-print/internal/patterns"
)

func TestSplitList(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "single", raw: "*.go", expected: []string{"*.go"}},
		{name: "trims whitespace", raw: " *.go ,  vendor ", expected: []string{"*.go", "vendor"}},
		{name: "drops empty tokens", raw: "a,,b, ,", expected: []string{"a", "b"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := patterns.SplitList(testCase.raw)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, actual)
			}
		})
	}
}

func TestBuildIgnoreSet(t *testing.T) {
	withDefaults := patterns.BuildIgnoreSet([]string{"vendor, *.gen.go", "node_modules"}, true, "out.txt")
	if len(withDefaults) != len(patterns.DefaultIgnorePatterns)+3 {
		t.Fatalf("expected defaults plus three patterns, got %d", len(withDefaults))
	}
	if withDefaults[0] != patterns.DefaultIgnorePatterns[0] {
		t.Fatalf("expected defaults first, got %s", withDefaults[0])
	}
	tail := withDefaults[len(withDefaults)-3:]
	if !reflect.DeepEqual(tail, []string{"out.txt", "vendor", "*.gen.go"}) {
		t.Fatalf("unexpected tail %v", tail)
	}

	withoutDefaults := patterns.BuildIgnoreSet([]string{"vendor"}, false, "project-print.txt")
	if !reflect.DeepEqual(withoutDefaults, []string{"project-print.txt", "vendor"}) {
		t.Fatalf("unexpected ignore set %v", withoutDefaults)
	}
}

func TestDefaultIgnorePatternsCoverCommonArtifacts(t *testing.T) {
	set := patterns.NewSet(patterns.DefaultIgnorePatterns)
	ignored := []string{"node_modules", "web/dist", "server.log", "logo.png", ".git/HEAD", "package-lock.json", ".vscode", "project-print.txt", ".env"}
	for _, candidatePath := range ignored {
		if !set.Matches(candidatePath) {
			t.Fatalf("expected %s to be ignored by default", candidatePath)
		}
	}
	kept := []string{"main.go", "src/app.ts", "README.md", "go.mod"}
	for _, candidatePath := range kept {
		if set.Matches(candidatePath) {
			t.Fatalf("expected %s to be kept by default", candidatePath)
		}
	}
}
