package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{name: "defaults_to_false", arguments: []string{}, expected: false},
		{name: "sets_true_without_value", arguments: []string{"--feature"}, expected: true},
		{name: "sets_false_with_equals", arguments: []string{"--feature=false"}, expected: false},
		{name: "sets_false_with_no_literal", arguments: []string{"--feature", "no"}, expected: false},
		{name: "sets_true_with_on_literal", arguments: []string{"--feature", "on"}, expected: true},
		{name: "keeps_path_after_bare_flag", arguments: []string{"--feature", "./src"}, expected: true},
		{name: "rejects_unknown_literal", arguments: []string{"--feature=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var target bool
			command := &cobra.Command{
				Use:  "test",
				Args: cobra.ArbitraryArgs,
				RunE: func(*cobra.Command, []string) error { return nil },
			}
			registerBooleanFlag(command.Flags(), &target, "feature", "test flag")
			command.SetArgs(normalizeBooleanFlagArguments(command, testCase.arguments))
			err := command.Execute()
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target != testCase.expected {
				t.Fatalf("expected %v, got %v", testCase.expected, target)
			}
		})
	}
}

func TestNormalizeBooleanFlagArguments(t *testing.T) {
	command := NewRootCommand(ApplicationOptions{})

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "joins_boolean_literal",
			arguments: []string{".", "--copy", "yes"},
			expected:  []string{".", "--copy=yes"},
		},
		{
			name:      "leaves_string_flags_alone",
			arguments: []string{".", "--output", "no"},
			expected:  []string{".", "--output", "no"},
		},
		{
			name:      "leaves_non_literal_positional",
			arguments: []string{"--tokens", "project"},
			expected:  []string{"--tokens", "project"},
		},
		{
			name:      "handles_subcommand_flags",
			arguments: []string{"init", "--force", "false"},
			expected:  []string{"init", "--force=false"},
		},
		{
			name:      "stops_at_terminator",
			arguments: []string{"--", "--copy", "yes"},
			expected:  []string{"--", "--copy", "yes"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := normalizeBooleanFlagArguments(command, testCase.arguments)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, actual)
			}
		})
	}
}
