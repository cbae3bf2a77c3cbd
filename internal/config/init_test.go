package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/project-print/internal/types"
	"github.com/temirov/project-print/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	workingDirectory := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	for _, key := range []string{"ignore:", "include:", "remove_default:", "output:", "copy:", "tokens:"} {
		if !strings.Contains(string(content), key) {
			t.Fatalf("expected key %s in configuration:\n%s", key, string(content))
		}
	}
}

func TestInitializedConfigurationLoadsBack(t *testing.T) {
	workingDirectory := t.TempDir()
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	configuration, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory, HomeDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", err)
	}
	if configuration.Output != types.DefaultOutputFileName {
		t.Fatalf("expected output %q, got %q", types.DefaultOutputFileName, configuration.Output)
	}
	if configuration.RemoveDefault != nil || configuration.Copy != nil || configuration.Tokens.Enabled != nil {
		t.Fatalf("expected generated configuration to leave booleans unset, got %+v", configuration)
	}
	if configuration.Tokens.Model != "gpt-4o" {
		t.Fatalf("expected default model gpt-4o, got %q", configuration.Tokens.Model)
	}
	if len(configuration.Ignore) != 0 || len(configuration.Include) != 0 {
		t.Fatalf("expected empty pattern lists, got %+v", configuration)
	}
}

func TestInitializedLocalConfigurationKeepsGlobalBooleans(t *testing.T) {
	workingDirectory := t.TempDir()
	homeDirectory := t.TempDir()
	writeConfigurationFile(t, GlobalConfigurationPath(homeDirectory), "remove_default: true\ncopy: true\ntokens:\n  enabled: true\n")
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	configuration, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory, HomeDirectory: homeDirectory})
	if err != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", err)
	}
	if !BoolValue(configuration.RemoveDefault, false) || !BoolValue(configuration.Copy, false) || !BoolValue(configuration.Tokens.Enabled, false) {
		t.Fatalf("expected global booleans to survive a generated local file, got %+v", configuration)
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	homeDirectory := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, HomeDirectory: homeDirectory})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	if path != GlobalConfigurationPath(homeDirectory) {
		t.Fatalf("expected configuration at %s, got %s", GlobalConfigurationPath(homeDirectory), path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}); err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: true}); err != nil {
		t.Fatalf("expected forced overwrite to succeed: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) == "existing" {
		t.Fatalf("expected configuration to be overwritten")
	}
}

func TestInitializeConfigurationRejectsUnknownTarget(t *testing.T) {
	if _, err := InitializeConfiguration(InitOptions{Target: "remote", WorkingDirectory: t.TempDir()}); err == nil {
		t.Fatalf("expected error for unsupported target")
	}
}
