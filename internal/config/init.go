package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/project-print/internal/types"
	"github.com/temirov/project-print/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	configurationFilePermissions      = 0o600
	configurationDirectoryPermissions = 0o755
	templateIndent                    = 2
	defaultTemplateModel              = "gpt-4o"
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
	HomeDirectory    string
}

// optionalKeysComment lists the boolean keys left out of the generated file.
// Writing them would pin false over a global true.
const optionalKeysComment = `# Boolean keys are inherited from the global configuration when absent:
#   remove_default: true
#   copy: true
#   tokens:
#     enabled: true
`

// configurationTemplate mirrors ApplicationConfiguration. Unset booleans are
// omitted from the generated file.
type configurationTemplate struct {
	Ignore        []string                   `yaml:"ignore"`
	Include       []string                   `yaml:"include"`
	RemoveDefault *bool                      `yaml:"remove_default,omitempty"`
	Output        string                     `yaml:"output"`
	Copy          *bool                      `yaml:"copy,omitempty"`
	Tokens        tokenTemplateConfiguration `yaml:"tokens"`
}

type tokenTemplateConfiguration struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Model   string `yaml:"model"`
}

// RenderDefaultConfiguration returns the YAML written by InitializeConfiguration.
func RenderDefaultConfiguration() ([]byte, error) {
	template := configurationTemplate{
		Ignore:  []string{},
		Include: []string{},
		Output:  types.DefaultOutputFileName,
		Tokens:  tokenTemplateConfiguration{Model: defaultTemplateModel},
	}
	var buffer bytes.Buffer
	buffer.WriteString(optionalKeysComment)
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(templateIndent)
	if err := encoder.Encode(template); err != nil {
		return nil, fmt.Errorf("render default configuration: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render default configuration: %w", err)
	}
	return buffer.Bytes(), nil
}

// InitializeConfiguration writes the default configuration to the requested target.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	case InitTargetGlobal:
		homeDirectory := options.HomeDirectory
		if homeDirectory == "" {
			resolvedHome, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home directory for configuration: %w", err)
			}
			homeDirectory = resolvedHome
		}
		destinationPath = GlobalConfigurationPath(homeDirectory)
		configurationDirectory := filepath.Dir(destinationPath)
		if err := os.MkdirAll(configurationDirectory, configurationDirectoryPermissions); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	content, renderErr := RenderDefaultConfiguration()
	if renderErr != nil {
		return "", renderErr
	}
	if err := os.WriteFile(destinationPath, content, configurationFilePermissions); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}
	return destinationPath, nil
}
