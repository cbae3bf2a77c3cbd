package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/project-print/internal/config"
	"github.com/temirov/project-print/internal/types"
)

// runSettings is the effective configuration of one run: flags that were
// set explicitly win over configuration files, which win over defaults.
type runSettings struct {
	startPath       string
	ignorePatterns  []string
	includePatterns []string
	removeDefault   bool
	outputPath      string
	copyToClipboard bool
	tokensEnabled   bool
	model           string
}

func resolveRunSettings(command *cobra.Command, startPath string, flags printOptions, configuration config.ApplicationConfiguration) runSettings {
	changed := func(name string) bool {
		return command.Flags().Changed(name)
	}

	settings := runSettings{
		startPath:       startPath,
		ignorePatterns:  configuration.Ignore,
		includePatterns: configuration.Include,
		removeDefault:   config.BoolValue(configuration.RemoveDefault, false),
		outputPath:      configuration.Output,
		copyToClipboard: config.BoolValue(configuration.Copy, false),
		tokensEnabled:   config.BoolValue(configuration.Tokens.Enabled, false),
		model:           configuration.Tokens.Model,
	}
	if changed(ignoreFlagName) {
		settings.ignorePatterns = flags.ignorePatterns
	}
	if changed(includeFlagName) {
		settings.includePatterns = flags.includePatterns
	}
	if changed(removeDefaultFlagName) {
		settings.removeDefault = flags.removeDefault
	}
	if changed(outputFlagName) || settings.outputPath == "" {
		settings.outputPath = flags.outputPath
	}
	if settings.outputPath == "" {
		settings.outputPath = types.DefaultOutputFileName
	}
	if changed(copyFlagName) {
		settings.copyToClipboard = flags.copyToClipboard
	}
	if changed(tokensFlagName) {
		settings.tokensEnabled = flags.tokensEnabled
	}
	if changed(modelFlagName) || settings.model == "" {
		settings.model = flags.model
	}
	return settings
}
