// Package cli provides the project-print command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/project-print/internal/commands"
	"github.com/temirov/project-print/internal/config"
	"github.com/temirov/project-print/internal/output"
	"github.com/temirov/project-print/internal/patterns"
	"github.com/temirov/project-print/internal/services/clipboard"
	"github.com/temirov/project-print/internal/tokenizer"
	"github.com/temirov/project-print/internal/types"
	"github.com/temirov/project-print/internal/utils"
)

const (
	ignoreFlagName        = "ignore"
	includeFlagName       = "include"
	removeDefaultFlagName = "remove-default"
	outputFlagName        = "output"
	copyFlagName          = "copy"
	tokensFlagName        = "tokens"
	modelFlagName         = "model"
	configFlagName        = "config"
	verboseFlagName       = "verbose"
	versionFlagName       = "version"
	globalFlagName        = "global"
	forceFlagName         = "force"

	outputFlagShorthand = "o"

	versionTemplate      = "project-print version: %s\n"
	initCompletedFormat  = "Configuration written to %s\n"
	rootUse              = "project-print <startPath>"
	rootShortDescription = "print a project's file tree and contents into one text file"
	rootLongDescription  = `project-print walks a directory, selects files with ignore and include
patterns, and writes the file structure followed by every selected file's
content into a single text file (project-print.txt by default).

Ignore patterns apply only when no include patterns are given. Patterns
without a slash match a file or directory name; patterns with a slash match
the path relative to the start directory. "*" matches any run of characters.`
	rootUsageExample = `  # Print the current directory with the default ignore list
  project-print .

  # Print only Go files and copy the result to the clipboard
  project-print ./service --include "*.go" --copy

  # Drop the default ignore list and skip fixtures
  project-print . --remove-default --ignore testdata,fixtures`
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write a configuration file with every supported key.
The file is created in the working directory as ` + utils.ConfigFileName + `,
or under ~/` + utils.GlobalConfigDirectoryName + `/ with --global.`

	ignoreFlagDescription        = "comma-separated patterns to ignore (repeatable)"
	includeFlagDescription       = "comma-separated patterns to include; overrides ignores (repeatable)"
	removeDefaultFlagDescription = "do not apply the built-in ignore list"
	outputFlagDescription        = "file the project print is written to"
	copyFlagDescription          = "also copy the project print to the clipboard"
	tokensFlagDescription        = "estimate the token count of the selected files"
	modelFlagDescription         = "tokenizer model used with --tokens"
	configFlagDescription        = "configuration file used instead of ./" + utils.ConfigFileName
	verboseFlagDescription       = "log the resolved configuration and traversal details"
	versionFlagDescription       = "display application version"
	globalFlagDescription        = "write the global configuration instead of the local one"
	forceFlagDescription         = "overwrite an existing configuration file"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	errorAbsolutePathFormat     = "abs failed for '%s': %w"
	errorPathMissingFormat      = "path '%s' does not exist"
	errorStatFormat             = "stat failed for '%s': %w"
	errorNotDirectoryFormat     = "start path '%s' is not a directory"
	errorLoggerFormat           = "create logger: %w"
	clipboardWarningFormat      = "could not copy to clipboard: %v"

	logMessageConfiguration = "Configuration"
	logMessageTraversal     = "Traversal finished"
	logMessageClipboard     = "Clipboard copy failed"
	logFieldStartPath       = "start_path"
	logFieldOutput          = "output"
	logFieldInclude         = "include"
	logFieldIgnore          = "ignore"
	logFieldRemoveDefault   = "remove_default"
	logFieldFiles           = "files"
	logFieldBytes           = "bytes"
)

// ErrStartPathRequired is returned when no start path argument is given.
var ErrStartPathRequired = errors.New("starting directory path is required")

// CounterFactory builds the token counter for a run.
type CounterFactory func(tokenizer.Config) (tokenizer.Counter, string, error)

// ApplicationOptions wires the command to its environment. Zero values are
// replaced with the process defaults.
type ApplicationOptions struct {
	Stdout           io.Writer
	Stderr           io.Writer
	WorkingDirectory string
	HomeDirectory    string
	Logger           *zap.Logger
	Clipboard        clipboard.Copier
	NewCounter       CounterFactory
}

func (options ApplicationOptions) withDefaults() (ApplicationOptions, error) {
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	if options.Stderr == nil {
		options.Stderr = os.Stderr
	}
	if options.WorkingDirectory == "" {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return options, fmt.Errorf(workingDirectoryErrorFormat, err)
		}
		options.WorkingDirectory = workingDirectory
	}
	if options.Clipboard == nil {
		options.Clipboard = clipboard.NewService()
	}
	if options.NewCounter == nil {
		options.NewCounter = tokenizer.NewCounter
	}
	return options, nil
}

// printOptions stores the values of the root command flags.
type printOptions struct {
	ignorePatterns  []string
	includePatterns []string
	removeDefault   bool
	outputPath      string
	copyToClipboard bool
	tokensEnabled   bool
	model           string
	configPath      string
	verbose         bool
	showVersion     bool
}

// Execute runs the project-print application with process defaults.
func Execute() error {
	rootCommand := NewRootCommand(ApplicationOptions{})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(options ApplicationOptions) *cobra.Command {
	var flags printOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolvedOptions, err := options.withDefaults()
			if err != nil {
				return err
			}
			if flags.showVersion {
				fmt.Fprintf(resolvedOptions.Stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if len(arguments) == 0 {
				return ErrStartPathRequired
			}
			configuration, err := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: resolvedOptions.WorkingDirectory,
				ExplicitFilePath: flags.configPath,
				HomeDirectory:    resolvedOptions.HomeDirectory,
			})
			if err != nil {
				return err
			}
			settings := resolveRunSettings(command, arguments[0], flags, configuration)

			logger := resolvedOptions.Logger
			if logger == nil {
				createdLogger, loggerError := utils.NewApplicationLogger(flags.verbose)
				if loggerError != nil {
					return fmt.Errorf(errorLoggerFormat, loggerError)
				}
				defer createdLogger.Sync()
				logger = createdLogger
			}
			return runProjectPrint(command.Context(), resolvedOptions, logger, settings)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVar(&flags.ignorePatterns, ignoreFlagName, nil, ignoreFlagDescription)
	flagSet.StringArrayVar(&flags.includePatterns, includeFlagName, nil, includeFlagDescription)
	registerBooleanFlag(flagSet, &flags.removeDefault, removeDefaultFlagName, removeDefaultFlagDescription)
	flagSet.StringVarP(&flags.outputPath, outputFlagName, outputFlagShorthand, types.DefaultOutputFileName, outputFlagDescription)
	registerBooleanFlag(flagSet, &flags.copyToClipboard, copyFlagName, copyFlagDescription)
	registerBooleanFlag(flagSet, &flags.tokensEnabled, tokensFlagName, tokensFlagDescription)
	flagSet.StringVar(&flags.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	flagSet.StringVar(&flags.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flagSet, &flags.verbose, verboseFlagName, verboseFlagDescription)
	flagSet.BoolVar(&flags.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(options))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func createInitCommand(options ApplicationOptions) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolvedOptions, err := options.withDefaults()
			if err != nil {
				return err
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, err := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: resolvedOptions.WorkingDirectory,
				HomeDirectory:    resolvedOptions.HomeDirectory,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(resolvedOptions.Stdout, initCompletedFormat, path)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, forceFlagDescription)
	return initCommand
}

// runProjectPrint walks the start path and writes the resulting document.
func runProjectPrint(ctx context.Context, options ApplicationOptions, logger *zap.Logger, settings runSettings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	root, err := resolveStartPath(settings.startPath, options.WorkingDirectory)
	if err != nil {
		return err
	}
	outputPath := resolveOutputPath(settings.outputPath, options.WorkingDirectory)

	projectPatterns, err := config.LoadProjectIgnoreFile(root.AbsolutePath)
	if err != nil {
		return err
	}
	// A custom output name would substring-match unrelated files; the walker
	// skips the output path itself.
	outputIgnoreName := ""
	if filepath.Base(outputPath) == types.DefaultOutputFileName {
		outputIgnoreName = types.DefaultOutputFileName
	}
	ignorePatterns := patterns.BuildIgnoreSet(
		append(append([]string{}, settings.ignorePatterns...), projectPatterns.Ignore...),
		!settings.removeDefault,
		outputIgnoreName,
	)
	includePatterns := utils.DeduplicatePatterns(
		append(patterns.SplitLists(settings.includePatterns), projectPatterns.Include...),
	)
	logger.Debug(logMessageConfiguration,
		zap.String(logFieldStartPath, root.AbsolutePath),
		zap.String(logFieldOutput, outputPath),
		zap.Strings(logFieldInclude, includePatterns),
		zap.Strings(logFieldIgnore, ignorePatterns),
		zap.Bool(logFieldRemoveDefault, settings.removeDefault),
	)

	walker := commands.NewWalker(ignorePatterns, includePatterns, logger)
	walker.SkipPaths = []string{outputPath}
	tree, buffer, err := walker.Walk(root.AbsolutePath)
	if err != nil {
		return err
	}
	logger.Debug(logMessageTraversal, zap.Int(logFieldFiles, buffer.Len()), zap.Int64(logFieldBytes, buffer.TotalBytes()))

	document := output.RenderDocument(tree, buffer)
	summary := output.Summarize(tree, buffer)
	if settings.tokensEnabled {
		counter, model, counterError := options.NewCounter(tokenizer.Config{Model: settings.model})
		if counterError != nil {
			return counterError
		}
		totalTokens, countError := tokenizer.CountEntries(ctx, counter, buffer.Entries(), 0)
		if countError != nil {
			return countError
		}
		summary.TotalTokens = totalTokens
		summary.Model = model
	}

	if err := output.WriteDocument(outputPath, document); err != nil {
		return err
	}

	consoleReporter := newReporter(options.Stderr)
	if settings.copyToClipboard {
		if copyError := options.Clipboard.Copy(document); copyError != nil {
			logger.Debug(logMessageClipboard, zap.Error(copyError))
			consoleReporter.warning(fmt.Sprintf(clipboardWarningFormat, copyError))
		}
	}
	consoleReporter.written(outputPath, output.FormatSummaryLine(summary))
	return nil
}

// resolveStartPath validates the start path before any traversal happens.
func resolveStartPath(inputPath string, workingDirectory string) (types.ValidatedPath, error) {
	candidatePath := inputPath
	if !filepath.IsAbs(candidatePath) {
		candidatePath = filepath.Join(workingDirectory, candidatePath)
	}
	absolutePath, absolutePathError := filepath.Abs(candidatePath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	info, fileStatusError := os.Stat(absolutePath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: filepath.Clean(absolutePath), IsDir: true}, nil
}

func resolveOutputPath(outputPath string, workingDirectory string) string {
	if outputPath == "" {
		outputPath = types.DefaultOutputFileName
	}
	if filepath.IsAbs(outputPath) {
		return filepath.Clean(outputPath)
	}
	return filepath.Join(workingDirectory, outputPath)
}
