// Package cmd provides the root command and CLI setup for veil.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"veil.dev/pkg/veil/internal/adapter"
	"veil.dev/pkg/veil/internal/controller"
	"veil.dev/pkg/veil/internal/domain"
	m "veil.dev/pkg/veil/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var clipboardAdapter adapter.ClipboardAdapter
var profileStore adapter.ProfileStore
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// profilesFileFlag points at a YAML document that adds or replaces language profiles.
var profilesFileFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	clipboardAdapter = adapter.NewSystemClipboardAdapter()
	profileStore = adapter.NewLocalProfileStore()
	workflow = domain.NewWorkflow(fsAdapter, clipboardAdapter, profileStore, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./api ./web    scan multiple directories (not recursive)
  - Main.java      a single file`

const rootLongDescription = `Veil rewrites source code so it can be shared without revealing names:
identifiers become var1, var2, ... while keywords, standard library names,
operators and layout stay as they were. String literals and comments can be
kept or removed.

` + pathPatternsHelp

const anonymizeLongDescription = `Anonymize the given files and directories.

A single file is printed to stdout (or copied to the clipboard with --clipboard).
Several files need --output-dir; their relative layout is mirrored there.

` + pathPatternsHelp

const listLongDescription = `List the files that would be anonymized (default: ./...), with the
language profile chosen for each and the number of identifiers, literals and
comments found. Nothing is written.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "veil",
		Short:        "Source code anonymizer",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			warnConfigError(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&profilesFileFlag, profilesFlagName, viper.GetString(profilesConfigKey), "YAML file with extra or replacement language profiles")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(profilesFlagName), profilesConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// configureOptionFlags adds the anonymization flags shared by anonymize, list and view.
// They are bound to viper in bindOptionFlags when the command runs, since
// several commands feed the same keys.
func configureOptionFlags(cmd *cobra.Command, withParallel bool) {
	cmd.Flags().Bool(preserveStringsFlagName, viper.GetBool(preserveStringsConfigKey), "keep string literals (false replaces them with var1, var2, ...)")
	cmd.Flags().Bool(preserveCommentsFlagName, viper.GetBool(preserveCommentsConfigKey), "keep comments (false strips them)")

	if withParallel {
		cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files to anonymize in parallel")
	}
}

func bindOptionFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(preserveStringsFlagName), preserveStringsConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(preserveCommentsFlagName), preserveCommentsConfigKey)

	if flag := cmd.Flags().Lookup(parallelFlagName); flag != nil {
		bindFlagToConfig(flag, parallelConfigKey)
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the context, which stops work that has not started yet.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func sourceArgs(args []string) domain.SourceArgs {
	return domain.SourceArgs{
		Paths:    parsePaths(args),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Profiles: m.Path(viper.GetString(profilesConfigKey)),
	}
}

func optionsFromConfig() m.Options {
	return m.Options{
		PreserveStrings:  viper.GetBool(preserveStringsConfigKey),
		PreserveComments: viper.GetBool(preserveCommentsConfigKey),
	}
}
