package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"veil.dev/pkg/veil/internal/domain"
	m "veil.dev/pkg/veil/internal/model"
)

var outputDirFlag string
var clipboardFlag bool

// anonymizeCmd represents the anonymize command.
var anonymizeCmd = newAnonymizeCmd()

func newAnonymizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anonymize [paths...]",
		Short: "Replace identifiers with var1, var2, ...",
		Long:  anonymizeLongDescription,
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindOptionFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Anonymize(cmd.Context(), domain.AnonymizeArgs{
				SourceArgs: sourceArgs(args),
				Options:    optionsFromConfig(),
				Threads:    viper.GetInt(parallelConfigKey),
				OutputDir:  m.Path(viper.GetString(outputDirConfigKey)),
				Clipboard:  viper.GetBool(clipboardConfigKey),
			})
		},
	}

	configureOptionFlags(cmd, true)

	cmd.Flags().StringVarP(&outputDirFlag, outputDirFlagName, "o", viper.GetString(outputDirConfigKey), "write anonymized files under this directory")
	bindFlagToConfig(cmd.Flags().Lookup(outputDirFlagName), outputDirConfigKey)

	cmd.Flags().BoolVarP(&clipboardFlag, clipboardFlagName, "c", viper.GetBool(clipboardConfigKey), "copy the anonymized text to the clipboard instead of printing it")
	bindFlagToConfig(cmd.Flags().Lookup(clipboardFlagName), clipboardConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(anonymizeCmd)
}
