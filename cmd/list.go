package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"veil.dev/pkg/veil/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and what would be anonymized",
		Long:  listLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindOptionFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				SourceArgs: sourceArgs(args),
				Options:    optionsFromConfig(),
				Threads:    viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureOptionFlags(cmd, true)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
