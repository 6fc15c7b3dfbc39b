package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"veil.dev/pkg/veil/internal/domain"
	m "veil.dev/pkg/veil/internal/model"
)

var diffFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show one file anonymized, or as a diff against the original",
		Long: `Anonymize a single file in memory and page through the result.
With --diff the output is a unified diff of the original against the anonymized text.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindOptionFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Path:     m.Path(args[0]),
				Profiles: m.Path(viper.GetString(profilesConfigKey)),
				Options:  optionsFromConfig(),
				Diff:     diffFlag,
			})
		},
	}

	configureOptionFlags(cmd, false)
	cmd.Flags().BoolVar(&diffFlag, diffFlagName, false, "show a unified diff instead of the anonymized text")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
