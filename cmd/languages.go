package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"veil.dev/pkg/veil/internal/domain"
	m "veil.dev/pkg/veil/internal/model"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the language profiles and their file extensions",
		Long: `List every language profile with its extensions, comment syntax and
number of reserved words. Files with other extensions use the default profile.
Profiles can be added or replaced with --profiles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Languages(cmd.Context(), domain.LanguagesArgs{
				Profiles: m.Path(viper.GetString(profilesConfigKey)),
			})
		},
	}
}

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

func init() {
	rootCmd.AddCommand(languagesCmd)
}
