package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long:  `Reports every configuration issue at once. Exits non-zero when the configuration is invalid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := app.Settings.Validate()

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				cmd.Printf("API key:          %s\n", setOrNot(result.Config.APIKeySet))
				cmd.Printf("Default model:    %s\n", result.Config.DefaultModel)
				cmd.Printf("Available models: %s\n", strings.Join(result.Config.AvailableModels, ", "))
				if result.Valid {
					cmd.Println("Configuration valid")
				} else {
					cmd.Println("Configuration issues:")
					for _, issue := range result.Issues {
						cmd.Printf("  - %s\n", issue)
					}
				}
			}

			if !result.Valid {
				return ErrInvalidConfig
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the validation result as JSON")
	return cmd
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "(not set)"
}
