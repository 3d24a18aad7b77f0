package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newModelsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), app.Settings.Catalog)
			}
			printModels(cmd, app)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func printModels(cmd *cobra.Command, app *App) {
	cmd.Println("Available Models")
	cmd.Println("================")
	for _, m := range app.Settings.Catalog {
		marker := " "
		if m.ID == app.Settings.DefaultModel {
			marker = "*"
		}
		cmd.Printf("%s %s (%s)\n", marker, m.Name, m.ID)
		cmd.Printf("    %s\n", m.Description)
		cmd.Printf("    Features: %s\n", strings.Join(m.Features, ", "))
		cmd.Printf("    Best for: %s\n", strings.Join(m.BestFor, ", "))
	}
}
