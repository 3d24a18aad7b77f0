package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"gemini-chatbot/internal/checks"
)

func newCheckCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the self-checks and save the results",
		Long: `Checks the environment, the configuration, a live chat round trip and the
web server health endpoint. Results are written as JSON. Exits non-zero when any
issue is found.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var handler http.Handler
			if app.WebHandler != nil {
				h, err := app.WebHandler()
				if err != nil {
					app.Logger.Warnf(cmd.Context(), "internal.cli.check: web handler: %v", err)
				} else {
					handler = h
				}
			}

			runner := checks.New(app.Logger, checks.Config{
				Settings:      app.Settings,
				NewDispatcher: app.NewDispatcher,
				WebHandler:    handler,
				StaticDir:     app.StaticDir,
				RequiredFiles: app.RequiredFiles,
				Out:           cmd.OutOrStdout(),
			})

			report := runner.Run(cmd.Context())

			cmd.Println()
			if report.Passed() {
				cmd.Println("All checks passed.")
			} else {
				cmd.Println("Issues found:")
				for i, issue := range report.Issues {
					cmd.Printf("  %d. %s\n", i+1, issue)
				}
			}

			if err := checks.WriteJSON(output, report); err != nil {
				return fmt.Errorf("save results: %w", err)
			}
			cmd.Printf("Results saved to %s\n", output)

			if !report.Passed() {
				return ErrChecksFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", app.CheckOutput, "Where to write the JSON results")
	return cmd
}
