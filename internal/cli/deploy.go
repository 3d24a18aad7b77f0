package cli

import (
	"github.com/spf13/cobra"

	"gemini-chatbot/internal/deploy"
)

func newDeployCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Prepare the web front-end for hosting",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Check that every deployment file exists",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.Deployer.CheckRequirements(); err != nil {
					return err
				}
				cmd.Println("All required files found!")
				return nil
			},
		},
		&cobra.Command{
			Use:   "package",
			Short: "Zip the deployment files",
			RunE: func(cmd *cobra.Command, _ []string) error {
				pkg, err := app.Deployer.CreatePackage(cmd.Context())
				if err != nil {
					return err
				}
				for _, f := range pkg.Files {
					cmd.Printf("  Added: %s\n", f)
				}
				cmd.Printf("Deployment package created: %s\n", pkg.Path)
				cmd.Printf("Size: %.2f MB\n", float64(pkg.Size)/1024/1024)
				cmd.Println("Upload the .zip file to any hosting service")
				return nil
			},
		},
		&cobra.Command{
			Use:   "hosting",
			Short: "Show hosting options for public access",
			Run: func(cmd *cobra.Command, _ []string) {
				for i, opt := range deploy.HostingOptions(app.Port) {
					cmd.Printf("\n%d. %s\n", i+1, opt.Name)
					cmd.Printf("   %s\n", opt.URL)
					cmd.Println("   Steps:")
					for j, step := range opt.Steps {
						cmd.Printf("   %d. %s\n", j+1, step)
					}
				}
			},
		},
	)
	return cmd
}
