package cli

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/deploy"
	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

// Version is stamped at build time with -ldflags "-X gemini-chatbot/internal/cli.Version=...".
var Version = "dev"

var (
	ErrInvalidConfig = errors.New("configuration is invalid")
	ErrChecksFailed  = errors.New("checks failed")
)

// App carries the dependencies shared by every command.
type App struct {
	Logger   log.Logger
	Settings setting.Settings
	ChatUC   chat.UseCase

	// NewDispatcher and WebHandler feed the check command.
	NewDispatcher func(modelID string) (dispatcher.Dispatcher, error)
	WebHandler    func() (http.Handler, error)

	Deployer      *deploy.Deployer
	StaticDir     string
	RequiredFiles []string
	CheckOutput   string
	Port          int
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chatbot",
		Short: "Chat with Google Gemini from the terminal",
		Long: `chatbot talks to the Gemini API using the models of a built-in catalog.

Set GEMINI_API_KEY (environment or .env) before chatting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newChatCmd(app),
		newModelsCmd(app),
		newValidateCmd(app),
		newCheckCmd(app),
		newDeployCmd(app),
		newVersionCmd(),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
